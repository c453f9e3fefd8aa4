// Package audiocmp compares rendered audio against reference files.
//
// It loads WAV renders into normalized float buffers and reports the RMS
// difference, peak difference, and correlation between two takes, so a
// conversion can be checked against a reference render without listening.
package audiocmp

import (
	"errors"
	"fmt"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Comparison failures.
var (
	ErrEmptyBuffer    = errors.New("audiocmp: empty buffer")
	ErrFormatMismatch = errors.New("audiocmp: buffer formats differ")
)

// Buffer is decoded audio normalized to [-1, 1], interleaved.
type Buffer struct {
	Data       []float64
	SampleRate int
	Channels   int
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate == 0 || b.Channels == 0 {
		return 0
	}

	return float64(len(b.Data)) / float64(b.SampleRate*b.Channels)
}

// LoadWAV decodes a WAV file into a normalized buffer.
func LoadWAV(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audiocmp: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("audiocmp: %s is not a valid WAV file", path)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audiocmp: decoding %s: %w", path, err)
	}

	return fromIntBuffer(pcm, int(dec.BitDepth)), nil
}

// fromIntBuffer normalizes integer PCM by its bit depth.
func fromIntBuffer(pcm *goaudio.IntBuffer, bitDepth int) *Buffer {
	var maxVal float64

	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0
	}

	buf := &Buffer{
		Data:       make([]float64, len(pcm.Data)),
		SampleRate: pcm.Format.SampleRate,
		Channels:   pcm.Format.NumChannels,
	}

	for i, v := range pcm.Data {
		buf.Data[i] = float64(v) / maxVal
	}

	return buf
}

// Tolerance bounds an acceptable difference between two renders.
type Tolerance struct {
	RMS  float64
	Peak float64
}

// Report is the outcome of one comparison. Correlation is the normalized
// cross-correlation at zero lag; 1.0 means identical up to gain.
type Report struct {
	Passed         bool
	RMSDifference  float64
	PeakDifference float64
	Correlation    float64
}

// Compare measures the difference between two buffers of the same format.
// Length may differ; the comparison runs over the shorter take.
func Compare(a, b *Buffer, tol Tolerance) (Report, error) {
	if len(a.Data) == 0 || len(b.Data) == 0 {
		return Report{}, ErrEmptyBuffer
	}

	if a.SampleRate != b.SampleRate || a.Channels != b.Channels {
		return Report{}, fmt.Errorf("%w: %d Hz %dch vs %d Hz %dch",
			ErrFormatMismatch, a.SampleRate, a.Channels, b.SampleRate, b.Channels)
	}

	n := len(a.Data)
	if len(b.Data) < n {
		n = len(b.Data)
	}

	var sumSq, peak, dotAB, dotAA, dotBB float64

	for i := 0; i < n; i++ {
		d := a.Data[i] - b.Data[i]
		sumSq += d * d

		if abs := math.Abs(d); abs > peak {
			peak = abs
		}

		dotAB += a.Data[i] * b.Data[i]
		dotAA += a.Data[i] * a.Data[i]
		dotBB += b.Data[i] * b.Data[i]
	}

	rep := Report{
		RMSDifference:  math.Sqrt(sumSq / float64(n)),
		PeakDifference: peak,
	}

	if dotAA > 0 && dotBB > 0 {
		rep.Correlation = dotAB / math.Sqrt(dotAA*dotBB)
	}

	rep.Passed = rep.RMSDifference <= tol.RMS && rep.PeakDifference <= tol.Peak

	return rep, nil
}
