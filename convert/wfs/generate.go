package wfs

import (
	"math"

	"github.com/jerry73204/max2sc/internal/sphmath"
	"github.com/jerry73204/max2sc/sc"
	"github.com/jerry73204/max2sc/spatial"
)

// GenerateArray emits the setup object for one speaker array. The class
// follows the topology; measured per-speaker delays and gains ride along
// so the renderer can fold in the calibration.
func GenerateArray(a *spatial.SpeakerArray) *sc.Object {
	var o *sc.Object

	switch a.Type.Kind {
	case spatial.WFS:
		o = sc.NewObject("WFSArrayLinear").Method("new").
			ArgInt(len(a.Speakers)).
			ArgFloat(a.Type.Length).
			ArgFloat(a.Type.Spacing)
	case spatial.Ring:
		o = sc.NewObject("WFSArrayCircular").Method("new").
			ArgInt(len(a.Speakers)).
			ArgFloat(a.Type.Radius)
	default:
		o = sc.NewObject("WFSArrayIrregular").Method("new").
			Arg(positionTriples(a.Speakers))
	}

	o.Prop("delays", sc.Floats(speakerDelays(a.Speakers)...))
	o.Prop("gains", sc.Floats(speakerGains(a.Speakers)...))

	if a.WFS != nil {
		o.Prop("aliasingFreq", sc.Float(a.WFS.AliasingFrequency))

		if a.WFS.DistanceCompensation {
			o.Prop("distanceComp", sc.Bool(true))
		}

		if a.WFS.AmplitudeCorrection {
			o.Prop("ampCorrection", sc.Bool(true))
		}
	}

	return o
}

// GeneratePrefilter emits the prefilter stage for an array's WFS config.
func GeneratePrefilter(cfg *spatial.WFSConfig) *sc.Object {
	return sc.NewObject("WFSPrefilter").Method("ar").
		Arg(sc.Symbol("sig")).
		ArgFloat(cfg.PrefilterCutoff).
		ArgFloat(cfg.AliasingFrequency)
}

// GenerateFocusedSource emits a focused (in-front-of-array) source: driving
// delays are time-reversed so wavefronts converge on the focus point.
func GenerateFocusedSource(a *spatial.SpeakerArray, azimuth, distance, speedOfSound float64) *sc.Object {
	delays := Delays(a.Speakers, azimuth, distance, speedOfSound)

	maxDelay := 0.0
	for _, d := range delays {
		if d > maxDelay {
			maxDelay = d
		}
	}

	for i := range delays {
		delays[i] = maxDelay - delays[i]
	}

	return sc.NewObject("WFSFocusedSource").Method("ar").
		Arg(sc.Symbol("sig")).
		ArgFloat(azimuth).
		ArgFloat(distance).
		Prop("delays", sc.Floats(delays...))
}

// GeneratePlaneWave emits a plane-wave source arriving from the given
// azimuth. Delays come from projecting each speaker onto the propagation
// direction, shifted so the earliest speaker is zero.
func GeneratePlaneWave(a *spatial.SpeakerArray, azimuth, speedOfSound float64) *sc.Object {
	rad := sphmath.DegToRad(azimuth)
	dirX, dirY := math.Cos(rad), math.Sin(rad)

	delays := make([]float64, len(a.Speakers))
	minDelay := math.Inf(1)

	for i, s := range a.Speakers {
		x, y := sphmath.ToCartesian2D(s.Position.Azimuth, s.Position.Distance)
		delays[i] = -(x*dirX + y*dirY) / speedOfSound

		if delays[i] < minDelay {
			minDelay = delays[i]
		}
	}

	for i := range delays {
		delays[i] -= minDelay
	}

	return sc.NewObject("WFSPlaneWave").Method("ar").
		Arg(sc.Symbol("sig")).
		ArgFloat(azimuth).
		Prop("delays", sc.Floats(delays...))
}

// GenerateDistanceCompensation emits the alignment stage that delays each
// speaker so all drivers are acoustically equidistant from the listening
// point.
func GenerateDistanceCompensation(a *spatial.SpeakerArray, speedOfSound float64) *sc.Object {
	maxDist := 0.0
	for _, s := range a.Speakers {
		if s.Position.Distance > maxDist {
			maxDist = s.Position.Distance
		}
	}

	delays := make([]float64, len(a.Speakers))
	for i, s := range a.Speakers {
		delays[i] = (maxDist - s.Position.Distance) / speedOfSound
	}

	return sc.NewObject("WFSDistanceComp").Method("ar").
		Arg(sc.Symbol("sig")).
		Prop("delays", sc.Floats(delays...))
}

func positionTriples(speakers []spatial.Speaker) sc.Value {
	triples := make([]sc.Value, len(speakers))
	for i, s := range speakers {
		triples[i] = sc.Floats(s.Position.Azimuth, s.Position.Elevation, s.Position.Distance)
	}

	return sc.Array(triples...)
}

func speakerDelays(speakers []spatial.Speaker) []float64 {
	out := make([]float64, len(speakers))
	for i, s := range speakers {
		out[i] = s.Delay
	}

	return out
}

func speakerGains(speakers []spatial.Speaker) []float64 {
	out := make([]float64, len(speakers))
	for i, s := range speakers {
		out[i] = s.Gain
	}

	return out
}
