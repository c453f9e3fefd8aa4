package wfs

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/jerry73204/max2sc/internal/sphmath"
	"github.com/jerry73204/max2sc/spatial"
)

const referenceSpeedOfSound = 343.0

// SpeedOfSound returns the speed of sound in m/s at the given air
// temperature in degrees Celsius.
func SpeedOfSound(tempC float64) float64 {
	return referenceSpeedOfSound + 0.6*tempC
}

// SpeakerDelay returns the travel time in seconds from a virtual source at
// (srcAzimuth degrees, srcDistance meters) to the speaker, both projected
// onto the horizontal plane.
func SpeakerDelay(pos spatial.SphericalCoord, srcAzimuth, srcDistance, speedOfSound float64) float64 {
	sx, sy := sphmath.ToCartesian2D(pos.Azimuth, pos.Distance)
	vx, vy := sphmath.ToCartesian2D(srcAzimuth, srcDistance)

	return math.Hypot(sx-vx, sy-vy) / speedOfSound
}

// Amplitude returns the distance-law gain for one speaker. A source at or
// inside the origin (srcDistance <= 0) gets unity gain.
func Amplitude(pos spatial.SphericalCoord, srcDistance, refDistance float64) float64 {
	if srcDistance <= 0 {
		return 1.0
	}

	if pos.Distance <= 0 {
		return math.Sqrt(refDistance / srcDistance)
	}

	return math.Sqrt(refDistance/srcDistance) * math.Sqrt(refDistance/pos.Distance)
}

// Amplitudes returns the distance-law gain for every speaker of an array.
func Amplitudes(speakers []spatial.Speaker, srcDistance, refDistance float64) []float64 {
	out := make([]float64, len(speakers))

	if srcDistance <= 0 {
		for i := range out {
			out[i] = 1.0
		}

		return out
	}

	for i, s := range speakers {
		if s.Position.Distance <= 0 {
			out[i] = 1.0
			continue
		}

		out[i] = math.Sqrt(refDistance / s.Position.Distance)
	}

	vecmath.ScaleBlock(out, out, math.Sqrt(refDistance/srcDistance))

	return out
}

// Delays returns the travel time from a virtual source to every speaker of
// an array.
func Delays(speakers []spatial.Speaker, srcAzimuth, srcDistance, speedOfSound float64) []float64 {
	out := make([]float64, len(speakers))

	for i, s := range speakers {
		out[i] = SpeakerDelay(s.Position, srcAzimuth, srcDistance, speedOfSound)
	}

	return out
}
