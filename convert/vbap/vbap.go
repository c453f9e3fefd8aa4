package vbap

import (
	"github.com/jerry73204/max2sc/internal/sphmath"
	"github.com/jerry73204/max2sc/sc"
	"github.com/jerry73204/max2sc/spatial"
)

// GenerateSetup emits the speaker-array definition for a layout. Rings
// become a 2-D setup over sorted azimuths; linear strips keep their full
// spherical triples; anything else gets 3-D cartesian positions.
func GenerateSetup(a *spatial.SpeakerArray) *sc.Object {
	switch a.Type.Kind {
	case spatial.Ring:
		angles := sphmath.SortedCopy(azimuths(a.Speakers))

		return sc.NewObject("VBAPSpeakerArray").Method("new").
			ArgInt(2).
			Arg(sc.Floats(angles...))
	case spatial.WFS:
		triples := make([]sc.Value, len(a.Speakers))
		for i, s := range a.Speakers {
			triples[i] = sc.Floats(s.Position.Azimuth, s.Position.Elevation, s.Position.Distance)
		}

		return sc.NewObject("VBAPSpeakerArray").Method("new").
			ArgInt(3).
			Arg(sc.Array(triples...))
	default:
		triples := make([]sc.Value, len(a.Speakers))
		for i, s := range a.Speakers {
			x, y, z := sphmath.ToCartesian(s.Position.Azimuth, s.Position.Elevation, s.Position.Distance)
			triples[i] = sc.Floats(x, y, z)
		}

		return sc.NewObject("VBAPSpeakerArray").Method("new").
			ArgInt(3).
			Arg(sc.Array(triples...))
	}
}

// GeneratePanner emits the panning stage reading a setup buffer.
func GeneratePanner(numSpeakers int, setup *sc.Object, use3D bool) *sc.Object {
	o := sc.NewObject("VBAP").Method("ar").
		ArgInt(numSpeakers).
		Arg(sc.Symbol("sig")).
		Arg(sc.Nested(setup)).
		Arg(sc.Symbol("azimuth"))

	if use3D {
		o.Arg(sc.Symbol("elevation"))
	}

	return o
}

// GenerateSpreadVBAP emits a panner with an explicit spread, widening the
// virtual source across neighboring speakers.
func GenerateSpreadVBAP(numSpeakers int, setup *sc.Object, use3D bool, spread float64) *sc.Object {
	return GeneratePanner(numSpeakers, setup, use3D).
		Prop("spread", sc.Float(spread))
}

// GenerateDistanceVBAP emits a panner wrapped with a distance cue: gain
// and a pre-delay both follow the source distance.
func GenerateDistanceVBAP(numSpeakers int, setup *sc.Object, use3D bool, refDistance float64) *sc.Object {
	return sc.NewObject("VBAPDistance").Method("ar").
		Arg(sc.Nested(GeneratePanner(numSpeakers, setup, use3D))).
		Arg(sc.Symbol("distance")).
		Prop("refDistance", sc.Float(refDistance))
}

func azimuths(speakers []spatial.Speaker) []float64 {
	out := make([]float64, len(speakers))
	for i, s := range speakers {
		out[i] = s.Position.Azimuth
	}

	return out
}
