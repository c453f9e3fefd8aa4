// Package effects generates room-acoustics processing code: distance
// cues for moving sources and early-reflection networks for static
// rooms. Runtime quantities (distance, velocity, room size) stay
// symbolic so the generated synth reads them from controls.
package effects

import (
	"github.com/jerry73204/max2sc/sc"
)

// DistanceEffect selects a distance cue.
type DistanceEffect int

const (
	// AirAbsorption rolls off high frequencies with distance.
	AirAbsorption DistanceEffect = iota
	// DopplerShift pitch-shifts by relative source velocity.
	DopplerShift
	// DistanceAttenuation scales amplitude by an attenuation law.
	DistanceAttenuation
	// CombinedDistance applies all three cues in one stage.
	CombinedDistance
)

// ReflectionPattern selects an early-reflection room model.
type ReflectionPattern int

const (
	// RoomReflections is a small rectangular room, 12 taps in 80 ms.
	RoomReflections ReflectionPattern = iota
	// HallReflections is a shoebox concert hall, 24 taps in 150 ms.
	HallReflections
	// CathedralReflections is a large diffuse space, 36 taps in 250 ms.
	CathedralReflections
)

// Material names a reflecting wall surface.
type Material int

const (
	Concrete Material = iota
	Wood
	Carpet
	Glass
	Curtain
)

// Absorption returns the broadband absorption coefficient of the
// material, between 0 (fully reflective) and 1.
func (m Material) Absorption() float64 {
	switch m {
	case Wood:
		return 0.08
	case Carpet:
		return 0.35
	case Glass:
		return 0.04
	case Curtain:
		return 0.75
	default:
		return 0.02
	}
}

// String returns the material symbol used in generated code.
func (m Material) String() string {
	switch m {
	case Wood:
		return "wood"
	case Carpet:
		return "carpet"
	case Glass:
		return "glass"
	case Curtain:
		return "curtain"
	default:
		return "concrete"
	}
}

// GenerateDistanceEffect emits the processing stage for a distance cue.
func GenerateDistanceEffect(effect DistanceEffect) *sc.Object {
	switch effect {
	case DopplerShift:
		return sc.NewObject("DopplerShift").Method("ar").
			Arg(sc.Symbol("sig")).
			Arg(sc.Symbol("sourceVelocity")).
			Arg(sc.Symbol("listenerVelocity")).
			ArgFloat(343.0).
			Prop("maxShift", sc.Float(2.0))
	case DistanceAttenuation:
		return sc.NewObject("DistanceAttenuation").Method("ar").
			Arg(sc.Symbol("sig")).
			Arg(sc.Symbol("distance")).
			ArgFloat(1.0).
			Prop("minDistance", sc.Float(0.1)).
			Prop("maxDistance", sc.Float(100.0))
	case CombinedDistance:
		return sc.NewObject("CombinedDistanceEffects").Method("ar").
			Arg(sc.Symbol("sig")).
			Arg(sc.Symbol("distance")).
			Arg(sc.Symbol("velocity")).
			Prop("airAbsorption", sc.Bool(true)).
			Prop("dopplerShift", sc.Bool(true)).
			Prop("distanceAttenuation", sc.Bool(true))
	default:
		return sc.NewObject("AirAbsorption").Method("ar").
			Arg(sc.Symbol("sig")).
			Arg(sc.Symbol("distance")).
			Arg(sc.Symbol("humidity")).
			Arg(sc.Symbol("temperature")).
			Prop("frequencyBands", sc.Int(8)).
			Prop("referenceDistance", sc.Float(1.0))
	}
}

// GenerateEarlyReflections emits an early-reflection network for the
// room model. Tap count and delay spread come from the model.
func GenerateEarlyReflections(pattern ReflectionPattern) *sc.Object {
	switch pattern {
	case HallReflections:
		return sc.NewObject("EarlyReflectionsHall").Method("ar").
			Arg(sc.Symbol("sig")).
			Arg(sc.Symbol("hallSize")).
			Arg(sc.Symbol("damping")).
			Prop("numReflections", sc.Int(24)).
			Prop("maxDelay", sc.Float(0.15))
	case CathedralReflections:
		return sc.NewObject("EarlyReflectionsCathedral").Method("ar").
			Arg(sc.Symbol("sig")).
			Arg(sc.Symbol("spaceSize")).
			Arg(sc.Symbol("damping")).
			Prop("numReflections", sc.Int(36)).
			Prop("maxDelay", sc.Float(0.25)).
			Prop("diffusion", sc.Bool(true))
	default:
		return sc.NewObject("EarlyReflectionsRoom").Method("ar").
			Arg(sc.Symbol("sig")).
			Arg(sc.Symbol("roomSize")).
			Arg(sc.Symbol("damping")).
			Prop("numReflections", sc.Int(12)).
			Prop("maxDelay", sc.Float(0.08))
	}
}

// GenerateCustomReflections emits a tap network with explicit delay
// times, gains, and pan positions.
func GenerateCustomReflections(numTaps int) *sc.Object {
	return sc.NewObject("EarlyReflectionsCustom").Method("ar").
		Arg(sc.Symbol("sig")).
		Arg(sc.Symbol("delayTimes")).
		Arg(sc.Symbol("gains")).
		Arg(sc.Symbol("panPositions")).
		Prop("numTaps", sc.Int(numTaps))
}

// GenerateWallReflection emits a single filtered wall bounce at the
// given angle of incidence in degrees.
func GenerateWallReflection(m Material, angleDeg float64) *sc.Object {
	return sc.NewObject("WallReflection").Method("ar").
		Arg(sc.Symbol("sig")).
		Arg(sc.Symbol("delayTime")).
		ArgFloat(angleDeg).
		ArgFloat(m.Absorption()).
		Prop("material", sc.Symbol(m.String()))
}

// GenerateDiffuseReflections emits a dense late-reflection field.
// The amount scales tap gains between 0 and 1.
func GenerateDiffuseReflections(amount float64) *sc.Object {
	return sc.NewObject("DiffuseReflections").Method("ar").
		Arg(sc.Symbol("sig")).
		ArgFloat(amount).
		Arg(sc.Symbol("roomSize")).
		Prop("numTaps", sc.Int(64)).
		Prop("modulationDepth", sc.Float(0.02))
}
