// Package hoa generates higher-order-ambisonics encoding and decoding
// code. First order takes the FOA path with its dedicated b-format
// objects; higher orders use the generic HOA classes with (order+1)^2
// channels in 3-D.
package hoa

import (
	"fmt"
	"math"

	"github.com/jerry73204/max2sc/sc"
	"github.com/jerry73204/max2sc/spatial"
)

const (
	maxOptimalOrder     = 7
	maxRecommendedOrder = 5
)

// DecoderType selects the decoder weighting.
type DecoderType int

const (
	// DecoderBasic is unweighted (velocity) decoding.
	DecoderBasic DecoderType = iota
	// DecoderMaxRe maximizes the energy vector.
	DecoderMaxRe
	// DecoderInPhase suppresses out-of-phase speaker contributions.
	DecoderInPhase
	// DecoderControlled blends basic and maxRe by frequency.
	DecoderControlled
	// DecoderBinaural renders to headphones over HRTFs.
	DecoderBinaural
)

// String returns the decoder symbol used in generated code.
func (d DecoderType) String() string {
	switch d {
	case DecoderMaxRe:
		return "maxRe"
	case DecoderInPhase:
		return "inPhase"
	case DecoderControlled:
		return "controlled"
	case DecoderBinaural:
		return "binaural"
	default:
		return "basic"
	}
}

// UnsupportedConfigError reports an order/dimension pair no encoder
// exists for.
type UnsupportedConfigError struct {
	Order     int
	Dimension int
}

func (e *UnsupportedConfigError) Error() string {
	return fmt.Sprintf("no ambisonic encoder for order %d in %dD", e.Order, e.Dimension)
}

// Channels returns the b-format channel count for an order and dimension.
func Channels(order, dimension int) int {
	if dimension == 2 {
		return 2*order + 1
	}

	return (order + 1) * (order + 1)
}

// GenerateEncoder emits the encoding stage. Order 1 maps to the FOA
// objects; higher orders are 3-D only.
func GenerateEncoder(order, dimension int) (*sc.Object, error) {
	switch {
	case order == 1 && (dimension == 2 || dimension == 3):
		return sc.NewObject("FoaEncode").Method("ar").
			Arg(sc.Symbol("sig")).
			ArgInt(dimension).
			Prop("channels", sc.Int(Channels(1, dimension))), nil
	case order > 1 && dimension == 3:
		return sc.NewObject("HoaEncode").Method("ar").
			Arg(sc.Symbol("sig")).
			ArgInt(order).
			Prop("channels", sc.Int(Channels(order, 3))), nil
	default:
		return nil, &UnsupportedConfigError{Order: order, Dimension: dimension}
	}
}

// GenerateDecoder emits the decoding stage for a speaker array. Order 1
// decodes b-format straight to the speaker directions; higher orders go
// through the generic HOA decoder with the chosen weighting.
func GenerateDecoder(order int, a *spatial.SpeakerArray, decoderType DecoderType) (*sc.Object, error) {
	if order < 1 {
		return nil, &UnsupportedConfigError{Order: order, Dimension: 3}
	}

	if decoderType == DecoderBinaural {
		return GenerateBinauralDecoder(order), nil
	}

	directions := speakerDirections(a.Speakers)

	if order == 1 {
		return sc.NewObject("FoaDecode").Method("ar").
			Arg(sc.Symbol("sig")).
			Arg(directions), nil
	}

	return sc.NewObject("HoaDecode").Method("ar").
		Arg(sc.Symbol("sig")).
		ArgInt(order).
		Arg(directions).
		Prop("type", sc.Symbol(decoderType.String())), nil
}

// GenerateRotation emits a soundfield rotation around the vertical axis.
func GenerateRotation(order int, degrees float64) *sc.Object {
	class := "HoaRotate"
	if order == 1 {
		class = "FoaRotate"
	}

	return sc.NewObject(class).Method("ar").
		Arg(sc.Symbol("sig")).
		ArgFloat(degrees)
}

// GenerateMirror emits a soundfield reflection across the named axis
// (x, y, or z).
func GenerateMirror(order int, axis string) *sc.Object {
	class := "HoaMirror"
	if order == 1 {
		class = "FoaMirror"
	}

	return sc.NewObject(class).Method("ar").
		Arg(sc.Symbol("sig")).
		Arg(sc.Symbol(axis))
}

// GenerateBinauralDecoder emits a headphone renderer.
func GenerateBinauralDecoder(order int) *sc.Object {
	class := "HoaBinaural"
	if order == 1 {
		class = "FoaDecode"
	}

	o := sc.NewObject(class).Method("ar").Arg(sc.Symbol("sig"))
	if order == 1 {
		return o.Prop("type", sc.Symbol("binaural"))
	}

	return o.ArgInt(order)
}

// GenerateMatrixDecoder emits a decoding stage when only the speaker
// count is known. The matrix itself is resolved at runtime, so order 1
// decodes against a matrix control instead of fixed directions.
func GenerateMatrixDecoder(order, numSpeakers int) (*sc.Object, error) {
	if order < 1 {
		return nil, &UnsupportedConfigError{Order: order, Dimension: 3}
	}

	if order == 1 {
		return sc.NewObject("FoaDecode").Method("ar").
			Arg(sc.Symbol("sig")).
			Arg(sc.Symbol("decoderMatrix")).
			Prop("numSpeakers", sc.Int(numSpeakers)), nil
	}

	return sc.NewObject("HoaDecode").Method("ar").
		Arg(sc.Symbol("sig")).
		ArgInt(order).
		Prop("numSpeakers", sc.Int(numSpeakers)), nil
}

// FocusType selects a soundfield focus transform.
type FocusType int

const (
	// FocusPush pushes energy toward the focus direction.
	FocusPush FocusType = iota
	// FocusPress presses the field flat toward the direction.
	FocusPress
	// FocusZoom emphasizes the direction while attenuating the rest.
	FocusZoom
)

// String returns the focus symbol used in generated code.
func (f FocusType) String() string {
	switch f {
	case FocusPress:
		return "press"
	case FocusZoom:
		return "zoom"
	default:
		return "push"
	}
}

// GenerateFocus emits a soundfield focus toward the given direction.
func GenerateFocus(order int, focus FocusType, azimuth, elevation float64) *sc.Object {
	if order == 1 {
		return sc.NewObject("FoaFocus").Method("ar").
			Arg(sc.Symbol("sig")).
			ArgFloat(azimuth).
			ArgFloat(elevation).
			Prop("type", sc.Symbol(focus.String()))
	}

	return sc.NewObject("HoaFocus").Method("ar").
		Arg(sc.Symbol("sig")).
		ArgInt(order).
		ArgFloat(azimuth).
		ArgFloat(elevation).
		Prop("type", sc.Symbol(focus.String()))
}

// GenerateOrderConverter emits an order conversion stage. Equal orders
// pass the field through untouched.
func GenerateOrderConverter(fromOrder, toOrder int) (*sc.Object, error) {
	if fromOrder < 1 || toOrder < 1 {
		order := fromOrder
		if toOrder < 1 {
			order = toOrder
		}

		return nil, &UnsupportedConfigError{Order: order, Dimension: 3}
	}

	if fromOrder == toOrder {
		return sc.NewObject("Through").Method("ar").
			Arg(sc.Symbol("sig")), nil
	}

	return sc.NewObject("HoaConvert").Method("ar").
		Arg(sc.Symbol("sig")).
		ArgInt(fromOrder).
		ArgInt(toOrder), nil
}

// GenerateNFC emits near-field compensation for a source at the given
// distance in meters.
func GenerateNFC(order int, distance float64) *sc.Object {
	return sc.NewObject("HoaNFC").Method("ar").
		Arg(sc.Symbol("sig")).
		ArgInt(order).
		ArgFloat(distance)
}

// OptimalOrder returns the highest order a speaker count can render
// comfortably, between 1 and 7.
func OptimalOrder(numSpeakers int) int {
	order := int(math.Floor(math.Sqrt(float64(numSpeakers) / 4)))

	return clampOrder(order, maxOptimalOrder)
}

// ConfigValidation reports whether an order works on a speaker count.
// Errors make the config unusable; warnings flag a tight but workable fit.
type ConfigValidation struct {
	IsValid          bool
	Warnings         []string
	Errors           []string
	RecommendedOrder int
}

// ValidateConfig checks an order against a speaker count: an error when
// the count is below the channel count, a warning when below twice it.
func ValidateConfig(order, numSpeakers int) ConfigValidation {
	needed := Channels(order, 3)

	res := ConfigValidation{
		IsValid:          numSpeakers >= needed,
		RecommendedOrder: RecommendedOrder(numSpeakers),
	}

	switch {
	case !res.IsValid:
		res.Errors = append(res.Errors,
			fmt.Sprintf("order %d needs at least %d speakers, have %d",
				order, needed, numSpeakers))
	case numSpeakers < 2*needed:
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%d speakers is tight for order %d; %d or more decode cleanly",
				numSpeakers, order, 2*needed))
	}

	return res
}

// RecommendedOrder returns the conservative order for a speaker count,
// between 1 and 5.
func RecommendedOrder(numSpeakers int) int {
	order := int(math.Floor(math.Sqrt(float64(numSpeakers) / 8)))

	return clampOrder(order, maxRecommendedOrder)
}

func clampOrder(order, max int) int {
	if order < 1 {
		return 1
	}

	if order > max {
		return max
	}

	return order
}

func speakerDirections(speakers []spatial.Speaker) sc.Value {
	pairs := make([]sc.Value, len(speakers))
	for i, s := range speakers {
		pairs[i] = sc.Floats(s.Position.Azimuth, s.Position.Elevation)
	}

	return sc.Array(pairs...)
}
