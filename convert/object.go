package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/jerry73204/max2sc/convert/effects"
	"github.com/jerry73204/max2sc/convert/hoa"
	"github.com/jerry73204/max2sc/patch"
	"github.com/jerry73204/max2sc/sc"
)

// sigInput is the placeholder symbol converted objects read their input
// signal from; the emitter binds it when assembling a synth body.
const sigInput = "sig"

// ConvertObject maps one box to its SuperCollider counterpart. Boxes that
// carry no signal (messages, control widgets) return nil with no error.
// Recognized objects with out-of-range parameters return a typed error;
// unknown signal objects degrade to a placeholder keeping the source name.
func ConvertObject(c patch.BoxContent) (*sc.Object, error) {
	kind := patch.ParseKind(c.MaxClass, c.Text)

	// The mc.* family carries a tilde, so it lexes as a signal op; the
	// prefix routes it to the multichannel conversions instead.
	if strings.HasPrefix(kind.Name, "mc.") {
		return convertMultichannel(kind, c)
	}

	switch kind.Kind {
	case patch.KindMessage, patch.KindControlWidget:
		return nil, nil
	case patch.KindOscillator:
		return convertOscillator(kind), nil
	case patch.KindNoise:
		return convertNoise(kind), nil
	case patch.KindADC:
		return convertADC(kind)
	case patch.KindDAC:
		return convertDAC(kind)
	case patch.KindRamp:
		return convertRamp(kind), nil
	case patch.KindSpat:
		return convertSpat(kind)
	default:
		return convertSignalOp(kind)
	}
}

var oscillatorClasses = map[string]string{
	"cycle~":  "SinOsc",
	"saw~":    "Saw",
	"tri~":    "LFTri",
	"rect~":   "Pulse",
	"phasor~": "Phasor",
}

func convertOscillator(k patch.ObjectKind) *sc.Object {
	class := oscillatorClasses[k.Name]
	freq := floatArg(k.Args, 0, 440)

	return sc.NewObject(class).Method("ar").ArgFloat(freq)
}

func convertNoise(k patch.ObjectKind) *sc.Object {
	class := "WhiteNoise"
	if k.Name == "pink~" {
		class = "PinkNoise"
	}

	return sc.NewObject(class).Method("ar")
}

// convertADC maps audio input to SoundIn with 0-based channel indices.
// Max numbers I/O channels from 1.
func convertADC(k patch.ObjectKind) (*sc.Object, error) {
	channels, err := channelList(k)
	if err != nil {
		return nil, err
	}

	indices := make([]sc.Value, len(channels))
	for i, ch := range channels {
		indices[i] = sc.Int(ch - 1)
	}

	o := sc.NewObject("SoundIn").Method("ar")
	if len(indices) == 1 {
		return o.Arg(indices[0]), nil
	}

	return o.Arg(sc.Value{Kind: sc.KindArray, Array: indices}), nil
}

// convertDAC maps audio output to Out on the bus of the lowest listed
// channel, 0-based.
func convertDAC(k patch.ObjectKind) (*sc.Object, error) {
	channels, err := channelList(k)
	if err != nil {
		return nil, err
	}

	bus := channels[0]
	for _, ch := range channels[1:] {
		if ch < bus {
			bus = ch
		}
	}

	return sc.NewObject("Out").Method("ar").
		ArgInt(bus - 1).
		Arg(sc.Symbol(sigInput)), nil
}

var rampClasses = map[string]string{
	"line~":  "Line",
	"curve~": "XLine",
	"adsr~":  "EnvGen",
}

func convertRamp(k patch.ObjectKind) *sc.Object {
	return sc.NewObject(rampClasses[k.Name]).Method("kr")
}

// convertMultichannel maps the mc.* wrappers. These bundle a channel
// group into one box, so outputs and inputs carry channel index arrays.
func convertMultichannel(k patch.ObjectKind, c patch.BoxContent) (*sc.Object, error) {
	switch k.Name {
	case "mc.pack~":
		return sc.NewObject("Array").Method("with").
			Arg(sc.Symbol(sigInput)).
			Prop("channels", sc.Int(intArg(k.Args, 0, 2))), nil
	case "mc.unpack~":
		return sc.NewObject("ArrayIndex").Method("new").
			Arg(sc.Symbol(sigInput)).
			Prop("channels", sc.Int(intArg(k.Args, 0, 2))), nil
	case "mc.dac~":
		// A box with no channel args drives as many outputs as it has
		// inlets.
		indices, err := mcChannels(k, c.NumInlets)
		if err != nil {
			return nil, err
		}

		return sc.NewObject("Out").Method("ar").
			Arg(sc.Value{Kind: sc.KindArray, Array: indices}).
			Arg(sc.Symbol(sigInput)), nil
	case "mc.adc~":
		indices, err := mcChannels(k, c.NumOutlets)
		if err != nil {
			return nil, err
		}

		return sc.NewObject("SoundIn").Method("ar").
			Arg(sc.Value{Kind: sc.KindArray, Array: indices}), nil
	case "mc.live.gain~":
		db := floatArg(k.Args, 0, 0)

		return sc.NewObject("BinaryOpUGen").Method("new").
			Arg(sc.Symbol("*")).
			Arg(sc.Symbol(sigInput)).
			ArgFloat(math.Pow(10, db/20)).
			Prop("lag", sc.Float(0.1)), nil
	default:
		return placeholder(k.Name), nil
	}
}

func convertSpat(k patch.ObjectKind) (*sc.Object, error) {
	args := posArgs(k.Args)

	switch k.Name {
	case "spat5.stereo~":
		return sc.NewObject("Splay").Method("ar").
			Arg(sc.Symbol(sigInput)).
			ArgFloat(1).
			ArgFloat(1).
			ArgFloat(0), nil
	case "spat5.pan~", "spat5.vbap~":
		n := intArg(args, 0, 8)
		if n < 1 {
			return nil, &InvalidParameterError{Name: k.Name, Value: float64(n)}
		}

		return sc.NewObject("VBAP").Method("ar").
			ArgInt(n).
			Arg(sc.Symbol(sigInput)).
			Arg(sc.Symbol("azimuth")).
			Arg(sc.Symbol("elevation")).
			Arg(sc.Symbol("spread")), nil
	case "spat5.panoramix~":
		ins := intArg(args, 0, 1)
		outs := intArg(args, 1, 8)

		if ins < 1 || outs < 1 {
			return nil, &InvalidParameterError{Name: k.Name, Value: float64(ins)}
		}

		return sc.NewObject("SpatPanoramix").Method("ar").
			Arg(sc.Symbol(sigInput)).
			ArgInt(ins).
			ArgInt(outs).
			Arg(sc.Array(sc.Symbol("azimuth"), sc.Symbol("elevation"), sc.Symbol("distance"))).
			Prop("format", sc.Symbol("vbap")), nil
	case "spat5.hoa.encoder~":
		o, err := hoa.GenerateEncoder(intArg(args, 0, 1), 3)
		if err != nil {
			return nil, err
		}

		return o.Arg(sc.Symbol("azimuth")).Arg(sc.Symbol("elevation")), nil
	case "spat5.hoa.decoder~":
		return hoa.GenerateMatrixDecoder(intArg(args, 0, 1), intArg(args, 1, 8))
	case "spat5.hoa.rotate~":
		return hoa.GenerateRotation(intArg(args, 0, 1), floatArg(args, 1, 0)), nil
	case "spat5.reverb~":
		return sc.NewObject("JPverb").Method("ar").
			Arg(sc.Symbol(sigInput)).
			Arg(sc.Symbol("rt60")).
			Arg(sc.Symbol("damping")).
			Arg(sc.Symbol("size")).
			Prop("numOutputs", sc.Int(intArg(args, 0, 2))), nil
	case "spat5.early~":
		return effects.GenerateCustomReflections(intArg(args, 0, 8)), nil
	default:
		return placeholder(k.Name), nil
	}
}

// convertSignalOp maps the common signal transforms; anything else keeps
// flowing as a placeholder.
func convertSignalOp(k patch.ObjectKind) (*sc.Object, error) {
	switch k.Name {
	case "pan~":
		// Max pan position is 0..1, SC Pan2 wants -1..1.
		pos := floatArg(k.Args, 0, 0.5)
		if pos < 0 || pos > 1 {
			return nil, &InvalidParameterError{Name: k.Name, Value: pos}
		}

		return sc.NewObject("Pan2").Method("ar").
			Arg(sc.Symbol(sigInput)).
			ArgFloat(pos*2 - 1), nil
	case "pan4~":
		return sc.NewObject("Pan4").Method("ar").
			Arg(sc.Symbol(sigInput)).
			ArgFloat(floatArg(k.Args, 0, 0)).
			ArgFloat(floatArg(k.Args, 1, 0)), nil
	case "pan8~":
		return sc.NewObject("PanAz").Method("ar").
			ArgInt(8).
			Arg(sc.Symbol(sigInput)).
			ArgFloat(floatArg(k.Args, 0, 0)), nil
	case "matrix~":
		if len(k.Args) < 2 {
			return nil, &MissingAttributeError{Name: "matrix~ size"}
		}

		ins := intArg(k.Args, 0, 0)
		outs := intArg(k.Args, 1, 0)

		if ins < 1 || outs < 1 {
			return nil, &InvalidParameterError{Name: k.Name, Value: float64(ins)}
		}

		return sc.NewObject("Mix").Method("ar").
			Arg(sc.Symbol(sigInput)).
			Prop("inputs", sc.Int(ins)).
			Prop("outputs", sc.Int(outs)), nil
	case "*~":
		return sc.NewObject("BinaryOpUGen").Method("new").
			Arg(sc.Symbol("*")).
			Arg(sc.Symbol(sigInput)).
			ArgFloat(floatArg(k.Args, 0, 1)), nil
	case "+~":
		return sc.NewObject("BinaryOpUGen").Method("new").
			Arg(sc.Symbol("+")).
			Arg(sc.Symbol(sigInput)).
			ArgFloat(floatArg(k.Args, 0, 0)), nil
	default:
		return placeholder(k.Name), nil
	}
}

// placeholder is a pass-through marker keeping the source object name so
// the generated code shows what was not converted.
func placeholder(name string) *sc.Object {
	return sc.NewObject("DC").Method("ar").
		ArgFloat(0).
		Prop("source", sc.String(name))
}

// channelList reads 1-based channel numbers from the args, defaulting to a
// stereo pair. A non-positive channel is an invalid parameter.
func channelList(k patch.ObjectKind) ([]int, error) {
	if len(k.Args) == 0 {
		return []int{1, 2}, nil
	}

	channels := make([]int, 0, len(k.Args))

	for _, a := range k.Args {
		// Attribute args terminate the channel list.
		if strings.HasPrefix(a, "@") {
			break
		}

		ch, err := strconv.Atoi(a)
		if err != nil {
			continue
		}

		if ch < 1 {
			return nil, &InvalidParameterError{Name: k.Name, Value: float64(ch)}
		}

		channels = append(channels, ch)
	}

	if len(channels) == 0 {
		return []int{1, 2}, nil
	}

	return channels, nil
}

// posArgs returns the positional args, cutting at the first @attribute.
func posArgs(args []string) []string {
	for i, a := range args {
		if strings.HasPrefix(a, "@") {
			return args[:i]
		}
	}

	return args
}

// mcChannels reads 1-based channel numbers from the args and returns
// them as 0-based bus indices. Without numeric args the box addresses
// def consecutive channels from bus 0.
func mcChannels(k patch.ObjectKind, def int) ([]sc.Value, error) {
	var indices []sc.Value

	for _, a := range k.Args {
		if strings.HasPrefix(a, "@") {
			break
		}

		ch, err := strconv.Atoi(a)
		if err != nil {
			continue
		}

		if ch < 1 {
			return nil, &InvalidParameterError{Name: k.Name, Value: float64(ch)}
		}

		indices = append(indices, sc.Int(ch-1))
	}

	if len(indices) == 0 {
		if def < 1 {
			def = 2
		}

		for i := 0; i < def; i++ {
			indices = append(indices, sc.Int(i))
		}
	}

	return indices, nil
}

func floatArg(args []string, i int, def float64) float64 {
	if i >= len(args) {
		return def
	}

	v, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return def
	}

	return v
}

func intArg(args []string, i int, def int) int {
	if i >= len(args) {
		return def
	}

	v, err := strconv.Atoi(args[i])
	if err != nil {
		return def
	}

	return v
}
