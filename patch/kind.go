package patch

import "strings"

// Kind is the closed classification of a box object. Every box maps to
// exactly one kind; objects the converter does not know fall into
// KindSignalOp (tilde objects) or KindMessage (everything else) so they
// still participate in connection classification.
type Kind int

const (
	// KindMessage is any non-signal object without a more specific kind.
	KindMessage Kind = iota
	// KindOscillator covers the periodic signal generators (cycle~, saw~ ...).
	KindOscillator
	// KindNoise covers the noise generators (noise~, pink~).
	KindNoise
	// KindADC covers audio input objects (adc~, ezadc~, in~).
	KindADC
	// KindDAC covers audio output objects (dac~, ezdac~, out~).
	KindDAC
	// KindControlWidget covers UI value objects (flonum, slider, dial ...).
	KindControlWidget
	// KindRamp covers control-rate ramp generators (line~, curve~, adsr~).
	KindRamp
	// KindSignalOp is any other tilde object (signal processor).
	KindSignalOp
	// KindSpat is any spat5.* object.
	KindSpat
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindOscillator:
		return "oscillator"
	case KindNoise:
		return "noise"
	case KindADC:
		return "adc"
	case KindDAC:
		return "dac"
	case KindControlWidget:
		return "control-widget"
	case KindRamp:
		return "ramp"
	case KindSignalOp:
		return "signal-op"
	case KindSpat:
		return "spat"
	default:
		return "message"
	}
}

// ObjectKind is the lexed identity of a box: its kind tag plus the original
// leading token and arguments, so converters can degrade unknown objects to
// placeholders that keep the source name.
type ObjectKind struct {
	Kind Kind
	Name string
	Args []string
}

// SpatPrefix is the leading token prefix of all Spat5 spatial objects.
const SpatPrefix = "spat5"

var controlWidgetClasses = map[string]bool{
	"flonum":      true,
	"number":      true,
	"slider":      true,
	"dial":        true,
	"toggle":      true,
	"button":      true,
	"kslider":     true,
	"rslider":     true,
	"multislider": true,
}

var oscillatorNames = map[string]bool{
	"cycle~":  true,
	"saw~":    true,
	"tri~":    true,
	"rect~":   true,
	"phasor~": true,
}

var noiseNames = map[string]bool{
	"noise~": true,
	"pink~":  true,
}

var adcNames = map[string]bool{
	"adc~":   true,
	"ezadc~": true,
	"in~":    true,
}

var dacNames = map[string]bool{
	"dac~":   true,
	"ezdac~": true,
	"out~":   true,
}

var rampNames = map[string]bool{
	"line~":  true,
	"curve~": true,
	"adsr~":  true,
}

// ParseKind lexes a box into its ObjectKind. maxclass decides UI widgets;
// otherwise the leading whitespace-separated token of text decides.
func ParseKind(maxclass, text string) ObjectKind {
	if controlWidgetClasses[maxclass] {
		return ObjectKind{Kind: KindControlWidget, Name: maxclass}
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ObjectKind{Kind: KindMessage, Name: maxclass}
	}

	name := fields[0]
	args := fields[1:]

	kind := KindMessage

	switch {
	case oscillatorNames[name]:
		kind = KindOscillator
	case noiseNames[name]:
		kind = KindNoise
	case adcNames[name]:
		kind = KindADC
	case dacNames[name]:
		kind = KindDAC
	case rampNames[name]:
		kind = KindRamp
	case strings.HasPrefix(name, SpatPrefix):
		kind = KindSpat
	case strings.Contains(name, "~"):
		kind = KindSignalOp
	}

	return ObjectKind{Kind: kind, Name: name, Args: args}
}

// AudioBearing reports whether the object produces or consumes signal-rate
// data: any tilde object or any spat5 object. Ramps are signal-rate on the
// wire but act as control sources; see the connection classifier.
func (o ObjectKind) AudioBearing() bool {
	switch o.Kind {
	case KindOscillator, KindNoise, KindADC, KindDAC, KindRamp, KindSignalOp, KindSpat:
		return true
	default:
		return false
	}
}

// Generator reports whether the object is a signal source (oscillator,
// noise, or audio input).
func (o ObjectKind) Generator() bool {
	return o.Kind == KindOscillator || o.Kind == KindNoise || o.Kind == KindADC
}

// Output reports whether the object is a terminal signal consumer (DAC
// family or a spatial output stage).
func (o ObjectKind) Output() bool {
	return o.Kind == KindDAC || o.Kind == KindSpat
}
