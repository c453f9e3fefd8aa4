package spatial

// SphericalCoord locates a speaker or source relative to the listening
// point: azimuth and elevation in degrees, distance in meters.
type SphericalCoord struct {
	Azimuth   float64
	Elevation float64
	Distance  float64
}

// Speaker is one driver of an array, with its measured delay (seconds) and
// gain (dB) carried from the setup dump.
type Speaker struct {
	ID       int
	Position SphericalCoord
	Delay    float64
	Gain     float64
}

// ArrayKind tags a speaker-array topology.
type ArrayKind int

const (
	// Irregular is any arrangement that matches neither heuristic.
	Irregular ArrayKind = iota
	// Ring is a circle of speakers at near-equal distance.
	Ring
	// WFS is a dense linear strip suitable for wave-field synthesis.
	WFS
)

// String returns the topology name.
func (k ArrayKind) String() string {
	switch k {
	case Ring:
		return "ring"
	case WFS:
		return "wfs"
	default:
		return "irregular"
	}
}

// ArrayType is a classified topology with its derived metrics: Radius for
// rings, Length and Spacing (meters) for WFS strips.
type ArrayType struct {
	Kind    ArrayKind
	Radius  float64
	Length  float64
	Spacing float64
}

// WFSConfig holds wave-field-synthesis rendering parameters for one array.
type WFSConfig struct {
	PrefilterCutoff      float64
	DistanceCompensation bool
	AmplitudeCorrection  bool
	AliasingFrequency    float64
}

// SpeakerArray is one classified speaker bus. The speaker list comes from
// the setup dump and is never mutated here; classification happens once.
type SpeakerArray struct {
	ID       string
	Type     ArrayType
	Speakers []Speaker
	WFS      *WFSConfig
}

// FormatKind tags an audio stream format.
type FormatKind int

const (
	// FormatMono is a single channel.
	FormatMono FormatKind = iota
	// FormatStereo is a two-channel stream.
	FormatStereo
	// FormatMultichannel is n discrete channels.
	FormatMultichannel
	// FormatAmbisonic is a spherical-harmonic stream of a given order.
	FormatAmbisonic
)

// AudioFormat describes a stream. Channels is set for multichannel
// formats; Order and Dimension for ambisonic ones.
type AudioFormat struct {
	Kind      FormatKind
	Channels  int
	Order     int
	Dimension int
}

// Multichannel returns an n-channel format.
func Multichannel(n int) AudioFormat {
	return AudioFormat{Kind: FormatMultichannel, Channels: n}
}

// Ambisonic returns an ambisonic format of the given order and dimension.
func Ambisonic(order, dimension int) AudioFormat {
	return AudioFormat{Kind: FormatAmbisonic, Order: order, Dimension: dimension}
}

// ObjectTypeKind tags a recognized spatial object family.
type ObjectTypeKind int

const (
	// Generic is any spat5 object without a dedicated converter.
	Generic ObjectTypeKind = iota
	// Panoramix is the spat5.panoramix~ mixing console.
	Panoramix
	// HoaEncoder is spat5.hoa.encoder~.
	HoaEncoder
	// HoaDecoder is spat5.hoa.decoder~.
	HoaDecoder
	// Vbap is spat5.vbap~.
	Vbap
)

// ObjectType is the tagged variant of a spatial object: Order for HOA
// encoders/decoders, NumSpeakers for VBAP, Name for generics.
type ObjectType struct {
	Kind        ObjectTypeKind
	Order       int
	NumSpeakers int
	Name        string
}

// Parameter is one extracted object parameter. Min and Max bound the valid
// range when the object declares one; both zero means unbounded.
type Parameter struct {
	Name  string
	Value float64
	Min   float64
	Max   float64
}

// Object is one spatial-processing box found in the patch.
type Object struct {
	ID         string
	Type       ObjectType
	Inputs     int
	Outputs    int
	Format     AudioFormat
	Parameters []Parameter
}

// ProcessingMethod is the spatial algorithm a conversion targets.
type ProcessingMethod int

const (
	// MethodStereo is plain stereo output, the default.
	MethodStereo ProcessingMethod = iota
	// MethodVBAP is vector-based amplitude panning.
	MethodVBAP
	// MethodHOA is higher-order ambisonics.
	MethodHOA
	// MethodWFS is wave-field synthesis.
	MethodWFS
)

// String returns the method name.
func (m ProcessingMethod) String() string {
	switch m {
	case MethodVBAP:
		return "vbap"
	case MethodHOA:
		return "hoa"
	case MethodWFS:
		return "wfs"
	default:
		return "stereo"
	}
}

// Config aggregates everything the converters need: the discovered spatial
// objects, the classified speaker arrays, and the selected method. Built
// once per conversion run and read-only afterwards.
type Config struct {
	Objects []Object
	Arrays  []SpeakerArray
	Method  ProcessingMethod
}
