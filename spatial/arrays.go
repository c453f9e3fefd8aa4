package spatial

import (
	"math"
	"strconv"

	"github.com/jerry73204/max2sc/internal/sphmath"
	"github.com/jerry73204/max2sc/oscconfig"
)

const (
	wfsMinSpeakers      = 16
	wfsElevationTol     = 10.0 // degrees around the mean
	ringMinSpeakers     = 4
	ringDistanceTol     = 0.5 // meters around the mean
	referenceSoundSpeed = 343.0
	defaultPrefilterHz  = 200.0
)

// ClassifyArray determines the topology of a speaker list. The WFS check
// runs first: a hand-built array that satisfies both heuristics classifies
// as WFS. Classification is a pure function of the positions, so it is
// idempotent.
func ClassifyArray(speakers []Speaker) ArrayType {
	switch {
	case len(speakers) >= wfsMinSpeakers && isLinear(speakers):
		return ArrayType{
			Kind:    WFS,
			Length:  arrayLength(speakers),
			Spacing: speakerSpacing(speakers),
		}
	case len(speakers) >= ringMinSpeakers && isCircular(speakers):
		return ArrayType{Kind: Ring, Radius: meanDistance(speakers)}
	default:
		return ArrayType{Kind: Irregular}
	}
}

// FromLayout adapts one parsed bus layout into a classified array. WFS
// arrays receive a default rendering config with the spatial-aliasing
// frequency derived from the speaker spacing.
func FromLayout(l oscconfig.SpeakerLayout) SpeakerArray {
	speakers := make([]Speaker, len(l.Speakers))
	for i, s := range l.Speakers {
		speakers[i] = Speaker{
			ID: s.ID,
			Position: SphericalCoord{
				Azimuth:   s.Azimuth,
				Elevation: s.Elevation,
				Distance:  s.Distance,
			},
			Delay: s.Delay,
			Gain:  s.Gain,
		}
	}

	arrayType := ClassifyArray(speakers)

	id := l.Name
	if id == "" {
		id = "bus-" + strconv.Itoa(l.BusID)
	}

	array := SpeakerArray{
		ID:       id,
		Type:     arrayType,
		Speakers: speakers,
	}

	if arrayType.Kind == WFS {
		array.WFS = defaultWFSConfig(arrayType)
	}

	return array
}

// defaultWFSConfig derives the rendering defaults for a classified WFS
// strip. Above f = c / (2 d) the strip spatially aliases, so that bound
// seeds both the aliasing marker and the prefilter roll-off start.
func defaultWFSConfig(t ArrayType) *WFSConfig {
	cfg := &WFSConfig{PrefilterCutoff: defaultPrefilterHz}

	if t.Spacing > 0 {
		cfg.AliasingFrequency = referenceSoundSpeed / (2 * t.Spacing)
	}

	return cfg
}

func isLinear(speakers []Speaker) bool {
	if len(speakers) < 3 {
		return false
	}

	mean := sphmath.Mean(elevations(speakers))
	for _, s := range speakers {
		if math.Abs(s.Position.Elevation-mean) >= wfsElevationTol {
			return false
		}
	}

	return true
}

func isCircular(speakers []Speaker) bool {
	mean := meanDistance(speakers)
	for _, s := range speakers {
		if math.Abs(s.Position.Distance-mean) >= ringDistanceTol {
			return false
		}
	}

	return true
}

// arrayLength estimates the physical strip length: angular azimuth span at
// the mean distance.
func arrayLength(speakers []Speaker) float64 {
	minAz := math.Inf(1)
	maxAz := math.Inf(-1)

	for _, s := range speakers {
		minAz = math.Min(minAz, s.Position.Azimuth)
		maxAz = math.Max(maxAz, s.Position.Azimuth)
	}

	return meanDistance(speakers) * sphmath.DegToRad(maxAz-minAz)
}

// speakerSpacing estimates the inter-speaker pitch: average angular gap of
// the azimuth-sorted speakers at the mean distance.
func speakerSpacing(speakers []Speaker) float64 {
	if len(speakers) < 2 {
		return 0
	}

	sorted := sphmath.SortedCopy(azimuths(speakers))
	gap := sphmath.MeanGap(sorted)

	return meanDistance(speakers) * sphmath.DegToRad(gap)
}

func meanDistance(speakers []Speaker) float64 {
	return sphmath.Mean(distances(speakers))
}

func azimuths(speakers []Speaker) []float64 {
	vals := make([]float64, len(speakers))
	for i, s := range speakers {
		vals[i] = s.Position.Azimuth
	}

	return vals
}

func elevations(speakers []Speaker) []float64 {
	vals := make([]float64, len(speakers))
	for i, s := range speakers {
		vals[i] = s.Position.Elevation
	}

	return vals
}

func distances(speakers []Speaker) []float64 {
	vals := make([]float64, len(speakers))
	for i, s := range speakers {
		vals[i] = s.Position.Distance
	}

	return vals
}

