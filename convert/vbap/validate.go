package vbap

import (
	"fmt"
	"math"

	"github.com/jerry73204/max2sc/internal/sphmath"
	"github.com/jerry73204/max2sc/spatial"
)

const (
	minSpeakers      = 3
	minSeparationDeg = 10.0
)

// ValidationResult reports whether a layout can drive a VBAP setup.
// Warnings flag questionable geometry that still works; Errors make the
// layout unusable. OptimalSpread is the spread value that evens out the
// energy between adjacent speakers.
type ValidationResult struct {
	IsValid       bool
	Warnings      []string
	Errors        []string
	OptimalSpread float64
}

// ValidateSetup checks a speaker array before generation.
func ValidateSetup(a *spatial.SpeakerArray) ValidationResult {
	res := ValidationResult{IsValid: true}

	if len(a.Speakers) < minSpeakers {
		res.IsValid = false
		res.Errors = append(res.Errors,
			fmt.Sprintf("vbap needs at least %d speakers, have %d", minSpeakers, len(a.Speakers)))

		return res
	}

	az := azimuths(a.Speakers)

	// One warning per offending pair, so a cluster of k speakers
	// surfaces all k*(k-1)/2 conflicts.
	for i := 0; i < len(az); i++ {
		for j := i + 1; j < len(az); j++ {
			diff := math.Abs(az[i] - az[j])
			if diff < minSeparationDeg {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("speakers %d and %d are %.1f deg apart; panning resolution degrades below %.0f deg",
						i, j, diff, minSeparationDeg))
			}
		}
	}

	res.OptimalSpread = OptimalSpread(a.Speakers)

	return res
}

// OptimalSpread returns the mean angular gap between adjacent speakers,
// including the wrap-around gap. Spreading a source by this angle keeps
// its width stable as it moves across the layout.
func OptimalSpread(speakers []spatial.Speaker) float64 {
	if len(speakers) < 2 {
		return 0
	}

	sorted := sphmath.SortedCopy(azimuths(speakers))

	return sphmath.MeanGapWrapped(sorted)
}

// Use3D reports whether a layout needs elevation panning: any speaker
// meaningfully off the horizontal plane.
func Use3D(speakers []spatial.Speaker) bool {
	for _, s := range speakers {
		if math.Abs(s.Position.Elevation) > 1e-6 {
			return true
		}
	}

	return false
}
