// Package sphmath provides spherical-coordinate helpers shared by the
// spatial analyzer and the WFS/VBAP/HOA converters.
//
// Azimuth and elevation are in degrees, distance in meters. Azimuth 0 is
// straight ahead, positive counter-clockwise; elevation 0 is the horizontal
// plane, positive up.
package sphmath

import (
	"math"
	"sort"
)

// ToCartesian converts azimuth/elevation (degrees) and distance to a 3-D
// cartesian point. X points forward, Y left, Z up.
func ToCartesian(azimuth, elevation, distance float64) (x, y, z float64) {
	azRad := azimuth * math.Pi / 180
	elRad := elevation * math.Pi / 180

	x = distance * math.Cos(elRad) * math.Cos(azRad)
	y = distance * math.Cos(elRad) * math.Sin(azRad)
	z = distance * math.Sin(elRad)

	return x, y, z
}

// ToCartesian2D projects azimuth (degrees) and distance onto the horizontal
// plane, ignoring elevation.
func ToCartesian2D(azimuth, distance float64) (x, y float64) {
	azRad := azimuth * math.Pi / 180

	return distance * math.Cos(azRad), distance * math.Sin(azRad)
}

// Mean returns the arithmetic mean of vals, or 0 for an empty slice.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range vals {
		sum += v
	}

	return sum / float64(len(vals))
}

// SortedCopy returns vals sorted ascending without mutating the input.
func SortedCopy(vals []float64) []float64 {
	out := make([]float64, len(vals))
	copy(out, vals)
	sort.Float64s(out)

	return out
}

// MeanGap returns the average gap between consecutive values of the
// ascending-sorted input. Returns 0 for fewer than two values.
func MeanGap(sorted []float64) float64 {
	if len(sorted) < 2 {
		return 0
	}

	span := sorted[len(sorted)-1] - sorted[0]

	return span / float64(len(sorted)-1)
}

// MeanGapWrapped returns the average angular gap between consecutive
// ascending-sorted azimuths in degrees, including the wrap-around gap from
// the last value back to the first (mod 360).
func MeanGapWrapped(sorted []float64) float64 {
	if len(sorted) < 2 {
		return 0
	}

	total := 0.0
	for i := 1; i < len(sorted); i++ {
		total += sorted[i] - sorted[i-1]
	}

	total += math.Mod(360+sorted[0]-sorted[len(sorted)-1], 360)

	return total / float64(len(sorted))
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
