package vbap

import (
	"math"

	"github.com/jerry73204/max2sc/internal/sphmath"
	"github.com/jerry73204/max2sc/spatial"
)

// degenerateDet is the determinant threshold below which a speaker triplet
// is treated as coplanar with the origin.
const degenerateDet = 1e-9

// FindTriangle picks the speaker triplet enclosing the source direction:
// the three speakers whose unit vectors point closest to it, skipping
// candidates that would make the basis degenerate. Needs at least three
// speakers; returns ok = false otherwise.
func FindTriangle(azimuth, elevation float64, speakers []spatial.Speaker) (triplet [3]int, ok bool) {
	if len(speakers) < 3 {
		return triplet, false
	}

	sx, sy, sz := unitVector(azimuth, elevation)

	order := make([]int, len(speakers))
	for i := range order {
		order[i] = i
	}

	dots := make([]float64, len(speakers))
	for i, s := range speakers {
		x, y, z := unitVector(s.Position.Azimuth, s.Position.Elevation)
		dots[i] = sx*x + sy*y + sz*z
	}

	// Selection sort by descending dot product; layouts are small.
	for i := 0; i < len(order); i++ {
		best := i
		for j := i + 1; j < len(order); j++ {
			if dots[order[j]] > dots[order[best]] {
				best = j
			}
		}

		order[i], order[best] = order[best], order[i]
	}

	triplet[0] = order[0]
	triplet[1] = order[1]

	for _, idx := range order[2:] {
		triplet[2] = idx
		if math.Abs(basisDeterminant(triplet, speakers)) > degenerateDet {
			return triplet, true
		}
	}

	// All candidates coplanar; fall back to the three closest.
	triplet[2] = order[2]

	return triplet, true
}

// Gains solves the panning gains for a source direction over a speaker
// triplet: the direction vector expressed in the triplet's basis, then
// power-normalized. Degenerate bases fall back to uniform gains so a bad
// layout detunes the image instead of silencing it.
func Gains(azimuth, elevation float64, triplet [3]int, speakers []spatial.Speaker) [3]float64 {
	uniform := [3]float64{1 / math.Sqrt(3), 1 / math.Sqrt(3), 1 / math.Sqrt(3)}

	for _, idx := range triplet {
		if idx < 0 || idx >= len(speakers) {
			return uniform
		}
	}

	var basis [3][3]float64
	for i, idx := range triplet {
		s := speakers[idx]
		basis[i][0], basis[i][1], basis[i][2] = unitVector(s.Position.Azimuth, s.Position.Elevation)
	}

	inv, ok := invert3(basis)
	if !ok {
		return uniform
	}

	px, py, pz := unitVector(azimuth, elevation)

	// g = p * inverse(L), with L's rows the speaker unit vectors.
	var g [3]float64
	for j := 0; j < 3; j++ {
		g[j] = px*inv[0][j] + py*inv[1][j] + pz*inv[2][j]
	}

	norm := math.Sqrt(g[0]*g[0] + g[1]*g[1] + g[2]*g[2])
	if norm < degenerateDet {
		return uniform
	}

	for j := range g {
		g[j] /= norm
	}

	return g
}

func basisDeterminant(triplet [3]int, speakers []spatial.Speaker) float64 {
	var m [3][3]float64
	for i, idx := range triplet {
		s := speakers[idx]
		m[i][0], m[i][1], m[i][2] = unitVector(s.Position.Azimuth, s.Position.Elevation)
	}

	return det3(m)
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// invert3 inverts a 3x3 matrix by cofactor expansion; ok is false when the
// matrix is singular.
func invert3(m [3][3]float64) (inv [3][3]float64, ok bool) {
	d := det3(m)
	if math.Abs(d) < degenerateDet {
		return inv, false
	}

	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) / d
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) / d
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) / d
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) / d
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) / d
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) / d
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) / d
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) / d
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) / d

	return inv, true
}

func unitVector(azimuth, elevation float64) (x, y, z float64) {
	return sphmath.ToCartesian(azimuth, elevation, 1)
}
