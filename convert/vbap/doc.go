// Package vbap generates vector-base amplitude panning setup code and
// computes panning gains over classified speaker arrays.
//
// Ring arrays pan in 2-D over their sorted azimuths; linear strips and
// irregular layouts get a 3-D setup. ValidateSetup checks a layout before
// generation and derives the spread that evens out the energy between
// adjacent speakers.
package vbap
