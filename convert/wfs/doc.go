// Package wfs generates wave-field-synthesis setup code and computes the
// per-speaker delays, amplitudes, and prefilter response it depends on.
//
// The physics helpers are plain functions over speaker geometry: delays
// come from 2-D euclidean distance at the configured speed of sound,
// amplitudes from a point-source distance law with a reference distance,
// and the prefilter is a linear-phase FIR with the characteristic
// +3 dB/octave rise up to the array's spatial aliasing frequency.
package wfs
