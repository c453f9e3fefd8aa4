// Package patch models the Max/MSP .maxpat file format and lexes box text
// into a closed object-kind enumeration.
//
// A patch is a flat, ordered list of boxes (objects) and patchlines (cables).
// The format is plain JSON; ParseFile and ParseString deserialize it without
// interpretation. Cable endpoints are loosely typed in the file and stay raw
// until the graph builder resolves them, so a malformed endpoint surfaces as
// a routing error on the cable that carries it rather than as a parse
// failure for the whole file.
//
// # Object kinds
//
// Downstream analysis never re-parses box text. ParseKind tokenizes the text
// once and tags the box with a Kind drawn from a small fixed set (oscillator,
// noise, ADC, DAC, control widget, ramp, signal operator, spatial, message).
// Unknown objects keep their original name under the catch-all kinds so a
// conversion can degrade gracefully instead of failing.
package patch
