// Package oscconfig parses the line-oriented OSC dump format that describes
// a Spat5 speaker setup.
//
// Each line is an OSC address followed by whitespace-separated arguments;
// double-quoted arguments may contain spaces. Lines starting with '#' and
// blank lines are skipped. Speaker geometry arrives in bus-scoped addresses:
//
//	/bus/1/format "WFS"
//	/bus/1/name "WFS Bus 1"
//	/bus/1/speakers/aed -39.35 0.0 1.29 -35.37 0.0 1.23
//	/bus/1/speaker/2/delay 0.0186
//	/bus/1/speaker/2/gain -3.5
//
// The aed list carries azimuth/elevation/distance triples in speaker order;
// per-speaker delay and gain lines patch the 1-based speaker they address.
// Unrecognized addresses are retained verbatim in Commands so downstream OSC
// responder generation can see them; they are never an error.
package oscconfig
