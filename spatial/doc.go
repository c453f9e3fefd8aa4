// Package spatial recovers the spatial-processing intent of a project from
// two independent inputs: the Spat5 objects present in a Max patch, and the
// speaker geometry declared in an OSC setup dump.
//
// The two analyses meet in Config, which also records the one processing
// method the conversion should target. Method selection is a fixed priority:
// a WFS-capable speaker array dominates (it implies the most specialized
// hardware), explicit ambisonic objects come next, four or more speakers
// fall back to VBAP, and anything smaller is plain stereo.
//
// Array topology classification is heuristic. A long array with near-equal
// elevations reads as a linear WFS strip; near-equal distances read as a
// ring. The derived metrics (strip length, speaker spacing, ring radius)
// feed the converters but are estimates from angular geometry, not surveyed
// measurements.
package spatial
