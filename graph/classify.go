package graph

import "github.com/jerry73204/max2sc/patch"

// Classify infers what a cable between src and dst carries. It is total and
// pure: every node pair maps to exactly one tag.
//
// Rules, in priority order:
//   - a control widget at either end always makes the edge Control, since a
//     widget can neither emit nor accept signal-rate data
//   - a ramp generator source (line~ family) drives parameters, so its
//     outgoing edges are Control even though both ends carry tildes
//   - two audio-bearing endpoints make the edge Audio
//   - exactly one audio-bearing endpoint makes the edge Control (a mixed
//     edge carries parameter data into or out of the signal path)
//   - anything else is a Message edge
func Classify(src, dst *AudioNode) ConnectionType {
	if src.Kind.Kind == patch.KindControlWidget || dst.Kind.Kind == patch.KindControlWidget {
		return Control
	}

	if src.Kind.Kind == patch.KindRamp {
		return Control
	}

	srcAudio := src.Kind.AudioBearing()
	dstAudio := dst.Kind.AudioBearing()

	switch {
	case srcAudio && dstAudio:
		return Audio
	case srcAudio || dstAudio:
		return Control
	default:
		return Message
	}
}
