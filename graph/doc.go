// Package graph reconstructs a typed signal-flow graph from the flat box and
// cable lists of a Max patch.
//
// Build creates one node per box and one classified edge per cable. Edge
// classification distinguishes audio, control, and message cables from the
// endpoint object kinds alone; it is a pure function, so rebuilding the same
// patch always yields the same graph. A cable with a malformed endpoint or
// an unknown object id aborts the build with a routing error — there is no
// partial graph.
//
// On top of the built graph, AudioSources, AudioSinks, and
// AnalyzeSignalChains recover the audio routing topology: generator nodes
// with no incoming audio cable, terminal outputs with no outgoing audio
// cable, and the audio-only paths between them. Path discovery is a bounded
// depth-first search; see ChainOptions for the budgets.
//
// Cycles are legal input (Max allows feedback through delays), so the
// builder performs no cycle detection; ErrCircularDependency is reserved for
// callers that add one.
package graph
