package graph

import (
	"strings"

	"github.com/jerry73204/max2sc/patch"
)

const (
	defaultMaxDepth  = 64
	defaultMaxChains = 256
)

// SignalChain is one discovered audio-only path. Source and Sink are node
// indices; Path lists every node from source to sink inclusive.
type SignalChain struct {
	Source int
	Sink   int
	Path   []int
}

// ChainOptions bounds the path search. Zero values select the defaults
// (depth 64, 256 chains). Dense patches can make exhaustive path search
// explode, so both budgets are hard limits, not hints.
type ChainOptions struct {
	MaxDepth  int
	MaxChains int
}

func (o ChainOptions) normalize() ChainOptions {
	if o.MaxDepth <= 0 {
		o.MaxDepth = defaultMaxDepth
	}

	if o.MaxChains <= 0 {
		o.MaxChains = defaultMaxChains
	}

	return o
}

// AudioSources returns the indices of generator nodes (oscillator, noise,
// ADC family) that no audio cable feeds, in box order.
func (g *SignalFlowGraph) AudioSources() []int {
	var sources []int

	for i := range g.nodes {
		if !g.nodes[i].Kind.Generator() {
			continue
		}

		if !g.hasAudioEdge(g.in[i]) {
			sources = append(sources, i)
		}
	}

	return sources
}

// AudioSinks returns the indices of terminal output nodes (DAC family,
// spatial outputs) with no outgoing audio cable, in box order.
func (g *SignalFlowGraph) AudioSinks() []int {
	var sinks []int

	for i := range g.nodes {
		if !g.nodes[i].Kind.Output() {
			continue
		}

		if !g.hasAudioEdge(g.out[i]) {
			sinks = append(sinks, i)
		}
	}

	return sinks
}

// SpatialNodes returns the indices of spatial-processing nodes: every spat5
// object plus the builtin pan family.
func (g *SignalFlowGraph) SpatialNodes() []int {
	var nodes []int

	for i := range g.nodes {
		k := g.nodes[i].Kind
		if k.Kind == patch.KindSpat || (k.Kind == patch.KindSignalOp && strings.HasPrefix(k.Name, "pan")) {
			nodes = append(nodes, i)
		}
	}

	return nodes
}

func (g *SignalFlowGraph) hasAudioEdge(edgeIdx []int) bool {
	for _, e := range edgeIdx {
		if g.edges[e].Type == Audio {
			return true
		}
	}

	return false
}

// AnalyzeSignalChains finds, for every (source, sink) pair, the first simple
// path whose edges are all Audio. The search is depth-first in cable order
// and bounded by opts, so results are deterministic and the cost stays
// linear in the budgets rather than exponential in patch density.
func AnalyzeSignalChains(g *SignalFlowGraph, opts ChainOptions) []SignalChain {
	opts = opts.normalize()

	var chains []SignalChain

	sinks := g.AudioSinks()
	sinkSet := make(map[int]bool, len(sinks))

	for _, s := range sinks {
		sinkSet[s] = true
	}

	for _, source := range g.AudioSources() {
		for _, sink := range sinks {
			if len(chains) >= opts.MaxChains {
				return chains
			}

			visited := make([]bool, len(g.nodes))

			path := g.findAudioPath(source, sink, visited, opts.MaxDepth)
			if path != nil {
				chains = append(chains, SignalChain{Source: source, Sink: sink, Path: path})
			}
		}
	}

	return chains
}

// findAudioPath returns the first simple audio-only path from cur to target
// within the remaining depth budget, or nil.
func (g *SignalFlowGraph) findAudioPath(cur, target int, visited []bool, depth int) []int {
	if depth < 0 {
		return nil
	}

	if cur == target {
		return []int{cur}
	}

	visited[cur] = true
	defer func() { visited[cur] = false }()

	for _, e := range g.out[cur] {
		edge := &g.edges[e]
		if edge.Type != Audio || visited[edge.To] {
			continue
		}

		if rest := g.findAudioPath(edge.To, target, visited, depth-1); rest != nil {
			return append([]int{cur}, rest...)
		}
	}

	return nil
}
