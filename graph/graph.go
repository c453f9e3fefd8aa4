package graph

import (
	"fmt"

	"github.com/jerry73204/max2sc/patch"
)

// ConnectionType tags what a cable carries.
type ConnectionType int

const (
	// Unknown is the zero value; Build never produces it.
	Unknown ConnectionType = iota
	// Audio marks a signal-rate cable between two audio-bearing objects.
	Audio
	// Control marks a parameter cable (widget values, ramps, mixed edges).
	Control
	// Message marks a symbolic message cable.
	Message
)

// String returns the tag name.
func (c ConnectionType) String() string {
	switch c {
	case Audio:
		return "audio"
	case Control:
		return "control"
	case Message:
		return "message"
	default:
		return "unknown"
	}
}

// AudioNode is one patch box in the graph. Nodes are immutable after Build.
type AudioNode struct {
	ID         string
	MaxClass   string
	Text       string
	Kind       patch.ObjectKind
	NumInlets  int
	NumOutlets int
	Rect       []float64
}

// AudioConnection is one classified cable. From and To are node indices;
// Outlet and Inlet are the port indices carried unchanged from the file.
type AudioConnection struct {
	From   int
	To     int
	Outlet int
	Inlet  int
	Type   ConnectionType
}

// SignalFlowGraph is a directed graph of AudioNode vertices and
// AudioConnection edges. Edges are stored in cable order; nothing is removed
// once added.
type SignalFlowGraph struct {
	nodes []AudioNode
	edges []AudioConnection
	out   [][]int
	in    [][]int
}

// NodeCount returns the number of nodes.
func (g *SignalFlowGraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *SignalFlowGraph) EdgeCount() int { return len(g.edges) }

// Node returns the node at index i.
func (g *SignalFlowGraph) Node(i int) *AudioNode { return &g.nodes[i] }

// Edge returns the edge at index i.
func (g *SignalFlowGraph) Edge(i int) *AudioConnection { return &g.edges[i] }

// Nodes returns the node slice in box order. Callers must not mutate it.
func (g *SignalFlowGraph) Nodes() []AudioNode { return g.nodes }

// Edges returns the edge slice in cable order. Callers must not mutate it.
func (g *SignalFlowGraph) Edges() []AudioConnection { return g.edges }

// Outgoing returns the indices of edges leaving node i, in cable order.
func (g *SignalFlowGraph) Outgoing(i int) []int { return g.out[i] }

// Incoming returns the indices of edges entering node i, in cable order.
func (g *SignalFlowGraph) Incoming(i int) []int { return g.in[i] }

// Build constructs the signal-flow graph for a patch. Pass one creates one
// node per box; pass two resolves and classifies one edge per cable. The
// id-to-index map is local to this function. Any malformed or dangling cable
// endpoint fails the whole build with a RoutingError.
func Build(p *patch.Patch) (*SignalFlowGraph, error) {
	g := &SignalFlowGraph{
		nodes: make([]AudioNode, 0, len(p.Patcher.Boxes)),
		edges: make([]AudioConnection, 0, len(p.Patcher.Lines)),
	}

	index := make(map[string]int, len(p.Patcher.Boxes))

	for _, box := range p.Patcher.Boxes {
		c := box.Content
		index[c.ID] = len(g.nodes)

		g.nodes = append(g.nodes, AudioNode{
			ID:         c.ID,
			MaxClass:   c.MaxClass,
			Text:       c.Text,
			Kind:       patch.ParseKind(c.MaxClass, c.Text),
			NumInlets:  c.NumInlets,
			NumOutlets: c.NumOutlets,
			Rect:       c.PatchingRect,
		})
	}

	g.out = make([][]int, len(g.nodes))
	g.in = make([][]int, len(g.nodes))

	for i, line := range p.Patcher.Lines {
		srcID, outlet, err := line.PatchLine.Source.Resolve()
		if err != nil {
			return nil, &RoutingError{Cable: i, Detail: fmt.Sprintf("source: %v", err)}
		}

		dstID, inlet, err := line.PatchLine.Destination.Resolve()
		if err != nil {
			return nil, &RoutingError{Cable: i, Detail: fmt.Sprintf("destination: %v", err)}
		}

		from, ok := index[srcID]
		if !ok {
			return nil, &RoutingError{Cable: i, Detail: fmt.Sprintf("unknown source id %q", srcID)}
		}

		to, ok := index[dstID]
		if !ok {
			return nil, &RoutingError{Cable: i, Detail: fmt.Sprintf("unknown destination id %q", dstID)}
		}

		edge := AudioConnection{
			From:   from,
			To:     to,
			Outlet: outlet,
			Inlet:  inlet,
			Type:   Classify(&g.nodes[from], &g.nodes[to]),
		}

		g.out[from] = append(g.out[from], len(g.edges))
		g.in[to] = append(g.in[to], len(g.edges))
		g.edges = append(g.edges, edge)
	}

	return g, nil
}
