package implpass

import "github.com/fpgaroute/fpgaroute/synth"

// Implement fuses g's LUT/flip-flop chains into logic cells and returns the
// resulting implementation graph.
//
// A LUT whose only fanout is a single flip-flop's data input is merged into
// one LogicCell{lut, ff}. Every other LUT becomes a standalone
// LogicCell{lut, nil}; every other flip-flop becomes a standalone
// LogicCell{lut: passthrough-A, ff} so its data input can still be wired
// through a logic-cell input. Module ports pass through unchanged.
func Implement(g *synth.Graph) (*Graph, error) {
	if err := sanityCheckFlipFlops(g); err != nil {
		return nil, err
	}

	out := newGraph()
	replacements := make(map[*synth.Node]*Node)

	// First pass: fuse a LUT into its single-sink flip-flop's logic cell.
	for _, edge := range g.Edges {
		if edge.Kind != synth.FlipFlopInputEdge || edge.FlipFlopInput != synth.Data {
			continue
		}
		if edge.Source.Kind != synth.LookUpTableKind || edge.Sink.Kind != synth.FlipFlopKind {
			continue
		}
		if len(g.OutEdges(edge.Source)) != 1 {
			continue
		}

		ff := edge.Sink.FF
		cell := out.addNode(&Node{
			Kind:      LogicCellKind,
			LogicCell: LogicCell{LUT: edge.Source.LUT, FF: &ff},
		})
		replacements[edge.Source] = cell
		replacements[edge.Sink] = cell
	}

	replace := func(n *synth.Node) *Node {
		if r, ok := replacements[n]; ok {
			return r
		}
		var node *Node
		switch n.Kind {
		case synth.LookUpTableKind:
			node = &Node{Kind: LogicCellKind, LogicCell: LogicCell{LUT: n.LUT}}
		case synth.FlipFlopKind:
			ff := n.FF
			passthrough := synth.LookUpTable{Name: "$lut$passthrough", Mask: PassthroughMask}
			node = &Node{Kind: LogicCellKind, LogicCell: LogicCell{LUT: passthrough, FF: &ff}}
		case synth.ModulePortKind:
			node = &Node{Kind: ModulePortKind, ModulePort: n.Port}
		default:
			panic("implpass: invalid synth.Node kind")
		}
		node = out.addNode(node)
		replacements[n] = node
		return node
	}

	// Second pass: wire every remaining edge against the replacement nodes.
	for _, edge := range g.Edges {
		source := replace(edge.Source)
		sink := replace(edge.Sink)

		if source == sink {
			// The edge between a merged LUT and its flip-flop's data
			// input collapses into a single node; nothing to wire.
			continue
		}

		var implEdge Edge
		switch edge.Kind {
		case synth.LUTInputEdge:
			implEdge = Edge{Source: source, Sink: sink, Kind: LogicCellInputEdge, Input: edge.LUTInput}
		case synth.ModulePortInputEdge:
			implEdge = Edge{Source: source, Sink: sink, Kind: ModulePortInputEdge}
		case synth.FlipFlopInputEdge:
			switch edge.FlipFlopInput {
			case synth.Clock:
				implEdge = Edge{Source: source, Sink: sink, Kind: LogicCellClockEdge}
			case synth.Data:
				// A connection into an unmerged flip-flop is
				// redirected through its passthrough LUT's A input.
				implEdge = Edge{Source: source, Sink: sink, Kind: LogicCellInputEdge, Input: 0}
			}
		}
		out.addEdge(&implEdge)
	}

	return out, nil
}

func sanityCheckFlipFlops(g *synth.Graph) error {
	var mainClock *synth.Node

	for _, edge := range g.Edges {
		if edge.Kind != synth.FlipFlopInputEdge || edge.FlipFlopInput != synth.Clock {
			continue
		}
		ff := edge.Sink

		if edge.Source.Kind != synth.ModulePortKind || edge.Source.Port.Direction != synth.PortInput {
			return &FlipFlopClockSourceError{FlipFlop: ff.Name(), ClockSource: edge.Source.Name()}
		}

		if mainClock == nil {
			mainClock = edge.Source
		} else if mainClock != edge.Source {
			return &MultipleClockDomainsError{
				FlipFlop:            ff.Name(),
				ExpectedClockSource: mainClock.Name(),
				ActualClockSource:   edge.Source.Name(),
			}
		}
	}
	return nil
}
