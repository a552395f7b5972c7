package routenet

import (
	"fmt"

	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/implpass"
	"github.com/fpgaroute/fpgaroute/synth"
)

// PlacementView is the read-only view of a placement that routenet needs:
// where each logic cell and module port node currently sits on the fabric.
// Implemented by placement.Configuration.
type PlacementView interface {
	LogicCellCoordinate(node *implpass.Node) fabric.LogicCellCoordinate
	IoBlockCoordinate(node *implpass.Node) fabric.IoBlockCoordinate
}

// BuildNetlist projects g onto fabric nodes using placement, producing a
// fabric.NetList mapping each source fabric node to the set of sink fabric
// nodes it must reach.
//
// Clock edges are skipped: the fabric treats clock distribution as out of
// scope. Any other edge/node combination Implement could not have produced
// is a programmer error and panics.
func BuildNetlist(g *implpass.Graph, placement PlacementView) *fabric.NetList {
	netlist := fabric.NewNetList()

	for _, edge := range g.Edges {
		if edge.Kind == implpass.LogicCellClockEdge {
			continue
		}

		source := sourceFabricNode(edge.Source, placement)
		sink, ok := sinkFabricNode(edge, placement)
		if !ok {
			panic(fmt.Sprintf("routenet: illegal connection via edge kind %v", edge.Kind))
		}
		netlist.Add(source, sink)
	}

	// Ensure every source node appears even if it drives no routed sinks
	// (e.g. an unused module input), so placement/pathfinder always see a
	// complete picture of what must be placed.
	for _, node := range g.Nodes {
		switch node.Kind {
		case implpass.LogicCellKind:
			netlist.EnsureSource(fabric.LogicCellOutput(placement.LogicCellCoordinate(node)))
		case implpass.ModulePortKind:
			if node.ModulePort.Direction == synth.PortInput {
				netlist.EnsureSource(fabric.IoBlock(placement.IoBlockCoordinate(node)))
			}
		}
	}

	return netlist
}

func sourceFabricNode(n *implpass.Node, placement PlacementView) fabric.Node {
	switch n.Kind {
	case implpass.LogicCellKind:
		return fabric.LogicCellOutput(placement.LogicCellCoordinate(n))
	case implpass.ModulePortKind:
		return fabric.IoBlock(placement.IoBlockCoordinate(n))
	default:
		panic("routenet: invalid implpass.Node kind")
	}
}

func sinkFabricNode(edge *implpass.Edge, placement PlacementView) (fabric.Node, bool) {
	switch {
	case edge.Kind == implpass.LogicCellInputEdge && edge.Sink.Kind == implpass.LogicCellKind:
		return fabric.LogicCellInput(placement.LogicCellCoordinate(edge.Sink), edge.Input), true
	case edge.Kind == implpass.ModulePortInputEdge && edge.Sink.Kind == implpass.ModulePortKind:
		return fabric.IoBlock(placement.IoBlockCoordinate(edge.Sink)), true
	default:
		return fabric.Node{}, false
	}
}
