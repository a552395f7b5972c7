package routenet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/implpass"
	"github.com/fpgaroute/fpgaroute/synth"
)

type fakePlacement struct {
	logicCells map[*implpass.Node]fabric.LogicCellCoordinate
	ioBlocks   map[*implpass.Node]fabric.IoBlockCoordinate
}

func (p *fakePlacement) LogicCellCoordinate(n *implpass.Node) fabric.LogicCellCoordinate {
	return p.logicCells[n]
}

func (p *fakePlacement) IoBlockCoordinate(n *implpass.Node) fabric.IoBlockCoordinate {
	return p.ioBlocks[n]
}

func TestBuildNetlistPassthrough(t *testing.T) {
	inputPort := &implpass.Node{Kind: implpass.ModulePortKind, ModulePort: synth.ModulePort{Name: "a", Direction: synth.PortInput}}
	outputPort := &implpass.Node{Kind: implpass.ModulePortKind, ModulePort: synth.ModulePort{Name: "y", Direction: synth.PortOutput}}
	cell := &implpass.Node{Kind: implpass.LogicCellKind, LogicCell: implpass.LogicCell{LUT: synth.LookUpTable{Name: "lut", Mask: 0xaaaa}}}

	g := &implpass.Graph{
		Nodes: []*implpass.Node{inputPort, cell, outputPort},
		Edges: []*implpass.Edge{
			{Source: inputPort, Sink: cell, Kind: implpass.LogicCellInputEdge, Input: 0},
			{Source: cell, Sink: outputPort, Kind: implpass.ModulePortInputEdge},
		},
	}

	placement := &fakePlacement{
		logicCells: map[*implpass.Node]fabric.LogicCellCoordinate{cell: {X: 0, Y: 0}},
		ioBlocks: map[*implpass.Node]fabric.IoBlockCoordinate{
			inputPort:  {Direction: fabric.West, Position: 0},
			outputPort: {Direction: fabric.East, Position: 0},
		},
	}

	netlist := BuildNetlist(g, placement)
	require.Equal(t, 2, netlist.Len())

	inputSource := fabric.IoBlock(fabric.IoBlockCoordinate{Direction: fabric.West, Position: 0})
	assert.Contains(t, netlist.Members(inputSource), fabric.LogicCellInput(fabric.LogicCellCoordinate{X: 0, Y: 0}, 0))

	cellSource := fabric.LogicCellOutput(fabric.LogicCellCoordinate{X: 0, Y: 0})
	assert.Contains(t, netlist.Members(cellSource), fabric.IoBlock(fabric.IoBlockCoordinate{Direction: fabric.East, Position: 0}))
}

func TestBuildNetlistSkipsClockEdges(t *testing.T) {
	clockPort := &implpass.Node{Kind: implpass.ModulePortKind, ModulePort: synth.ModulePort{Name: "clk", Direction: synth.PortInput}}
	cell := &implpass.Node{Kind: implpass.LogicCellKind}

	g := &implpass.Graph{
		Nodes: []*implpass.Node{clockPort, cell},
		Edges: []*implpass.Edge{
			{Source: clockPort, Sink: cell, Kind: implpass.LogicCellClockEdge},
		},
	}
	placement := &fakePlacement{
		logicCells: map[*implpass.Node]fabric.LogicCellCoordinate{cell: {X: 0, Y: 0}},
		ioBlocks:   map[*implpass.Node]fabric.IoBlockCoordinate{clockPort: {Direction: fabric.North, Position: 0}},
	}

	netlist := BuildNetlist(g, placement)
	clockSource := fabric.IoBlock(fabric.IoBlockCoordinate{Direction: fabric.North, Position: 0})
	assert.Empty(t, netlist.Members(clockSource))
}
