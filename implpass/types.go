package implpass

import (
	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/synth"
)

// PassthroughMask is the 16-bit LUT mask that routes input A straight to
// the output, used to buffer an unmerged flip-flop through a logic cell.
const PassthroughMask uint16 = 0xaaaa

// LogicCell is a placed LUT, optionally buffered through a flip-flop. If FF
// is nil the logic cell output is fed directly from the LUT output.
type LogicCell struct {
	LUT synth.LookUpTable
	FF  *synth.FlipFlop
}

// NodeKind discriminates the variants of Node.
type NodeKind int

const (
	LogicCellKind NodeKind = iota
	ModulePortKind
)

// Node is one implementation-graph element: a logic cell or a module port.
type Node struct {
	Kind       NodeKind
	LogicCell  LogicCell
	ModulePort synth.ModulePort
}

// EdgeKind discriminates the variants of Edge.
type EdgeKind int

const (
	LogicCellInputEdge EdgeKind = iota
	LogicCellClockEdge
	ModulePortInputEdge
)

// Edge is a directed connection from a driving node to a sink node.
type Edge struct {
	Source *Node
	Sink   *Node

	Kind  EdgeKind
	Input fabric.LUTInput
}

func (e *Edge) canConnectTo() bool {
	switch e.Kind {
	case LogicCellInputEdge, LogicCellClockEdge:
		return e.Sink.Kind == LogicCellKind
	case ModulePortInputEdge:
		return e.Sink.Kind == ModulePortKind && e.Sink.ModulePort.Direction == synth.PortOutput
	default:
		return false
	}
}
