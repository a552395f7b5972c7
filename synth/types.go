package synth

import "github.com/fpgaroute/fpgaroute/fabric"

// FlipFlopTrigger is the clock edge a flip-flop reacts to.
type FlipFlopTrigger int

const (
	RisingEdge FlipFlopTrigger = iota
	FallingEdge
)

func (t FlipFlopTrigger) String() string {
	if t == RisingEdge {
		return "rising"
	}
	return "falling"
}

// ModulePortDirection is the direction of a top-level module port, as seen
// from outside the design.
type ModulePortDirection int

const (
	PortInput ModulePortDirection = iota
	PortOutput
)

func (d ModulePortDirection) String() string {
	if d == PortInput {
		return "input"
	}
	return "output"
}

// LookUpTable is a four-input, one-output combinational cell configured by a
// 16-bit truth-table mask.
type LookUpTable struct {
	Name string
	Mask uint16
}

// FlipFlop is a single-bit clocked storage element.
type FlipFlop struct {
	Name    string
	Trigger FlipFlopTrigger
}

// ModulePort is a single bit of a top-level module port.
type ModulePort struct {
	Name      string
	Direction ModulePortDirection
}

// NodeKind discriminates the variants of Node.
type NodeKind int

const (
	LookUpTableKind NodeKind = iota
	FlipFlopKind
	ModulePortKind
)

// Node is one design-graph element: a LUT, a flip-flop, or a module port.
type Node struct {
	Kind NodeKind
	LUT  LookUpTable
	FF   FlipFlop
	Port ModulePort
}

// Name returns the node's identifying name, for diagnostics.
func (n *Node) Name() string {
	switch n.Kind {
	case LookUpTableKind:
		return n.LUT.Name
	case FlipFlopKind:
		return n.FF.Name
	case ModulePortKind:
		return n.Port.Name
	default:
		return "<invalid>"
	}
}

// FlipFlopInput names one of a flip-flop's two inputs.
type FlipFlopInput int

const (
	Clock FlipFlopInput = iota
	Data
)

func (i FlipFlopInput) String() string {
	if i == Clock {
		return "clock"
	}
	return "data"
}

// EdgeKind discriminates the variants of Edge.
type EdgeKind int

const (
	LUTInputEdge EdgeKind = iota
	FlipFlopInputEdge
	ModulePortInputEdge
)

// Edge is a directed connection from a driving node to a sink node.
type Edge struct {
	Source *Node
	Sink   *Node

	Kind          EdgeKind
	LUTInput      fabric.LUTInput
	FlipFlopInput FlipFlopInput
}

// canConnectTo reports whether e's kind is legal for its sink node. This
// mirrors fabric.Node.CanConnectTo but over the design graph's node/edge
// vocabulary.
func (e *Edge) canConnectTo() bool {
	switch e.Kind {
	case LUTInputEdge:
		return e.Sink.Kind == LookUpTableKind
	case FlipFlopInputEdge:
		return e.Sink.Kind == FlipFlopKind
	case ModulePortInputEdge:
		return e.Sink.Kind == ModulePortKind && e.Sink.Port.Direction == PortOutput
	default:
		return false
	}
}
