package fabric

// NodeKind discriminates the variants of Node.
type NodeKind int

const (
	SwitchBlockInputKind NodeKind = iota
	SwitchBlockOutputKind
	SwitchBlockCornerKind
	LogicCellInputKind
	LogicCellOutputKind
	IoBlockKind
)

// Node is a single routing resource. It is a tagged union realized as a
// comparable struct: the Kind field discriminates which of the other fields
// are meaningful. Equality and hashing are structural over all fields, which
// is load-bearing — the graph builder deduplicates nodes by using a Node
// directly as a map key.
type Node struct {
	Kind NodeKind

	SwitchBlock SwitchBlockCoordinate
	Side        CardinalDirection
	Channel     Channel

	Corner IntercardinalDirection

	LogicCell LogicCellCoordinate
	Input     LUTInput

	IoBlock IoBlockCoordinate
}

func SwitchBlockInput(coords SwitchBlockCoordinate, side CardinalDirection, channel Channel) Node {
	return Node{Kind: SwitchBlockInputKind, SwitchBlock: coords, Side: side, Channel: channel}
}

func SwitchBlockOutput(coords SwitchBlockCoordinate, side CardinalDirection, channel Channel) Node {
	return Node{Kind: SwitchBlockOutputKind, SwitchBlock: coords, Side: side, Channel: channel}
}

func SwitchBlockCorner(coords SwitchBlockCoordinate, direction IntercardinalDirection) Node {
	return Node{Kind: SwitchBlockCornerKind, SwitchBlock: coords, Corner: direction}
}

func LogicCellInput(coords LogicCellCoordinate, input LUTInput) Node {
	return Node{Kind: LogicCellInputKind, LogicCell: coords, Input: input}
}

func LogicCellOutput(coords LogicCellCoordinate) Node {
	return Node{Kind: LogicCellOutputKind, LogicCell: coords}
}

func IoBlock(coords IoBlockCoordinate) Node {
	return Node{Kind: IoBlockKind, IoBlock: coords}
}

// CanConnectTo reports whether an edge from n to other is one of the shapes
// the fabric is allowed to build. It does not check that the nodes are
// actually adjacent, only that the pair of kinds is legal.
func (n Node) CanConnectTo(other Node) bool {
	switch {
	case n.Kind == LogicCellOutputKind && other.Kind == SwitchBlockCornerKind:
		return true
	case n.Kind == SwitchBlockCornerKind && other.Kind == SwitchBlockOutputKind:
		return true
	case n.Kind == SwitchBlockInputKind && other.Kind == SwitchBlockOutputKind:
		return true
	case n.Kind == SwitchBlockOutputKind && other.Kind == SwitchBlockInputKind:
		return true
	case n.Kind == SwitchBlockOutputKind && other.Kind == LogicCellInputKind:
		return true
	case n.Kind == SwitchBlockOutputKind && other.Kind == IoBlockKind:
		return true
	case n.Kind == IoBlockKind && other.Kind == SwitchBlockInputKind:
		return true
	default:
		return false
	}
}

func (k NodeKind) String() string {
	switch k {
	case SwitchBlockInputKind:
		return "SwitchBlockInput"
	case SwitchBlockOutputKind:
		return "SwitchBlockOutput"
	case SwitchBlockCornerKind:
		return "SwitchBlockCorner"
	case LogicCellInputKind:
		return "LogicCellInput"
	case LogicCellOutputKind:
		return "LogicCellOutput"
	case IoBlockKind:
		return "IoBlock"
	default:
		return "invalid"
	}
}
