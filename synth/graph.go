package synth

import "fmt"

// Graph is a design graph: LUT, flip-flop, and module-port nodes joined by
// directed edges. It preserves node and edge insertion order so traversal
// is deterministic.
type Graph struct {
	Nodes []*Node
	Edges []*Edge

	outEdges map[*Node][]*Edge
	inEdges  map[*Node][]*Edge
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		outEdges: make(map[*Node][]*Edge),
		inEdges:  make(map[*Node][]*Edge),
	}
}

// AddNode registers n and returns it.
func (g *Graph) AddNode(n *Node) *Node {
	g.Nodes = append(g.Nodes, n)
	return n
}

// AddEdge registers e, asserting that its kind is legal for its sink node.
// A violation is a programmer error in the parser that built e and aborts.
func (g *Graph) AddEdge(e *Edge) {
	if !e.canConnectTo() {
		panic(fmt.Sprintf("synth: illegal edge kind %v into %v", e.Kind, e.Sink.Kind))
	}
	g.Edges = append(g.Edges, e)
	g.outEdges[e.Source] = append(g.outEdges[e.Source], e)
	g.inEdges[e.Sink] = append(g.inEdges[e.Sink], e)
}

// OutEdges returns the edges driven by n, in insertion order.
func (g *Graph) OutEdges(n *Node) []*Edge {
	return g.outEdges[n]
}

// InEdges returns the edges feeding into n, in insertion order.
func (g *Graph) InEdges(n *Node) []*Edge {
	return g.inEdges[n]
}
