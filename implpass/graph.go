package implpass

import "fmt"

// Graph is the implementation graph: logic cells and module ports joined by
// directed edges. Node and edge order is insertion order throughout.
type Graph struct {
	Nodes []*Node
	Edges []*Edge

	outEdges map[*Node][]*Edge
	inEdges  map[*Node][]*Edge
}

func newGraph() *Graph {
	return &Graph{
		outEdges: make(map[*Node][]*Edge),
		inEdges:  make(map[*Node][]*Edge),
	}
}

func (g *Graph) addNode(n *Node) *Node {
	g.Nodes = append(g.Nodes, n)
	return n
}

func (g *Graph) addEdge(e *Edge) {
	if !e.canConnectTo() {
		panic(fmt.Sprintf("implpass: illegal edge kind %v into %v", e.Kind, e.Sink.Kind))
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

// LogicCells returns every logic-cell node, in insertion order.
func (g *Graph) LogicCells() []*Node {
	var cells []*Node
	for _, n := range g.Nodes {
		if n.Kind == LogicCellKind {
			cells = append(cells, n)
		}
	}
	return cells
}

// ModulePorts returns every module-port node, in insertion order.
func (g *Graph) ModulePorts() []*Node {
	var ports []*Node
	for _, n := range g.Nodes {
		if n.Kind == ModulePortKind {
			ports = append(ports, n)
		}
	}
	return ports
}
