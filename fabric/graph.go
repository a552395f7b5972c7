package fabric

import "fmt"

// Edge is a directed connection from one graph node to another, carrying an
// integer base cost (always >= 1).
type Edge struct {
	To     int
	Weight int
}

// Graph is the directed routing-resource graph produced by Topology.Build.
// Nodes are addressed by a dense, insertion-ordered integer id; Node values
// are deduplicated by structural equality so the same Node always maps to
// the same id.
//
// A Graph is built once and then only read; it carries no mutex because
// nothing mutates it after Topology.Build returns.
type Graph struct {
	nodes   []Node
	index   map[Node]int
	out     [][]Edge
	outSeen []map[int]bool
}

func newGraph() *Graph {
	return &Graph{index: make(map[Node]int)}
}

// addNode returns the id for n, creating one if this is the first time n has
// been seen.
func (g *Graph) addNode(n Node) int {
	if id, ok := g.index[n]; ok {
		return id
	}
	id := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.out = append(g.out, nil)
	g.outSeen = append(g.outSeen, make(map[int]bool))
	g.index[n] = id
	return id
}

// addEdge adds a directed edge from -> to with the given weight, creating
// either endpoint's node id as needed. It panics if from cannot legally
// connect to to (a programmer error — the topology builder must never
// produce an illegal edge), or if the ordered pair already has an edge.
func (g *Graph) addEdge(from, to Node, weight int) {
	if !from.CanConnectTo(to) {
		panic(fmt.Sprintf("fabric: illegal edge %s -> %s", from.Kind, to.Kind))
	}
	fromID := g.addNode(from)
	toID := g.addNode(to)
	if g.outSeen[fromID][toID] {
		panic(fmt.Sprintf("fabric: duplicate edge %s -> %s", from.Kind, to.Kind))
	}
	g.outSeen[fromID][toID] = true
	g.out[fromID] = append(g.out[fromID], Edge{To: toID, Weight: weight})
}

// NumNodes returns the number of distinct nodes in the graph.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NodeAt returns the Node stored at id. id must be in [0, NumNodes()).
func (g *Graph) NodeAt(id int) Node {
	return g.nodes[id]
}

// NodeID returns the id assigned to n, if n appears in the graph at all.
func (g *Graph) NodeID(n Node) (int, bool) {
	id, ok := g.index[n]
	return id, ok
}

// Neighbors returns the outgoing edges of node id, in the deterministic
// order they were added during the build.
func (g *Graph) Neighbors(id int) []Edge {
	return g.out[id]
}
