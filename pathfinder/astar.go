package pathfinder

import (
	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/pqueue"
)

// congestionCost is the Pathfinder cost of entering node v on this
// iteration: cost(v) = (1 + h[v]) * p[v].
func congestionCost(v int, historical, present []int) int {
	return (1 + historical[v]) * present[v]
}

// findPath runs A* from source to sink on graph, weighting each edge by the
// congestion cost of the node it enters plus the edge's own base cost, and
// using topology's Manhattan-distance estimate as the heuristic. It returns
// the full node-id path including both endpoints, or nil if sink is
// unreachable from source.
func findPath(graph *fabric.Graph, topology fabric.Topology, source, sink int, historical, present []int) []int {
	sinkNode := graph.NodeAt(sink)

	open := pqueue.New[int]()
	open.Push(source, topology.EstimateDistance(graph.NodeAt(source), sinkNode))

	gScore := map[int]int{source: 0}
	cameFrom := map[int]int{}
	closed := make(map[int]bool)

	for open.Len() > 0 {
		current, _ := open.Pop()
		if closed[current] {
			continue
		}
		if current == sink {
			return reconstructPath(cameFrom, source, sink)
		}
		closed[current] = true

		for _, edge := range graph.Neighbors(current) {
			weight := congestionCost(edge.To, historical, present) + edge.Weight
			tentative := gScore[current] + weight
			if existing, ok := gScore[edge.To]; ok && existing <= tentative {
				continue
			}
			gScore[edge.To] = tentative
			cameFrom[edge.To] = current
			priority := tentative + topology.EstimateDistance(graph.NodeAt(edge.To), sinkNode)
			open.Push(edge.To, priority)
		}
	}
	return nil
}

func reconstructPath(cameFrom map[int]int, source, sink int) []int {
	path := []int{sink}
	for path[len(path)-1] != source {
		prev := cameFrom[path[len(path)-1]]
		path = append(path, prev)
	}
	// path was built sink -> source; reverse it.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
