package pathfinder

import (
	"fmt"

	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/pqueue"
)

// scoreNetlist computes the mean, over nets, of the longest source-to-sink
// path length in that net's tree, using plain edge weights (not the
// congestion-biased cost function). It also verifies the two convergence
// invariants: every pair of distinct trees is disjoint, and every node of a
// net's tree is reachable from its source.
func scoreNetlist(graph *fabric.Graph, netlist *fabric.NetList) float64 {
	sources := netlist.Sources()
	assertTreesDisjoint(netlist, sources)

	var total float64
	for _, source := range sources {
		sourceID, _ := graph.NodeID(source)
		members := netlist.Members(source)
		tree := make(map[int]bool, len(members))
		for _, member := range members {
			if id, ok := graph.NodeID(member); ok {
				tree[id] = true
			}
		}
		distances := dijkstra(graph, sourceID, tree)

		longest := 0
		reached := 0
		for _, member := range members {
			memberID, ok := graph.NodeID(member)
			if !ok {
				continue
			}
			if d, ok := distances[memberID]; ok {
				reached++
				if d > longest {
					longest = d
				}
			}
		}
		if reached != len(members) {
			panic(fmt.Sprintf("pathfinder: net rooted at %v is not fully connected in its own tree", source))
		}
		total += float64(longest)
	}
	return total / float64(len(sources))
}

func assertTreesDisjoint(netlist *fabric.NetList, sources []fabric.Node) {
	for i, a := range sources {
		for j, b := range sources {
			if i == j {
				continue
			}
			for _, member := range netlist.Members(a) {
				if netlist.Contains(b, member) {
					panic(fmt.Sprintf("pathfinder: routing trees for %v and %v share node %v", a, b, member))
				}
			}
		}
	}
}

// dijkstra computes shortest plain-edge-weight distances from source to
// every node of within that is reachable through nodes of within only.
func dijkstra(graph *fabric.Graph, source int, within map[int]bool) map[int]int {
	distances := map[int]int{source: 0}
	visited := make(map[int]bool)

	q := pqueue.New[int]()
	q.Push(source, 0)

	for q.Len() > 0 {
		current, _ := q.Pop()
		if visited[current] {
			continue
		}
		visited[current] = true

		for _, edge := range graph.Neighbors(current) {
			if !within[edge.To] {
				continue
			}
			next := distances[current] + edge.Weight
			if d, ok := distances[edge.To]; !ok || next < d {
				distances[edge.To] = next
				q.Push(edge.To, next)
			}
		}
	}
	return distances
}
