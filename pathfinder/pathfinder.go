package pathfinder

import (
	"context"
	"fmt"
	"math"

	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/pqueue"
)

// Route runs the negotiated-congestion router over graph for the given
// nets, using topology's distance heuristic to guide the A* search.
//
// It returns a Result whose Routed field reports convergence, and an error
// only if ctx was cancelled mid-run.
func Route(ctx context.Context, graph *fabric.Graph, topology fabric.Topology, nets *fabric.NetList, opts ...Option) (*Result, error) {
	options := DefaultOptions()
	options.apply(opts)

	historical := make([]int, graph.NumNodes())

	if nets.Len() == 0 {
		return &Result{Routed: true, Score: 0, NetList: fabric.NewNetList()}, nil
	}

	var lastOveruse int
	stallCount := 0
	firstIteration := true

	for iteration := 1; iteration <= options.MaxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pathfinder: %w", err)
		}

		present := make([]int, graph.NumNodes())
		for i := range present {
			present[i] = 1
		}

		routes := fabric.NewNetList()

		for _, source := range nets.Sources() {
			sourceID, ok := graph.NodeID(source)
			if !ok {
				panic(fmt.Sprintf("pathfinder: net source %v is not a node of the routing graph", source))
			}

			tree := []int{sourceID}
			inTree := map[int]bool{sourceID: true}

			for _, sink := range nets.Members(source) {
				sinkID, ok := graph.NodeID(sink)
				if !ok {
					panic(fmt.Sprintf("pathfinder: net sink %v is not a node of the routing graph", sink))
				}

				extension, routed := growTreeTo(graph, topology, tree, sinkID, sourceID, historical, present)
				if !routed {
					return &Result{Routed: false, Congestion: math.MaxInt}, nil
				}
				for _, id := range extension {
					if !inTree[id] {
						inTree[id] = true
						tree = append(tree, id)
					}
				}
			}

			for _, id := range tree {
				present[id]++
			}
			for _, id := range tree {
				routes.Add(source, graph.NodeAt(id))
			}
		}

		overuse := totalOveruse(present)
		if options.Verbose {
			fmt.Fprintf(options.Output, "pathfinder: iteration %d shared resources = %d\n", iteration, overuse)
		}

		if overuse == 0 {
			final := finalizeRoutes(routes, nets)
			return &Result{Routed: true, Score: scoreNetlist(graph, final), NetList: final}, nil
		}

		if !firstIteration && overuse >= lastOveruse {
			stallCount++
		} else {
			stallCount = 0
		}
		firstIteration = false
		lastOveruse = overuse

		if stallCount >= options.StallLimit {
			return &Result{Routed: false, Congestion: overuse}, nil
		}

		for i := range present {
			historical[i] += present[i]
		}
	}

	return &Result{Routed: false, Congestion: lastOveruse}, nil
}

// growTreeTo seeds a priority-first search from every node currently in
// tree, expanding by congestion cost until sink is reached, then runs A*
// from source to sink and returns the interior nodes of that path (neither
// endpoint). routed is false if the search exhausts its frontier before
// reaching sink.
func growTreeTo(graph *fabric.Graph, topology fabric.Topology, tree []int, sink, source int, historical, present []int) (extension []int, routed bool) {
	queue := pqueue.New[int]()
	for _, id := range tree {
		queue.Push(id, 0)
	}
	seen := make(map[int]bool)

	for {
		node, ok := queue.Pop()
		if !ok {
			return nil, false
		}
		seen[node] = true

		if node == sink {
			path := findPath(graph, topology, source, sink, historical, present)
			if path == nil || len(path) < 2 {
				return nil, false
			}
			return path[1 : len(path)-1], true
		}

		for _, edge := range graph.Neighbors(node) {
			if queue.Contains(edge.To) || seen[edge.To] {
				continue
			}
			priority := congestionCost(node, historical, present) + edge.Weight
			queue.Push(edge.To, priority)
		}
	}
}

func totalOveruse(present []int) int {
	total := 0
	for _, p := range present {
		if p > 2 {
			total += p - 2
		}
	}
	return total
}

// finalizeRoutes augments each converged routing tree with its net's
// original source and sinks, forming the fully routed netlist.
func finalizeRoutes(routes *fabric.NetList, nets *fabric.NetList) *fabric.NetList {
	final := fabric.NewNetList()
	for _, source := range routes.Sources() {
		final.EnsureSource(source)
		for _, member := range routes.Members(source) {
			final.Add(source, member)
		}
		for _, sink := range nets.Members(source) {
			final.Add(source, sink)
		}
		final.Add(source, source)
	}
	return final
}
