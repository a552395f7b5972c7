package pathfinder

import "github.com/fpgaroute/fpgaroute/fabric"

// Result is the outcome of a Route call.
type Result struct {
	// Routed is true if Pathfinder converged: every net is routed and no
	// routing resource is shared between distinct nets.
	Routed bool

	// Score is the mean, over nets, of the longest source-to-sink path
	// length in that net's routing tree. Lower is better. Only
	// meaningful when Routed is true.
	Score float64

	// Congestion is the residual Σ max(0, p[v]-2) at the point Route gave
	// up, or math.MaxInt when the search for some net could not reach one
	// of its sinks at all. Only meaningful when Routed is false.
	Congestion int

	// NetList is the final routed netlist: for each source, the complete
	// set of fabric nodes its route occupies (inclusive of source and
	// sinks). Only populated when Routed is true.
	NetList *fabric.NetList
}

// Less implements the strict order placement uses to compare verdicts: any
// routed placement beats any non-routed one; within Routed, lower score
// wins; within NotRouted, lower congestion wins.
func (r Result) Less(other Result) bool {
	if r.Routed != other.Routed {
		return r.Routed
	}
	if r.Routed {
		return r.Score < other.Score
	}
	return r.Congestion < other.Congestion
}
