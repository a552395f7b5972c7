package placement

import (
	"math"

	"github.com/fpgaroute/fpgaroute/pathfinder"
)

// AcceptanceProbability is the simulated-annealing acceptance rule between
// a current routing verdict and a proposed one. Routed configurations
// always beat unrouted ones; within the same verdict, lower score (Routed)
// or lower congestion (NotRouted) is better.
//
// A move out of Routed into NotRouted is never accepted: once a placement
// routes cleanly, annealing will not knowingly give that up.
func AcceptanceProbability(current, proposed pathfinder.Result, temperature float64) float64 {
	switch {
	case !current.Routed && proposed.Routed:
		return 1.0

	case current.Routed && !proposed.Routed:
		return 0.0

	case !current.Routed && !proposed.Routed:
		if proposed.Congestion < current.Congestion {
			return 1.0
		}
		diff := float64(proposed.Congestion - current.Congestion)
		return math.Exp(-diff / temperature)

	default: // both Routed
		if proposed.Score < current.Score {
			return 1.0
		}
		diff := proposed.Score - current.Score
		return math.Exp(-diff / temperature)
	}
}
