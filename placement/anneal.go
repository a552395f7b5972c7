package placement

import (
	"context"
	"fmt"

	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/implpass"
	"github.com/fpgaroute/fpgaroute/pathfinder"
	"github.com/fpgaroute/fpgaroute/routenet"
)

// Anneal searches for a placement of graph onto topology that routes
// cleanly, by simulated annealing: starting from a random initial
// placement, each step proposes Options.Workers independent mutations,
// scores each with pathfinder, and accepts the best one that passes the
// annealing acceptance test.
//
// It runs all Options.MaxSteps steps and returns the configuration the
// search ends on (the last accepted proposal, or the initial placement if
// none was accepted) and the routing verdict that went with it; this is not
// necessarily the best configuration seen during the run. An error is returned only if building the initial placement
// fails (not enough fabric sites) or ctx is cancelled mid-run.
func Anneal(ctx context.Context, graph *fabric.Graph, topology fabric.Topology, implGraph *implpass.Graph, opts ...Option) (*Configuration, *pathfinder.Result, error) {
	options := DefaultOptions()
	options.apply(opts)
	if options.Workers < 1 {
		options.Workers = 1
	}

	config, err := initial(topology, implGraph, options.Rand)
	if err != nil {
		return nil, nil, err
	}

	netlist := routenet.BuildNetlist(implGraph, config)
	result, err := pathfinder.Route(ctx, graph, topology, netlist, options.PathfinderOptions...)
	if err != nil {
		return nil, nil, fmt.Errorf("placement: %w", err)
	}

	if options.MaxSteps < 1 {
		return config, result, nil
	}

	workers := newPool(options.Workers, graph, topology, implGraph, options.Rand, options.PathfinderOptions)
	defer workers.stop()

	for step := 1; step <= options.MaxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return config, result, fmt.Errorf("placement: %w", err)
		}

		temperature := Temperature(step, options.MaxSteps, options.TMax, options.TMin)
		proposals, err := workers.propose(ctx, config, *result, temperature)
		if err != nil {
			return config, result, fmt.Errorf("placement: %w", err)
		}

		best := -1
		for i := range proposals {
			if !proposals[i].accepted {
				continue
			}
			if best == -1 || proposals[i].result.Less(proposals[best].result) {
				best = i
			}
		}
		if best >= 0 {
			config = proposals[best].config
			result = &proposals[best].result
		}

		if options.Verbose && step%500 == 0 {
			fmt.Fprintf(options.Output, "placement: step %d temperature = %.1f routed = %v\n", step, temperature, result.Routed)
		}
	}

	return config, result, nil
}
