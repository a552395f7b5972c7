package toolchain

import (
	"context"
	"errors"
	"fmt"

	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/implpass"
	"github.com/fpgaroute/fpgaroute/pathfinder"
	"github.com/fpgaroute/fpgaroute/placement"
)

// Result is the outcome of a successful Route call.
type Result struct {
	// Configuration is the winning placement: where every logic cell and
	// module port in the design ended up on the fabric.
	Configuration *placement.Configuration

	// NetList is the fully routed netlist over fabric nodes.
	NetList *fabric.NetList

	// Score is the mean longest source-to-sink path length, over nets.
	// Lower is better.
	Score float64
}

// Route places and routes g onto topo: it runs simulated annealing over
// placements, scoring each candidate by routing it with Pathfinder, for the
// full step budget, and returns the placement the search ends on.
//
// An error is returned if topo has too few logic cell or I/O block sites
// for g, if the search never reaches a clean routing, or if ctx is
// cancelled mid-run.
func Route(ctx context.Context, g *implpass.Graph, topo fabric.Topology, opts ...Option) (*Result, error) {
	options := Apply(opts...)

	graph := topo.Build()

	config, verdict, err := placement.Anneal(
		ctx,
		graph,
		topo,
		g,
		placement.WithMaxSteps(options.MaxSteps),
		placement.WithWorkers(options.Workers),
		placement.WithVerbose(options.Verbose),
		placement.WithOutput(options.Output),
		placement.WithRand(options.Rand),
		placement.WithPathfinderOptions(
			pathfinder.WithMaxIterations(options.MaxIterations),
			pathfinder.WithStallLimit(options.StallLimit),
			pathfinder.WithVerbose(options.Verbose),
			pathfinder.WithOutput(options.Output),
		),
	)
	if err != nil {
		return nil, mapPlacementError(err)
	}

	if !verdict.Routed {
		return nil, &FailedToRouteError{Congestion: verdict.Congestion}
	}

	return &Result{
		Configuration: config,
		NetList:       verdict.NetList,
		Score:         verdict.Score,
	}, nil
}

func mapPlacementError(err error) error {
	var cellErr *placement.NotEnoughLogicCellsError
	if errors.As(err, &cellErr) {
		return &NotEnoughLogicCellsError{Needed: cellErr.Needed, Available: cellErr.Available}
	}

	var ioErr *placement.NotEnoughIoBlocksError
	if errors.As(err, &ioErr) {
		return &NotEnoughIoBlocksError{Needed: ioErr.Needed, Available: ioErr.Available}
	}

	return fmt.Errorf("toolchain: %w", err)
}
