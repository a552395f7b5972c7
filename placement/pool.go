package placement

import (
	"context"
	"math/rand"
	"sync"

	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/implpass"
	"github.com/fpgaroute/fpgaroute/pathfinder"
	"github.com/fpgaroute/fpgaroute/routenet"
)

// job is one proposal request sent to a worker.
type job struct {
	ctx         context.Context
	config      *Configuration
	previous    pathfinder.Result
	temperature float64
}

// proposal is a worker's answer to a job: a mutated, scored candidate, and
// whether the annealing acceptance test chose to keep it.
type proposal struct {
	config   *Configuration
	result   pathfinder.Result
	accepted bool
	err      error
}

// pool is a fixed set of persistent worker goroutines, each holding its own
// random generator so proposals can run concurrently without shared-state
// races. Every annealing step broadcasts one job to every worker and
// collects one proposal back from each.
type pool struct {
	jobs    []chan job
	results chan proposal
	wg      sync.WaitGroup
}

func newPool(n int, graph *fabric.Graph, topology fabric.Topology, implGraph *implpass.Graph, parentRng *rand.Rand, pathfinderOptions []pathfinder.Option) *pool {
	p := &pool{
		results: make(chan proposal, n),
	}
	for i := 0; i < n; i++ {
		jobs := make(chan job)
		p.jobs = append(p.jobs, jobs)
		rng := rand.New(rand.NewSource(parentRng.Int63()))
		p.wg.Add(1)
		go p.run(jobs, graph, topology, implGraph, rng, pathfinderOptions)
	}
	return p
}

func (p *pool) run(jobs chan job, graph *fabric.Graph, topology fabric.Topology, implGraph *implpass.Graph, rng *rand.Rand, pathfinderOptions []pathfinder.Option) {
	defer p.wg.Done()
	for j := range jobs {
		candidate := j.config.clone()
		candidate.mutate(rng)

		netlist := routenet.BuildNetlist(implGraph, candidate)
		result, err := pathfinder.Route(j.ctx, graph, topology, netlist, pathfinderOptions...)
		if err != nil {
			p.results <- proposal{err: err}
			continue
		}

		prob := AcceptanceProbability(j.previous, *result, j.temperature)
		accepted := rng.Float64() < prob
		p.results <- proposal{config: candidate, result: *result, accepted: accepted}
	}
}

// propose broadcasts one job to every worker and returns their proposals,
// in no particular order.
func (p *pool) propose(ctx context.Context, config *Configuration, previous pathfinder.Result, temperature float64) ([]proposal, error) {
	j := job{ctx: ctx, config: config, previous: previous, temperature: temperature}
	for _, jobs := range p.jobs {
		jobs <- j
	}

	proposals := make([]proposal, len(p.jobs))
	for i := range proposals {
		proposals[i] = <-p.results
		if proposals[i].err != nil {
			return nil, proposals[i].err
		}
	}
	return proposals, nil
}

func (p *pool) stop() {
	for _, jobs := range p.jobs {
		close(jobs)
	}
	p.wg.Wait()
}
