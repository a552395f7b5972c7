package placement

import (
	"io"
	"math"
	"math/rand"

	"github.com/fpgaroute/fpgaroute/pathfinder"
)

// Options tunes a single Anneal run.
type Options struct {
	// MaxSteps is the number of annealing steps to run.
	MaxSteps int

	// TMax and TMin bound the geometric temperature decay: temperature(1)
	// is close to TMax and temperature(MaxSteps) is close to TMin.
	TMax float64
	TMin float64

	// Workers is how many candidate mutations to propose, score, and pick
	// the best of, at every step.
	Workers int

	Verbose bool
	Output  io.Writer

	// Rand drives every random choice Anneal makes, including seeding each
	// worker's own generator. Supplying a seeded Rand makes a run
	// reproducible.
	Rand *rand.Rand

	// PathfinderOptions configures every pathfinder.Route call Anneal makes
	// while scoring a candidate placement.
	PathfinderOptions []pathfinder.Option
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns the Options Anneal uses when none are given.
func DefaultOptions() Options {
	return Options{
		MaxSteps: 5000,
		TMax:     30000,
		TMin:     1,
		Workers:  1,
		Output:   io.Discard,
		Rand:     rand.New(rand.NewSource(1)),
	}
}

func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

func WithTemperatureRange(tMax, tMin float64) Option {
	return func(o *Options) { o.TMax, o.TMin = tMax, tMin }
}

func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func WithVerbose(verbose bool) Option {
	return func(o *Options) { o.Verbose = verbose }
}

func WithOutput(w io.Writer) Option {
	return func(o *Options) { o.Output = w }
}

func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

func WithPathfinderOptions(opts ...pathfinder.Option) Option {
	return func(o *Options) { o.PathfinderOptions = opts }
}

func (o *Options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// Temperature computes the geometrically-decaying annealing temperature at
// the given step of maxSteps total steps.
func Temperature(step, maxSteps int, tMax, tMin float64) float64 {
	factor := -math.Log(tMax / tMin)
	s := float64(step)
	n := float64(maxSteps)
	return tMax * math.Exp(factor*s/n)
}
