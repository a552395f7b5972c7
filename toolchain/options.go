package toolchain

import (
	"io"
	"math/rand"
)

// Options tunes a single Route call's placement search and the pathfinder
// convergence criteria it uses on every annealing step.
type Options struct {
	// MaxSteps bounds the simulated-annealing search.
	MaxSteps int
	// Workers is how many candidate placements are proposed and scored in
	// parallel at each annealing step.
	Workers int

	// MaxIterations and StallLimit bound each pathfinder.Route call the
	// annealer makes while scoring a candidate placement.
	MaxIterations int
	StallLimit    int

	Verbose bool
	Output  io.Writer

	// Rand drives every random choice the placement search makes. Supply a
	// seeded Rand for a reproducible run.
	Rand *rand.Rand
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns the Options Route uses when none are given.
func DefaultOptions() Options {
	return Options{
		MaxSteps:      5000,
		Workers:       1,
		MaxIterations: 100,
		StallLimit:    5,
		Output:        io.Discard,
		Rand:          rand.New(rand.NewSource(1)),
	}
}

func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

func WithStallLimit(n int) Option {
	return func(o *Options) { o.StallLimit = n }
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

// Apply builds an Options value by layering opts over DefaultOptions.
func Apply(opts ...Option) Options {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
