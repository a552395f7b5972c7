package pathfinder

import "io"

// Options tunes a single Route call.
type Options struct {
	// MaxIterations bounds the outer negotiated-congestion loop. If
	// convergence has not been reached after this many iterations, Route
	// returns a NotRouted result.
	MaxIterations int

	// StallLimit bounds how many consecutive outer iterations may pass
	// without the total congestion strictly decreasing before Route gives
	// up early as NotRouted. The original formulation never verified that
	// congestion strictly decreases in every case; this is the guard
	// against spinning forever on an unroutable design.
	StallLimit int

	Verbose bool
	Output  io.Writer
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns the Options Route uses when none are given.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 100,
		StallLimit:    5,
		Output:        io.Discard,
	}
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

func (o *Options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}
