// Package implpass fuses a synth.Graph's LUT/flip-flop chains into logic
// cells, producing the implementation graph that placement and routing
// consume. It also owns the single-clock-domain sanity check: every
// flip-flop in a design must be clocked from the same module input port.
package implpass
