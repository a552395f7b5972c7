// Package synth parses a single-module Yosys-style JSON netlist into a
// design graph of lookup tables, flip-flops, and module ports. It is the
// synthesis front-end the core place-and-route pipeline consumes; the core
// itself treats it as an external collaborator, but this module implements
// it in full so the pipeline is runnable end to end.
package synth
