// Package toolchain composes the full place-and-route pipeline: a built
// fabric topology and an already-synthesized implementation graph go in,
// and a placed, routed netlist (or a mapped failure) comes out.
//
// Route is the single entry point C1–C5 are reached through: it drives
// placement.Anneal (which in turn drives routenet and pathfinder on every
// annealing step) and translates the placement search's outcome into one
// of the three core error kinds, or a successful Result.
package toolchain
