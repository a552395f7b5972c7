// Package placement assigns implementation-graph logic cells and module
// ports to fabric coordinates, and searches for an assignment that routes
// cleanly (and with a good score) by simulated annealing.
//
// A Configuration is the annealer's state: a frozen list of every available
// logic-cell and I/O-block coordinate, plus a partial injective mapping from
// each to the implementation-graph node currently occupying it. Anneal
// repeatedly mutates a Configuration, drives it through routenet and
// pathfinder to score it, and keeps the best of several proposals found at
// each temperature step.
package placement
