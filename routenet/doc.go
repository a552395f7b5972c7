// Package routenet projects an implementation graph onto fabric nodes given
// a placement, producing the source-to-sinks netlist Pathfinder routes.
//
// It depends only on a small PlacementView interface rather than the
// placement package directly, so that placement (which must drive
// Pathfinder to score candidate placements) and routenet do not form an
// import cycle.
package routenet
