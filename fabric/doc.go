// Package fabric builds the routing-resource graph of an FPGA device: the
// switch blocks, logic cells, and I/O blocks of a width x height fabric, and
// the directed edges connecting them.
//
// The graph is deterministic and depends only on (width, height); there is
// no randomness or external state here. Downstream packages (routenet,
// pathfinder, placement) treat a *Graph as read-only once built.
package fabric
