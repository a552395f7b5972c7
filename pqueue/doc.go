// Package pqueue implements a generic priority queue ordered by
// (priority, insertion-sequence), with an O(1) membership test.
//
// It generalises the node priority queue used by the Dijkstra
// implementation this module is grounded on, following a "make generic
// over T" note left in the comments of the router this package replaces.
package pqueue
