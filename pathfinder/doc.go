// Package pathfinder implements the negotiated-congestion router: given a
// routing graph and a netlist of nets to connect, it iteratively routes
// every net, letting nets that land on the same resource bid up its cost
// until either every resource is used by at most one net, or an iteration
// cap and stall detector conclude the design cannot be routed.
package pathfinder
