package placement

import (
	"math/rand"

	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/implpass"
)

// Configuration is a placement of an implementation graph's logic cells and
// module ports onto fabric coordinates. It implements routenet.PlacementView.
//
// allLogicCellCoords and allIoBlockCoords are frozen at construction time;
// assignedLogicCellCoords and assignedIoBlockCoords are a partial injective
// mapping from an index into those slices to the node occupying that site.
// Not every coordinate need be occupied, but every node must be placed
// somewhere.
type Configuration struct {
	allLogicCellCoords []fabric.LogicCellCoordinate
	allIoBlockCoords   []fabric.IoBlockCoordinate

	assignedLogicCellCoords map[int]*implpass.Node
	assignedIoBlockCoords   map[int]*implpass.Node

	logicCellIndex map[*implpass.Node]int
	ioBlockIndex   map[*implpass.Node]int
}

// initial builds a random placement of every logic cell and module port in
// graph onto a distinct coordinate of topology.
func initial(topology fabric.Topology, graph *implpass.Graph, rng *rand.Rand) (*Configuration, error) {
	cfg := &Configuration{
		allLogicCellCoords:      topology.IterLogicCellCoords(),
		allIoBlockCoords:        topology.IterIoBlockCoords(),
		assignedLogicCellCoords: make(map[int]*implpass.Node),
		assignedIoBlockCoords:   make(map[int]*implpass.Node),
		logicCellIndex:          make(map[*implpass.Node]int),
		ioBlockIndex:            make(map[*implpass.Node]int),
	}

	logicCells := graph.LogicCells()
	if len(logicCells) > len(cfg.allLogicCellCoords) {
		return nil, &NotEnoughLogicCellsError{Needed: len(logicCells), Available: len(cfg.allLogicCellCoords)}
	}
	ports := graph.ModulePorts()
	if len(ports) > len(cfg.allIoBlockCoords) {
		return nil, &NotEnoughIoBlocksError{Needed: len(ports), Available: len(cfg.allIoBlockCoords)}
	}

	for i, index := range rng.Perm(len(cfg.allLogicCellCoords))[:len(logicCells)] {
		node := logicCells[i]
		cfg.assignedLogicCellCoords[index] = node
		cfg.logicCellIndex[node] = index
	}
	for i, index := range rng.Perm(len(cfg.allIoBlockCoords))[:len(ports)] {
		node := ports[i]
		cfg.assignedIoBlockCoords[index] = node
		cfg.ioBlockIndex[node] = index
	}

	return cfg, nil
}

// LogicCellCoordinate returns node's current site. Panics if node is not a
// placed logic cell.
func (c *Configuration) LogicCellCoordinate(node *implpass.Node) fabric.LogicCellCoordinate {
	index, ok := c.logicCellIndex[node]
	if !ok {
		panic("placement: node has no assigned logic cell coordinate")
	}
	return c.allLogicCellCoords[index]
}

// IoBlockCoordinate returns node's current site. Panics if node is not a
// placed module port.
func (c *Configuration) IoBlockCoordinate(node *implpass.Node) fabric.IoBlockCoordinate {
	index, ok := c.ioBlockIndex[node]
	if !ok {
		panic("placement: node has no assigned I/O block coordinate")
	}
	return c.allIoBlockCoords[index]
}

// clone returns an independent copy that mutate can safely modify without
// disturbing c. The frozen coordinate lists are shared, not copied.
func (c *Configuration) clone() *Configuration {
	out := &Configuration{
		allLogicCellCoords:      c.allLogicCellCoords,
		allIoBlockCoords:        c.allIoBlockCoords,
		assignedLogicCellCoords: make(map[int]*implpass.Node, len(c.assignedLogicCellCoords)),
		assignedIoBlockCoords:   make(map[int]*implpass.Node, len(c.assignedIoBlockCoords)),
		logicCellIndex:          make(map[*implpass.Node]int, len(c.logicCellIndex)),
		ioBlockIndex:            make(map[*implpass.Node]int, len(c.ioBlockIndex)),
	}
	for k, v := range c.assignedLogicCellCoords {
		out.assignedLogicCellCoords[k] = v
	}
	for k, v := range c.logicCellIndex {
		out.logicCellIndex[k] = v
	}
	for k, v := range c.assignedIoBlockCoords {
		out.assignedIoBlockCoords[k] = v
	}
	for k, v := range c.ioBlockIndex {
		out.ioBlockIndex[k] = v
	}
	return out
}

// mutate randomly swaps either two logic cell sites or two I/O block sites,
// chosen in proportion to how many of each the fabric has.
func (c *Configuration) mutate(rng *rand.Rand) {
	logicCellCount := float64(len(c.allLogicCellCoords))
	ioBlockCount := float64(len(c.allIoBlockCoords))
	percentLogicCells := logicCellCount / (logicCellCount + ioBlockCount)

	if rng.Float64() < percentLogicCells {
		swapPositions(c.assignedLogicCellCoords, c.logicCellIndex, len(c.allLogicCellCoords), rng)
	} else {
		swapPositions(c.assignedIoBlockCoords, c.ioBlockIndex, len(c.allIoBlockCoords), rng)
	}
}
