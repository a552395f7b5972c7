package placement

import (
	"math/rand"
	"sort"

	"github.com/fpgaroute/fpgaroute/implpass"
)

// swapPositions moves one randomly chosen occupied site in assigned to a
// randomly chosen other site among numCoords total sites, evicting and
// relocating whatever previously sat there. If the destination was
// unoccupied, the source site becomes unoccupied rather than exchanging
// values.
func swapPositions(assigned map[int]*implpass.Node, index map[*implpass.Node]int, numCoords int, rng *rand.Rand) {
	if len(assigned) == 0 || numCoords < 2 {
		return
	}

	occupied := make([]int, 0, len(assigned))
	for i := range assigned {
		occupied = append(occupied, i)
	}
	sort.Ints(occupied)

	aIndex := occupied[rng.Intn(len(occupied))]
	aNode := assigned[aIndex]

	bIndex := rng.Intn(numCoords - 1)
	if bIndex >= aIndex {
		bIndex++
	}
	bNode, bOccupied := assigned[bIndex]

	assigned[bIndex] = aNode
	index[aNode] = bIndex

	if bOccupied {
		assigned[aIndex] = bNode
		index[bNode] = aIndex
	} else {
		delete(assigned, aIndex)
	}
}
