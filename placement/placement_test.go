package placement

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/implpass"
	"github.com/fpgaroute/fpgaroute/pathfinder"
	"github.com/fpgaroute/fpgaroute/synth"
)

func testTopology(width, height int) fabric.Topology {
	return fabric.Topology{Width: width, Height: height}
}

const clockedDesign = `{
  "modules": {
    "top": {
      "ports": {
        "clk": {"direction": "input", "bits": [0]},
        "a": {"direction": "input", "bits": [1]},
        "y": {"direction": "output", "bits": [3]}
      },
      "cells": {
        "$lut$1": {
          "type": "$lut",
          "parameters": {"LUT": "10", "WIDTH": 1},
          "connections": {"A": [1], "Y": [2]}
        },
        "$dff$1": {
          "type": "$_DFF_P_",
          "connections": {"C": [0], "D": [2], "Q": [3]}
        }
      }
    }
  }
}`

func buildImplGraph(t *testing.T) *implpass.Graph {
	t.Helper()
	design, err := synth.ParseYosysJSON([]byte(clockedDesign))
	require.NoError(t, err)
	impl, err := implpass.Implement(design)
	require.NoError(t, err)
	return impl
}

func TestInitialPlacementAssignsEveryNode(t *testing.T) {
	topo := testTopology(4, 4)
	impl := buildImplGraph(t)

	cfg, err := initial(topo, impl, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for _, cell := range impl.LogicCells() {
		assert.NotPanics(t, func() { cfg.LogicCellCoordinate(cell) })
	}
	for _, port := range impl.ModulePorts() {
		assert.NotPanics(t, func() { cfg.IoBlockCoordinate(port) })
	}
}

func TestInitialPlacementFailsWithTooFewLogicCells(t *testing.T) {
	topo := testTopology(0, 0)
	impl := buildImplGraph(t)

	_, err := initial(topo, impl, rand.New(rand.NewSource(1)))
	require.Error(t, err)
	var cellErr *NotEnoughLogicCellsError
	assert.ErrorAs(t, err, &cellErr)
}

func TestMutatePreservesInjectivity(t *testing.T) {
	topo := testTopology(4, 4)
	impl := buildImplGraph(t)
	rng := rand.New(rand.NewSource(7))

	cfg, err := initial(topo, impl, rng)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		cfg.mutate(rng)
	}

	seen := make(map[int]bool)
	for index := range cfg.assignedLogicCellCoords {
		assert.False(t, seen[index], "two logic cells assigned to the same site")
		seen[index] = true
	}
}

func TestAcceptanceProbabilityFourCases(t *testing.T) {
	routed := func(score float64) pathfinder.Result { return pathfinder.Result{Routed: true, Score: score} }
	notRouted := func(congestion int) pathfinder.Result { return pathfinder.Result{Routed: false, Congestion: congestion} }

	assert.Equal(t, 1.0, AcceptanceProbability(notRouted(5), routed(1), 100))
	assert.Equal(t, 0.0, AcceptanceProbability(routed(1), notRouted(5), 100))
	assert.Equal(t, 1.0, AcceptanceProbability(notRouted(5), notRouted(2), 100))
	assert.Equal(t, 1.0, AcceptanceProbability(routed(5), routed(2), 100))

	// Worse-but-possible moves get a probability strictly between 0 and 1.
	p := AcceptanceProbability(routed(2), routed(5), 100)
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)
}

func TestTemperatureDecaysFromMaxToMin(t *testing.T) {
	first := Temperature(1, 1000, 30000, 1)
	last := Temperature(1000, 1000, 30000, 1)
	assert.Less(t, last, first)
	assert.InDelta(t, 1.0, last, 1.0)
}
