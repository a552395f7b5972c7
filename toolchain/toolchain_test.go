package toolchain

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fpgaroute/fpgaroute/fabric"
	"github.com/fpgaroute/fpgaroute/implpass"
	"github.com/fpgaroute/fpgaroute/synth"
)

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

func TestRouteSucceedsOnAdequateFabric(t *testing.T) {
	impl := buildImplGraph(t)
	topo := fabric.Topology{Width: 4, Height: 4}

	result, err := Route(
		context.Background(),
		impl,
		topo,
		WithMaxSteps(20),
		WithWorkers(2),
		WithRand(rand.New(rand.NewSource(3))),
	)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotNil(t, result.NetList)
	assert.NotNil(t, result.Configuration)
}

func TestRouteReportsNotEnoughLogicCells(t *testing.T) {
	impl := buildImplGraph(t)
	topo := fabric.Topology{Width: 0, Height: 0}

	_, err := Route(context.Background(), impl, topo, WithMaxSteps(5))
	require.Error(t, err)
	var cellErr *NotEnoughLogicCellsError
	assert.ErrorAs(t, err, &cellErr)
}

func TestRouteRespectsCancellation(t *testing.T) {
	impl := buildImplGraph(t)
	topo := fabric.Topology{Width: 4, Height: 4}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Route(ctx, impl, topo, WithMaxSteps(50))
	require.Error(t, err)
}
