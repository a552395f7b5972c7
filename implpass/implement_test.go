package implpass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestImplementFusesLUTIntoFlipFlop(t *testing.T) {
	design, err := synth.ParseYosysJSON([]byte(clockedDesign))
	require.NoError(t, err)

	impl, err := Implement(design)
	require.NoError(t, err)

	cells := impl.LogicCells()
	require.Len(t, cells, 1)
	require.NotNil(t, cells[0].LogicCell.FF)
	assert.Equal(t, uint16(0xaaaa), cells[0].LogicCell.LUT.Mask)

	ports := impl.ModulePorts()
	require.Len(t, ports, 3)

	// The clock edge into the fused cell must survive as LogicCellClock.
	var sawClock bool
	for _, e := range impl.InEdges(cells[0]) {
		if e.Kind == LogicCellClockEdge {
			sawClock = true
		}
	}
	assert.True(t, sawClock)
}

func TestImplementRejectsNonPortClockSource(t *testing.T) {
	design := `{
      "modules": {
        "top": {
          "ports": {
            "a": {"direction": "input", "bits": [0]},
            "y": {"direction": "output", "bits": [3]}
          },
          "cells": {
            "$lut$1": {
              "type": "$lut",
              "parameters": {"LUT": "10", "WIDTH": 1},
              "connections": {"A": [0], "Y": [1]}
            },
            "$dff$1": {
              "type": "$_DFF_P_",
              "connections": {"C": [1], "D": [0], "Q": [3]}
            }
          }
        }
      }
    }`
	g, err := synth.ParseYosysJSON([]byte(design))
	require.NoError(t, err)

	_, err = Implement(g)
	require.Error(t, err)
	var clockSrcErr *FlipFlopClockSourceError
	assert.ErrorAs(t, err, &clockSrcErr)
}
