package synth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLUTMaskBitString(t *testing.T) {
	cases := []struct {
		bits string
		want uint16
	}{
		{"1111000011110000", 0xf0f0},
		{"11110000", 0xf0f0},
		{"1100", 0xcccc},
		{"10", 0xaaaa},
		{"1", 0xffff},
		{"0", 0x0000},
	}
	for _, c := range cases {
		raw, err := json.Marshal(c.bits)
		require.NoError(t, err)
		got, err := decodeLUTMask(raw, nil)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "bitstring %q", c.bits)
	}
}

func TestDecodeLUTMaskInteger(t *testing.T) {
	cases := []struct {
		value uint64
		width uint64
		want  uint16
	}{
		{0b1111000011110000, 16, 0xf0f0},
		{0b11110000, 8, 0xf0f0},
		{0b1100, 4, 0xcccc},
		{0b10, 2, 0xaaaa},
		{0b1, 1, 0xffff},
		{0b0, 1, 0x0000},
	}
	for _, c := range cases {
		valueRaw, err := json.Marshal(c.value)
		require.NoError(t, err)
		widthRaw, err := json.Marshal(c.width)
		require.NoError(t, err)
		got, err := decodeLUTMask(valueRaw, widthRaw)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

const samplePassthroughDesign = `{
  "modules": {
    "top": {
      "ports": {
        "a": {"direction": "input", "bits": [2]},
        "y": {"direction": "output", "bits": [3]}
      },
      "cells": {
        "$lut$1": {
          "type": "$lut",
          "parameters": {"LUT": "10", "WIDTH": 1},
          "connections": {"A": [2], "Y": [3]}
        }
      }
    }
  }
}`

func TestParseYosysJSONPassthrough(t *testing.T) {
	g, err := ParseYosysJSON([]byte(samplePassthroughDesign))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 3)
	require.Len(t, g.Edges, 2)

	var lut *Node
	for _, n := range g.Nodes {
		if n.Kind == LookUpTableKind {
			lut = n
		}
	}
	require.NotNil(t, lut)
	assert.Equal(t, uint16(0xaaaa), lut.LUT.Mask)
	assert.Len(t, g.InEdges(lut), 1)
	assert.Len(t, g.OutEdges(lut), 1)
}

func TestParseYosysJSONUndrivenNet(t *testing.T) {
	design := `{
      "modules": {
        "top": {
          "ports": {"y": {"direction": "output", "bits": [5]}},
          "cells": {}
        }
      }
    }`
	_, err := ParseYosysJSON([]byte(design))
	require.Error(t, err)
	var undriven *ModulePortUndrivenError
	assert.ErrorAs(t, err, &undriven)
}
