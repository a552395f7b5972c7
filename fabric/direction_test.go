package fabric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardinalDirectionOpposite(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, East, West.Opposite())
	assert.Equal(t, West, East.Opposite())
}

func TestIntercardinalDirectionOpposite(t *testing.T) {
	// Regression test for the original implementation's copy-paste bug,
	// where Southeast's opposite was coded as itself instead of Northwest.
	assert.Equal(t, Southeast, Northwest.Opposite())
	assert.Equal(t, Northwest, Southeast.Opposite())
	assert.Equal(t, Southwest, Northeast.Opposite())
	assert.Equal(t, Northeast, Southwest.Opposite())
}

func TestChannelCostStrictlyIncreases(t *testing.T) {
	prev := 0
	for _, ch := range Channels {
		cost := ch.Cost()
		assert.Greater(t, cost, prev)
		prev = cost
	}
}
