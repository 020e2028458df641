package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCost(t *testing.T) {
	// gpt-4o: $0.005/1K input, $0.015/1K output
	cost := CalculateCost("gpt-4o", 1000, 1000)
	assert.InDelta(t, 0.02, cost, 1e-9)

	cost = CalculateCost("gemini-2.0-flash", 2000, 500)
	assert.InDelta(t, 0.0004, cost, 1e-9)
}

func TestCalculateCostZeroTokens(t *testing.T) {
	assert.Zero(t, CalculateCost("gpt-5-mini", 0, 0))
}

func TestCalculateCostUnknownModelUsesDefault(t *testing.T) {
	assert.Equal(t, CalculateCost("gpt-4o", 500, 500), CalculateCost("some-future-model", 500, 500))
}
