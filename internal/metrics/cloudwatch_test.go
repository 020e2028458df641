package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDisabledOutsideProduction(t *testing.T) {
	client, err := NewClient(context.Background(), "test")
	require.NoError(t, err)

	assert.False(t, client.enabled)
	assert.NotPanics(t, func() {
		client.RecordAPIRequest("/api/v1/lions", 200, 5*time.Millisecond)
		client.RecordTokenUsage("gpt-4o", 150, 120, 30)
		client.RecordEvolution("openai", 10*time.Millisecond, true)
		client.RecordRenderDuration(time.Millisecond)
	})
}

func TestNilClientIsSafe(t *testing.T) {
	var client *Client

	assert.NotPanics(t, func() {
		client.RecordAPIRequest("/health", 200, time.Millisecond)
		client.RecordTokenUsage("gpt-4o", 150, 120, 30)
		client.RecordEvolution("gemini", time.Millisecond, false)
		client.RecordRenderDuration(time.Millisecond)
	})
}
