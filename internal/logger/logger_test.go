package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFieldsEmpty(t *testing.T) {
	assert.Equal(t, "", formatFields(nil))
	assert.Equal(t, "", formatFields(Fields{}))
}

func TestFormatFieldsSingleValue(t *testing.T) {
	assert.Equal(t, "{model=gpt-4o}", formatFields(Fields{"model": "gpt-4o"}))
	assert.Equal(t, "{total_tokens=150}", formatFields(Fields{"total_tokens": 150}))
}

func TestLoggingWithoutSentryDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("request completed", Fields{"path": "/health"})
		Warn("slow request", Fields{"duration_ms": int64(900)})
		Error("request failed", assert.AnError, Fields{"request_id": "r-1"})
		LogGenerationRequest(context.Background(), "gpt-4o", 5*time.Millisecond,
			map[string]interface{}{"total_tokens": 150, "input_tokens": 120, "output_tokens": 30}, nil)
	})
}
