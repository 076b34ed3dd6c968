package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextWithCorrelationID(t *testing.T) {
	ctx := ContextWithCorrelationID(context.Background(), "test-id")
	assert.Equal(t, "test-id", CorrelationIDFromContext(ctx))
}

func TestCorrelationIDFromEmptyContext(t *testing.T) {
	assert.Empty(t, CorrelationIDFromContext(context.Background()))
}

func TestWithContextAddsCorrelationIDField(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	original := Get()
	Set(zap.New(core))
	defer Set(original)

	ctx := ContextWithCorrelationID(context.Background(), "context-id")

	WithContext(ctx).Info("test message")

	entries := recorded.All()
	require.Len(t, entries, 1)

	correlationID, ok := entries[0].ContextMap()["correlation_id"]
	require.True(t, ok, "expected correlation_id field to be present")
	assert.Equal(t, "context-id", correlationID)
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	original := Get()
	defer Set(original)

	err := Init("development", "loud")
	assert.Error(t, err)
}

func TestInitAppliesLevel(t *testing.T) {
	original := Get()
	defer Set(original)

	require.NoError(t, Init("production", "warn"))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Get().Core().Enabled(zapcore.WarnLevel))
}

func TestContextHelpersCarryCorrelationID(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	original := Get()
	Set(zap.New(core))
	defer Set(original)

	ctx := ContextWithCorrelationID(context.Background(), "cli-id")
	DebugContext(ctx, "sending")
	WarnContext(ctx, "reported")

	entries := recorded.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	for _, entry := range entries {
		assert.Equal(t, "cli-id", entry.ContextMap()["correlation_id"])
	}
}
