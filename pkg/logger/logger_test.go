//go:build !integration

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSet_RoutesPackageCalls(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(zap.NewNop()) })

	Debug("ranking_query", "category", "Elektronik")
	Info("catalog loaded", "stores", 20)
	Warn("score clamped", "store_id", 3)
	Error("profile lookup failed", "error", "boom")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, "ranking_query", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "Elektronik", entries[0].ContextMap()["category"])

	assert.Equal(t, int64(20), entries[1].ContextMap()["stores"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestInit_DoesNotPanic(t *testing.T) {
	t.Cleanup(func() { Set(zap.NewNop()) })

	assert.NotPanics(t, func() { Init("development") })
	assert.NotPanics(t, func() { Init("production") })
	assert.NotNil(t, L())
}
