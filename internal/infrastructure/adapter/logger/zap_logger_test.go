package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

func TestZapLogger_Levels(t *testing.T) {
	zapCore, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerWithCore(zapCore, core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("checked in", map[string]any{"user_id": "emp-1"})
	log.Warn("stale", nil)

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "checked in", entries[0].Message)
	assert.Equal(t, "emp-1", entries[0].ContextMap()["user_id"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("visible", nil)
	assert.Equal(t, 3, logs.Len())

	log.SetLevel(core.LogLevelError)
	log.Warn("hidden", nil)
	log.Error("failed", map[string]any{"error": errors.New("boom")})
	require.Equal(t, 4, logs.Len())
	assert.Equal(t, "boom", logs.All()[3].ContextMap()["error"])
}

func TestNewZapLogger(t *testing.T) {
	log, err := NewZapLogger(Options{Production: true, Level: "warn", Service: "employee-portal"})

	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.Info("ignored", map[string]any{"k": "v"})
	log.SetLevel(core.LogLevelError)

	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.NoError(t, log.Flush())
}
