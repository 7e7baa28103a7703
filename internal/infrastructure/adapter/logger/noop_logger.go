package logger

import (
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but discards everything
// Useful for tests and tools that do not want log output
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

// SetLevel records the level so GetLevel reports it back
func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

// GetLevel gets the recorded log level
func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

func (l *NoopLogger) Debug(string, map[string]any) {}
func (l *NoopLogger) Info(string, map[string]any)  {}
func (l *NoopLogger) Warn(string, map[string]any)  {}
func (l *NoopLogger) Error(string, map[string]any) {}

// Flush has nothing to write
func (l *NoopLogger) Flush() error { return nil }
