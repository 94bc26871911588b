package logger

import (
	"github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
)

// NoopLogger discards everything. Used by tests that exercise handlers and
// usecases without caring about log output.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a logger that discards all output
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

func (l *NoopLogger) Debug(message string, fields map[string]any) {}

func (l *NoopLogger) Info(message string, fields map[string]any) {}

func (l *NoopLogger) Warn(message string, fields map[string]any) {}

func (l *NoopLogger) Error(message string, fields map[string]any) {}

func (l *NoopLogger) Flush() error { return nil }
