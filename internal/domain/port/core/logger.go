package core

// LogLevel is a logging severity threshold
type LogLevel int

const (
	// LogLevelDebug includes per-message classification and parsing detail
	LogLevelDebug LogLevel = iota
	// LogLevelInfo covers normal settlement activity
	LogLevelInfo
	// LogLevelWarn flags recoverable anomalies such as duplicate messages
	LogLevelWarn
	// LogLevelError marks failed settlements and infrastructure faults
	LogLevelError
)

// Logger is the structured logging port used across the settlement pipeline.
// Fields are free-form key/value pairs; implementations decide encoding.
type Logger interface {
	// SetLevel sets the minimum severity to emit
	SetLevel(level LogLevel)
	// GetLevel reports the current severity threshold
	GetLevel() LogLevel
	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)
	// Flush writes out any buffered entries, called on shutdown
	Flush() error
}
