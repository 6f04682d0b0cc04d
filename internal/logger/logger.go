// Package logger is the structured logging layer for the moodloom backend.
// Log lines are key-value structured and, in request-scoped code, carry the
// correlation fields the gateway forwards (request id, user id). The backend
// is slog; callers only see this package's Logger interface.
package logger

import (
	"context"
	"time"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel reads a level name, typically from MOODLOOM_LOG_LEVEL.
// Unrecognized input means info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field is one structured key-value pair on a log line.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err renders an error under the fixed "error" key so failures are always
// searchable by the same field name.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger emits structured log lines at the usual severities. With returns a
// derived logger that repeats the given fields on every line; WithContext
// does the same with the correlation fields found on ctx.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	With(fields ...Field) Logger
	WithContext(ctx context.Context) Logger

	Level() Level
}

// Config controls the process-wide logger.
type Config struct {
	Level Level
	// Format selects "json" or "text" output.
	Format string
	// AddSource appends file:line to every entry.
	AddSource bool
}

// DefaultConfig is JSON at info level, the production shape.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: "json",
	}
}

var defaultLogger Logger

// SetDefault installs the process-wide logger. Called once at startup.
func SetDefault(l Logger) {
	defaultLogger = l
}

// Default returns the process-wide logger, lazily built from DefaultConfig
// when SetDefault was never called.
func Default() Logger {
	if defaultLogger == nil {
		defaultLogger = NewSlogLogger(DefaultConfig())
	}
	return defaultLogger
}

// Info logs on the default logger. Request-scoped code should prefer Ctx so
// the correlation fields come along.
func Info(msg string, fields ...Field) {
	Default().Info(msg, fields...)
}
