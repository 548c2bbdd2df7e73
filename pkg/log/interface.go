// Package log provides a structured logging interface for QuadGo
// numerical operations.
//
// This package defines a minimal, slog-compatible logging interface that
// allows for flexible implementation switching while providing
// numerics-specific structured logging. The interface is designed to
// integrate seamlessly with Go's standard log/slog package and popular
// logging libraries like zerolog, logrus, and zap.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ComponentKey, "quadrature",
//	)
//	logger.Debug("computed quadrature rule",
//	    log.OrderKey, 9,
//	    log.DurationMsKey, 2,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's
// log/slog. Fields are alternating key-value pairs; if the first field
// of Error is an error value, implementations may attach stack trace
// information.
//
// The interface supports contextual logging through With, which returns
// a logger with pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If the first field is an error, it is handled specially and may
	// carry a stacktrace attribute.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given
	// level. Use it to skip expensive field construction.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. It exists for
// dependency injection and testing with different implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum level for loggers from this provider.
	SetLevel(level Level)
}
