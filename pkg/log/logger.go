package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger configures the process-wide slog default: a JSON handler
// wrapped so errors carrying cockroachdb stack traces are emitted with a
// stacktrace attribute.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel converts a level name to a slog.Level, panicking on an
// unknown name.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// GetLogger returns a Logger backed by the process-wide slog default.
func GetLogger() Logger {
	return &slogLogger{logger: slog.Default()}
}

// NewSlogLogger wraps an explicit slog handler in the Logger interface.
func NewSlogLogger(handler slog.Handler) Logger {
	return &slogLogger{logger: slog.New(handler)}
}

// slogLogger adapts *slog.Logger to the Logger interface. An error
// passed as the first Error field is re-keyed under ErrAttrKey so the
// ErrFmtHandler can extract its stacktrace.
type slogLogger struct {
	logger *slog.Logger
}

func (s *slogLogger) Debug(msg string, fields ...any) {
	s.logger.Debug(msg, fields...)
}

func (s *slogLogger) Info(msg string, fields ...any) {
	s.logger.Info(msg, fields...)
}

func (s *slogLogger) Warn(msg string, fields ...any) {
	s.logger.Warn(msg, fields...)
}

func (s *slogLogger) Error(msg string, fields ...any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			rest := fields[1:]
			args := make([]any, 0, len(rest)+1)
			args = append(args, ErrAttr(err))
			args = append(args, rest...)
			s.logger.Error(msg, args...)
			return
		}
	}
	s.logger.Error(msg, fields...)
}

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: s.logger.With(fields...)}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}

// Nop returns a Logger that discards everything. It is the default for
// library components constructed without an explicit logger.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)                {}
func (nopLogger) Info(string, ...any)                 {}
func (nopLogger) Warn(string, ...any)                 {}
func (nopLogger) Error(string, ...any)                {}
func (nopLogger) With(...any) Logger                  { return nopLogger{} }
func (nopLogger) Enabled(context.Context, Level) bool { return false }
