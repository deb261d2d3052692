// Package logging provides structured logging for the termkit CLI on top
// of log/slog. The splitter library itself never logs; only the command
// layer does, so failures inside a split always surface as returned errors
// rather than log lines.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents different log levels.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
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

// ParseLevel maps a configuration string to a log level; unknown strings
// fall back to info.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger interface for structured logging.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
	Error(ctx context.Context, err error, msg string, fields ...interface{})

	With(fields ...interface{}) Logger
	WithComponent(component string) Logger
}

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level     LogLevel
	Format    string // "json" or "text"
	Output    io.Writer
	Component string
}

// DefaultConfig returns default logger configuration.
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:  LevelInfo,
		Format: "text",
		Output: os.Stderr,
	}
}

type slogLogger struct {
	logger *slog.Logger
	level  LogLevel
}

// NewLogger creates a new structured logger.
func NewLogger(config *LoggerConfig) Logger {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Output == nil {
		config.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel(config.Level),
	}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(config.Output, opts)
	} else {
		handler = slog.NewTextHandler(config.Output, opts)
	}

	logger := slog.New(handler)
	if config.Component != "" {
		logger = logger.With("component", config.Component)
	}

	return &slogLogger{
		logger: logger,
		level:  config.Level,
	}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message.
func (l *slogLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.logger.DebugContext(ctx, msg, fields...)
}

// Info logs an informational message.
func (l *slogLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.logger.InfoContext(ctx, msg, fields...)
}

// Warn logs a warning, attaching the error when present.
func (l *slogLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{}) {
	l.logger.WarnContext(ctx, msg, withError(err, fields)...)
}

// Error logs an error.
func (l *slogLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {
	l.logger.ErrorContext(ctx, msg, withError(err, fields)...)
}

// With returns a logger carrying additional fields.
func (l *slogLogger) With(fields ...interface{}) Logger {
	return &slogLogger{
		logger: l.logger.With(fields...),
		level:  l.level,
	}
}

// WithComponent returns a logger tagged with a component name.
func (l *slogLogger) WithComponent(component string) Logger {
	return l.With("component", component)
}

func withError(err error, fields []interface{}) []interface{} {
	if err == nil {
		return fields
	}

	return append(fields, "error", err.Error())
}
