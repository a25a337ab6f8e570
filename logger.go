package lexgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with lexgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithQuery adds a query field to the logger.
func (l *Logger) WithQuery(text string) *Logger {
	return &Logger{
		Logger: l.Logger.With("query", text),
	}
}

// LogLoad logs a corpus load operation.
func (l *Logger) LogLoad(ctx context.Context, name string, tokens, sentences int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "corpus load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "corpus loaded",
			"name", name,
			"tokens", tokens,
			"sentences", sentences,
			"duration", duration,
		)
	}
}

// LogCompile logs a query compilation.
func (l *Logger) LogCompile(ctx context.Context, text string, clauses int, err error) {
	if err != nil {
		l.DebugContext(ctx, "compile failed",
			"query", text,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "compile completed",
			"query", text,
			"clauses", clauses,
		)
	}
}

// LogEvaluate logs a query evaluation.
func (l *Logger) LogEvaluate(ctx context.Context, clauses, matches int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "evaluate failed",
			"clauses", clauses,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "evaluate completed",
			"clauses", clauses,
			"matches", matches,
			"duration", duration,
		)
	}
}
