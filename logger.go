package mapper

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pipeline-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDimension adds a filter dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogDegenerate logs a non-fatal degenerate input condition.
func (l *Logger) LogDegenerate(ctx context.Context, kind string, args ...any) {
	l.WarnContext(ctx, "degenerate input: "+kind, args...)
}

// LogRun logs the outcome of a pipeline run.
func (l *Logger) LogRun(ctx context.Context, stats RunStats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "mapper run failed",
			"points", stats.Points,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "mapper run completed",
			"points", stats.Points,
			"cells", stats.Cells,
			"level_sets", stats.LevelSets,
			"nodes", stats.Nodes,
			"edges", stats.Edges,
			"duration", stats.Duration,
		)
	}
}
