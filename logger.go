package lloyd

import (
	"context"
	"log/slog"
	"os"
)

// Logger is a slog.Logger that carries the engine's k, dimension and point
// count on every record.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs text at Info to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NewTextLogger(slog.LevelInfo)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger logs JSON records at level and above to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger is NewJSONLogger with slog's key=value text format.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger is the engine default.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogInitialize logs a centroid initialization.
func (l *Logger) LogInitialize(ctx context.Context, strategy Strategy, err error) {
	if err != nil {
		l.ErrorContext(ctx, "initialize failed",
			"strategy", strategy,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "centroids initialized",
			"strategy", strategy,
		)
	}
}

// LogStep logs one assign+recenter iteration.
func (l *Logger) LogStep(ctx context.Context, iteration, changed, empty int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step failed",
			"iteration", iteration,
			"error", err,
		)
		return
	}
	if empty > 0 {
		l.WarnContext(ctx, "step left clusters empty",
			"iteration", iteration,
			"changed", changed,
			"empty", empty,
		)
		return
	}
	l.DebugContext(ctx, "step completed",
		"iteration", iteration,
		"changed", changed,
	)
}

// LogObjective logs an objective evaluation.
func (l *Logger) LogObjective(ctx context.Context, value float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "objective failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "objective evaluated",
			"value", value,
		)
	}
}
