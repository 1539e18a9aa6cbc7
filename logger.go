package tiercache

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with tiercache-specific context.
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

// LogGet logs a chain read. hitLevel is the level index that served the
// value, or -1 when the backing store was consulted.
func (l *Logger) LogGet(ctx context.Context, hitLevel int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "get failed",
			"error", err,
			"duration", duration,
		)
		return
	}
	l.DebugContext(ctx, "get completed",
		"hit_level", hitLevel,
		"duration", duration,
	)
}

// LogPut logs a chain write.
func (l *Logger) LogPut(ctx context.Context, dropped bool, duration time.Duration) {
	l.DebugContext(ctx, "put completed",
		"dropped", dropped,
		"duration", duration,
	)
}

// LogLoad logs a backing-store load.
func (l *Logger) LogLoad(ctx context.Context, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "backing store load failed",
			"error", err,
			"duration", duration,
		)
	} else {
		l.DebugContext(ctx, "backing store load completed",
			"duration", duration,
		)
	}
}

// LogAddLevel logs a level addition.
func (l *Logger) LogAddLevel(index, capacity int, policy Policy) {
	l.Info("level added",
		"level", index,
		"capacity", capacity,
		"policy", policy.String(),
	)
}

// LogRemoveLevel logs a level removal.
func (l *Logger) LogRemoveLevel(index, discarded int) {
	l.Info("level removed",
		"level", index,
		"discarded_entries", discarded,
	)
}
