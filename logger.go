package bitarray

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitarray-specific helpers.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithBits adds a bits field to the logger.
func (l *Logger) WithBits(numBits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", numBits),
	}
}

// WithSlots adds a slots field to the logger.
func (l *Logger) WithSlots(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("slots", count),
	}
}

// LogAlloc logs a buffer allocation of n words holding numBits bits.
func (l *Logger) LogAlloc(numBits, n int, err error) {
	if err != nil {
		l.Warn("allocation failed",
			"bits", numBits,
			"words", n,
			"error", err,
		)
	} else {
		l.Debug("allocation completed",
			"bits", numBits,
			"words", n,
		)
	}
}

// LogRelease logs the release of n owned words.
func (l *Logger) LogRelease(n int) {
	l.Debug("buffer released",
		"words", n,
	)
}
