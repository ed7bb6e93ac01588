// Package logging configures structured logging for colreplace using log/slog.
//
// Logs are written to the supplied writer (stderr for the command) so they never
// mix with data. Every invocation gets a run id that is attached to all of its entries.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Setup builds a logger for level and format, installs it as the slog default and returns it.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewRunID returns a fresh identifier for one invocation.
func NewRunID() string {
	return uuid.NewString()
}

// ForRun returns a logger that tags every entry with run_id and any extra fields.
//
// Usage:
//
//	log := logging.ForRun(logger, logging.NewRunID(), "input", in)
//	log.Info("run started")
func ForRun(logger *slog.Logger, runID string, args ...any) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(append([]any{"run_id", runID}, args...)...)
}
