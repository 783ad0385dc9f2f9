// internal/util/logger.go
package util

import (
	"io"
	"log/slog"
	"os"
)

var logger *slog.Logger

// InitLogger initializes the global structured logger.
// Hosted deployments get JSON lines; local development gets the text handler.
func InitLogger(env string, level slog.Level) {
	logger = NewLogger(os.Stdout, env, level)
	slog.SetDefault(logger) // Set as default logger for convenience
}

// NewLogger builds a logger writing to w without touching the global one.
func NewLogger(w io.Writer, env string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: env != "local", // Add file and line number to hosted logs
		Level:     level,
	}
	var handler slog.Handler
	if env == "local" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("service", "localscoop", "env", env)
}

// GetLogger returns the initialized global logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogger("hosted", slog.LevelInfo) // Initialize if not already initialized (should be called explicitly at app start)
	}
	return logger
}
