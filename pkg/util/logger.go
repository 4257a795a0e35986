// Package util holds small cross-cutting helpers shared by the server
// and the email worker.
package util

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger: human-readable text with debug
// detail in development, JSON at info level everywhere else so log
// shippers can parse it.
func NewLogger(env string) *slog.Logger {
	if env == "development" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
