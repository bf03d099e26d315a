// Package logging configures the process-wide slog logger from the
// environment.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup builds a logger from LOG_LEVEL (debug, info, warn, error) and
// LOG_FORMAT (json or text), writing to stderr, and installs it as the slog
// default.
func Setup() *slog.Logger {
	return SetupFrom(os.Getenv)
}

// SetupFrom is Setup reading its settings through getenv instead of the
// process environment.
func SetupFrom(getenv func(string) string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if strings.ToLower(getenv("LOG_FORMAT")) == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}

	l := slog.New(h)
	slog.SetDefault(l)
	return l
}
