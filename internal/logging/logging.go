// Package logging configures slog and provides request logging middleware.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the process-wide logger: readable text at debug level
// for development, JSON at info level otherwise.
func Setup(devMode bool) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var h slog.Handler
	if devMode {
		opts.Level = slog.LevelDebug
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}
