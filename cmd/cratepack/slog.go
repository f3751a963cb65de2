package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// newLogger builds the process-wide logger: a colourised tint handler when
// LOG_LEVEL=debug, otherwise a plain JSON handler. Debug logging never
// changes a packing decision, it is purely an observability aid.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL %q, falling back to info\n", raw)
			level = slog.LevelInfo
		}
	}

	if level == slog.LevelDebug {
		handler := tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.TimeOnly,
		})
		return slog.New(handler)
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
