package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// NewLogger returns a structured slog.Logger writing tinted console output
// to stderr.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	})
	return slog.New(h)
}
