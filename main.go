package main

import (
	"log/slog"
	"strings"

	"github.com/kbrambach/roicrop/app"
	"github.com/kbrambach/roicrop/config"
)

const configPath = "config.json"

func main() {
	// Load falls back to defaults when the file is missing or corrupt.
	cfg, err := config.Load(configPath)

	logger := NewLogger(logLevel(cfg))
	if err != nil {
		logger.Warn("config unreadable, using defaults", "path", configPath, "error", err)
	}

	container := app.BuildContainer(cfg, configPath, logger)
	application := app.NewApp("ROI Cropper", 900, 600, container)
	application.Start()
}

func logLevel(cfg *config.Config) slog.Level {
	if cfg.Debug {
		return slog.LevelDebug
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
