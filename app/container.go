package app

import (
	"log/slog"

	"github.com/kbrambach/roicrop/config"
	"github.com/kbrambach/roicrop/domain/batch"
	"github.com/kbrambach/roicrop/ui/model"
	"github.com/kbrambach/roicrop/ui/view"
	"github.com/kbrambach/roicrop/video"
)

// Container assembles the library, services, models and the root view.
type Container struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Library *Library
	Host    *Host
	Filter  *model.FilterModel

	Frames     video.FrameSource
	Transcoder video.Transcoder
	Pipeline   *batch.Pipeline

	MainView *view.MainWindow
}

// BuildContainer constructs all components. No widgets are created here; the
// main window is built by the app wrapper once handlers exist.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *Container {
	c := &Container{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Library = NewLibrary(logger)
	c.Host = NewHost(c.Library, cfg.HandleRadius, logger)
	c.Filter = model.NewFilterModel(cfg.FilterPlaceholder)
	c.Frames = video.NewFFmpegFrameSource(cfg.FFmpegPath, logger)
	c.Transcoder = video.NewFFmpegTranscoder(cfg.FFmpegPath, logger)
	c.Pipeline = batch.New(c.Frames, c.Transcoder, logger)
	c.MainView = view.NewMainWindow(c.Filter, logger)
	return c
}
