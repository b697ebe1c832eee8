package app

import (
	"fmt"
	"log/slog"

	"github.com/kbrambach/roicrop/domain/editor"
	"github.com/kbrambach/roicrop/domain/roi"
)

// Host mediates between the library and editing sessions. A session gets a
// deep-cloned working copy; its Save callback is the only path back into the
// library.
type Host struct {
	lib    *Library
	radius int
	logger *slog.Logger
}

func NewHost(lib *Library, handleRadius int, logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{lib: lib, radius: handleRadius, logger: logger}
}

// OpenSession starts an editing session over the video's collection.
func (h *Host) OpenSession(video string) (*editor.Session, error) {
	initial, err := h.lib.Collection(video)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	s := editor.NewSession(video, initial, h.radius, h.logger, func(c roi.Collection) {
		if err := h.lib.SetCollection(video, c); err != nil {
			h.logger.Error("save rejected", "video", video, "error", err)
		}
	})
	h.logger.Info("editing session opened", "video", video, "rois", len(initial))
	return s, nil
}

// CloseSession decides whether a session may close. A clean session closes
// immediately; a dirty one asks confirmDiscard, and proceeding discards the
// working copy silently.
func (h *Host) CloseSession(s *editor.Session, confirmDiscard func() bool) bool {
	if s == nil || !s.Dirty() {
		return true
	}
	if confirmDiscard != nil && confirmDiscard() {
		h.logger.Info("unsaved edits discarded", "video", s.Video())
		return true
	}
	return false
}
