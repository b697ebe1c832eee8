// Package app hosts the application state: the per-video ROI map, the
// session save boundary and the container wiring everything together.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kbrambach/roicrop/domain/roi"
)

// ErrInvalidVideo rejects paths that are not existing .mp4 files.
var ErrInvalidVideo = errors.New("invalid video")

// ErrUnknownVideo is returned when a video path is not in the library.
var ErrUnknownVideo = errors.New("video not in library")

// VideoStatus is one row of the host's video list.
type VideoStatus struct {
	Path     string
	ROICount int
	Labeled  bool
}

// Library is the host-owned video→ROI-collection map. It is the single
// persistent owner of ROI state; editing sessions work on deep clones and
// write back only through SetCollection at the save boundary.
type Library struct {
	order  []string
	rois   map[string]roi.Collection
	logger *slog.Logger
}

func NewLibrary(logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{rois: make(map[string]roi.Collection), logger: logger}
}

// AddVideo registers a video with an empty collection. The path must point to
// an existing .mp4 file. Adding the same path twice is a no-op.
func (l *Library) AddVideo(path string) error {
	if err := validateVideoPath(path); err != nil {
		return err
	}
	if _, ok := l.rois[path]; ok {
		return nil
	}
	l.order = append(l.order, path)
	l.rois[path] = nil
	l.logger.Info("video added", "video", path)
	return nil
}

// RemoveVideo drops a video and its ROI data.
func (l *Library) RemoveVideo(path string) {
	if _, ok := l.rois[path]; !ok {
		return
	}
	delete(l.rois, path)
	for i, p := range l.order {
		if p == path {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Videos lists the registered videos in insertion order with their labeling
// status for the list view.
func (l *Library) Videos() []VideoStatus {
	out := make([]VideoStatus, 0, len(l.order))
	for _, p := range l.order {
		n := len(l.rois[p])
		out = append(out, VideoStatus{Path: p, ROICount: n, Labeled: n > 0})
	}
	return out
}

// Has reports whether the path is registered.
func (l *Library) Has(path string) bool {
	_, ok := l.rois[path]
	return ok
}

// Collection returns a copy of the video's collection.
func (l *Library) Collection(path string) (roi.Collection, error) {
	c, ok := l.rois[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownVideo)
	}
	return c.Clone(), nil
}

// SetCollection stores a copy of the collection for the video. This is the
// save boundary: it is the only way edits reach the persisted map.
func (l *Library) SetCollection(path string, c roi.Collection) error {
	if _, ok := l.rois[path]; !ok {
		return fmt.Errorf("%s: %w", path, ErrUnknownVideo)
	}
	l.rois[path] = c.Clone()
	l.logger.Info("collection updated", "video", path, "rois", len(c))
	return nil
}

// Map returns a deep copy of the whole video→collection map, the shape the
// batch pipeline and the exporters consume.
func (l *Library) Map() map[string]roi.Collection {
	out := make(map[string]roi.Collection, len(l.rois))
	for p, c := range l.rois {
		out[p] = c.Clone()
	}
	return out
}

// Replace swaps the whole map, e.g. after a settings import. Videos that
// fail path validation reject the import as a whole.
func (l *Library) Replace(m map[string]roi.Collection) error {
	for p := range m {
		if err := validateVideoPath(p); err != nil {
			return err
		}
	}
	l.order = l.order[:0]
	l.rois = make(map[string]roi.Collection, len(m))
	for p, c := range m {
		l.order = append(l.order, p)
		l.rois[p] = c.Clone()
	}
	sort.Strings(l.order)
	return nil
}

// TotalROIs sums the ROI counts over all videos.
func (l *Library) TotalROIs() int {
	n := 0
	for _, c := range l.rois {
		n += len(c)
	}
	return n
}

func validateVideoPath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mp4" {
		return fmt.Errorf("%s: %w: unsupported extension %q", path, ErrInvalidVideo, filepath.Ext(path))
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrInvalidVideo, err)
	}
	return nil
}
