// Package interchange (de)serializes ROI data in the two supported shapes:
// a versioned JSON snapshot of one collection or of the whole video→ROI map
// (round-trips exactly), and a write-only tabular CSV export for external
// analysis.
package interchange

import (
	"encoding/json"
	"fmt"
	"image"
	"io"

	"github.com/kbrambach/roicrop/domain/roi"
)

const snapshotVersion = 1

const (
	kindCollection = "collection"
	kindLibrary    = "library"
)

type entry struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

type snapshot struct {
	Version int                `json:"version"`
	Kind    string             `json:"kind"`
	ROIs    []entry            `json:"rois,omitempty"`
	Videos  map[string][]entry `json:"videos,omitempty"`
}

// EncodeCollection writes one collection as a JSON snapshot.
func EncodeCollection(w io.Writer, c roi.Collection) error {
	return encode(w, snapshot{Version: snapshotVersion, Kind: kindCollection, ROIs: toEntries(c)})
}

// DecodeCollection reads a single-collection snapshot back. Decode errors and
// kind mismatches are local to the import action; entries with negative
// dimensions are rejected with a roi.ValidationError.
func DecodeCollection(r io.Reader) (roi.Collection, error) {
	snap, err := decode(r, kindCollection)
	if err != nil {
		return nil, err
	}
	return fromEntries(snap.ROIs)
}

// EncodeLibrary writes the full video→collection map as a JSON snapshot.
func EncodeLibrary(w io.Writer, videos map[string]roi.Collection) error {
	snap := snapshot{Version: snapshotVersion, Kind: kindLibrary, Videos: map[string][]entry{}}
	for path, c := range videos {
		snap.Videos[path] = toEntries(c)
	}
	return encode(w, snap)
}

// DecodeLibrary reads a whole-map snapshot back.
func DecodeLibrary(r io.Reader) (map[string]roi.Collection, error) {
	snap, err := decode(r, kindLibrary)
	if err != nil {
		return nil, err
	}
	out := make(map[string]roi.Collection, len(snap.Videos))
	for path, entries := range snap.Videos {
		c, err := fromEntries(entries)
		if err != nil {
			return nil, fmt.Errorf("video %s: %w", path, err)
		}
		out[path] = c
	}
	return out, nil
}

func encode(w io.Writer, snap snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode roi snapshot: %w", err)
	}
	return nil
}

func decode(r io.Reader, wantKind string) (*snapshot, error) {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode roi snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("decode roi snapshot: unsupported version %d", snap.Version)
	}
	if snap.Kind != wantKind {
		return nil, fmt.Errorf("decode roi snapshot: kind %q, want %q", snap.Kind, wantKind)
	}
	return &snap, nil
}

func toEntries(c roi.Collection) []entry {
	out := make([]entry, len(c))
	for i, r := range c {
		out[i] = entry{
			X1: r.Corner(0).X, Y1: r.Corner(0).Y,
			X2: r.Corner(1).X, Y2: r.Corner(1).Y,
		}
	}
	return out
}

func fromEntries(entries []entry) (roi.Collection, error) {
	out := make(roi.Collection, 0, len(entries))
	for i, e := range entries {
		if e.X2-e.X1 < 0 || e.Y2-e.Y1 < 0 {
			return nil, &roi.ValidationError{Reason: fmt.Sprintf("entry %d has negative dimensions", i+1)}
		}
		var r roi.Rect
		// Corners are stored normalized, so assigning them verbatim keeps
		// round-trips exact.
		r.SetCorner(0, image.Pt(e.X1, e.Y1), false)
		r.SetCorner(1, image.Pt(e.X2, e.Y2), false)
		out = append(out, r)
	}
	return out, nil
}
