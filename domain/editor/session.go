package editor

import (
	"image"
	"log/slog"

	"github.com/kbrambach/roicrop/domain/roi"
)

// SaveFunc receives the finalized working copy when the user saves.
type SaveFunc func(roi.Collection)

// Session is one editing session over a working copy of a video's ROI
// collection. The copy is deep-cloned at construction so edits are discarded
// unless Save is called. All methods must be called from a single goroutine;
// the Tk event loop naturally provides that.
type Session struct {
	video  string
	rects  roi.Collection
	sel    *selection
	inter  interaction
	radius int
	saved  bool
	logger *slog.Logger

	onSave   SaveFunc
	onChange func()
}

// NewSession deep-clones the initial collection into a working copy.
// radius <= 0 uses roi.DefaultHandleRadius.
func NewSession(video string, initial roi.Collection, radius int, logger *slog.Logger, onSave SaveFunc) *Session {
	if radius <= 0 {
		radius = roi.DefaultHandleRadius
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		video:  video,
		rects:  initial.Clone(),
		sel:    newSelection(),
		inter:  idle{},
		radius: radius,
		saved:  true,
		logger: logger.With("video", video),
		onSave: onSave,
	}
}

// SetOnChange registers a render-invalidation hook, called after every event
// that changes visible state.
func (s *Session) SetOnChange(fn func()) { s.onChange = fn }

// Video returns the identity of the video being edited.
func (s *Session) Video() string { return s.video }

// Mode reports the current interaction state.
func (s *Session) Mode() Mode { return s.inter.mode() }

// Dirty reports whether the working copy has edits not yet saved back.
func (s *Session) Dirty() bool { return !s.saved }

// Rects returns a copy of the working collection.
func (s *Session) Rects() roi.Collection { return s.rects.Clone() }

// Selection returns the selected indices in deterministic order.
func (s *Session) Selection() []int { return s.sel.Items() }

// Draft returns the in-progress freehand rectangle, or nil when none is
// being drawn (or the pointer has not moved since the down event).
func (s *Session) Draft() *roi.Rect {
	d, ok := s.inter.(drafting)
	if !ok || !d.started {
		return nil
	}
	r := d.rect
	return &r
}

// Hover classifies the pointer position for cursor affordance. It never
// mutates state; only meaningful while idle.
func (s *Session) Hover(p image.Point) roi.Hit {
	return roi.Classify(p, s.rects, s.radius)
}

// PointerDown feeds a button-press event. With shift held the selection grows
// additively and no interaction starts; otherwise the hit decides between
// resizing, dragging and drafting a new rectangle.
func (s *Session) PointerDown(p image.Point, shift bool) {
	hit := roi.Classify(p, s.rects, s.radius)

	if shift {
		if hit.Zone == roi.ZoneBody {
			s.sel.Add(hit.Index)
			s.notify()
		}
		return
	}

	switch {
	case hit.Zone.IsHandle():
		mask := hit.Zone.Mask()
		r := s.rects[hit.Index]
		var anchor image.Point
		if mask.Left {
			anchor.X = r.Corner(0).X - p.X
		} else if mask.Right {
			anchor.X = r.Corner(1).X - p.X
		}
		if mask.Top {
			anchor.Y = r.Corner(0).Y - p.Y
		} else if mask.Bottom {
			anchor.Y = r.Corner(1).Y - p.Y
		}
		s.sel.Set(hit.Index)
		s.inter = resizing{index: hit.Index, mask: mask, anchor: anchor}

	case hit.Zone == roi.ZoneBody:
		if !s.sel.Has(hit.Index) {
			s.sel.Set(hit.Index)
		}
		d := dragging{offsets: map[int]image.Point{}, sizes: map[int]image.Point{}}
		for _, idx := range s.sel.Items() {
			r := s.rects[idx]
			d.offsets[idx] = r.Corner(0).Sub(p)
			d.sizes[idx] = image.Pt(r.Width(), r.Height())
		}
		s.inter = d

	default:
		s.sel.Clear()
		var draft roi.Rect
		draft.Draft = true
		draft.SetCorner(0, p, false)
		s.inter = drafting{rect: draft}
	}
	s.notify()
}

// PointerMove feeds a motion event while the button is held.
func (s *Session) PointerMove(p image.Point) {
	switch st := s.inter.(type) {
	case dragging:
		for _, idx := range s.sel.Items() {
			off, ok := st.offsets[idx]
			if !ok {
				// Selected after the down event (select-all mid-drag);
				// only rectangles captured at the grab move.
				continue
			}
			min := p.Add(off)
			s.rects[idx].SetFromPoints(min, min.Add(st.sizes[idx]))
		}
		s.markDirty()

	case resizing:
		r := &s.rects[st.index]
		// Each axis update re-normalizes immediately so dragging a handle
		// past the opposite edge flips the rectangle; the mask keeps meaning
		// "the edge nearer the cursor" regardless of corner relabeling.
		if st.mask.Top {
			r.SetCorner(0, image.Pt(r.Corner(0).X, p.Y+st.anchor.Y), true)
		}
		if st.mask.Bottom {
			r.SetCorner(1, image.Pt(r.Corner(1).X, p.Y+st.anchor.Y), true)
		}
		if st.mask.Left {
			r.SetCorner(0, image.Pt(p.X+st.anchor.X, r.Corner(0).Y), true)
		}
		if st.mask.Right {
			r.SetCorner(1, image.Pt(p.X+st.anchor.X, r.Corner(1).Y), true)
		}
		s.markDirty()

	case drafting:
		st.rect.SetCorner(1, p, false)
		st.started = true
		s.inter = st
		s.markDirty()

	default:
		// Idle motion is cursor affordance only; see Hover.
		return
	}
	s.notify()
}

// PointerUp feeds a button-release event, committing the interaction.
func (s *Session) PointerUp(p image.Point) {
	switch st := s.inter.(type) {
	case resizing:
		s.sel.Clear()
		s.inter = idle{}

	case dragging:
		// Selection survives a drag so the user can keep nudging it.
		s.inter = idle{}

	case drafting:
		st.rect.SetCorner(1, p, false)
		st.rect.Normalize()
		s.rects.Append(st.rect)
		s.sel.Clear()
		s.inter = idle{}
		s.markDirty()
		s.logger.Debug("roi committed", "count", len(s.rects))

	default:
		return
	}
	s.notify()
}

// SelectAll selects every rectangle.
func (s *Session) SelectAll() {
	s.sel.SetAll(len(s.rects))
	s.notify()
}

// SelectAt selects the rectangle whose body contains p, if any, replacing the
// current selection. Used by the context menu; it never starts a drag.
func (s *Session) SelectAt(p image.Point) (int, bool) {
	hit := roi.Classify(p, s.rects, s.radius)
	if hit.Zone != roi.ZoneBody {
		return -1, false
	}
	s.sel.Set(hit.Index)
	s.notify()
	return hit.Index, true
}

// Delete removes all selected rectangles and clears the selection. Any
// active interaction ends: its indices into the collection are stale after
// the removal, so a drag or resize must not keep applying them.
func (s *Session) Delete() {
	if s.sel.Len() == 0 {
		return
	}
	s.rects.RemoveMany(s.sel.Items())
	s.sel.Clear()
	s.inter = idle{}
	s.markDirty()
	s.notify()
}

// Escape clears the selection while idle. It deliberately does not cancel an
// active drag, resize or draft, and leaves the selection alone while one is
// running; interactions end only on PointerUp.
func (s *Session) Escape() {
	if s.inter.mode() != ModeIdle {
		return
	}
	s.sel.Clear()
	s.notify()
}

// EditAt replaces the corners of the rectangle at index, normalizing. Backs
// the dimensions dialog.
func (s *Session) EditAt(index int, a, b image.Point) {
	if index < 0 || index >= len(s.rects) {
		return
	}
	s.rects[index].SetFromPoints(a, b)
	s.markDirty()
	s.notify()
}

// ImportMerge merges an imported list into the working copy (replace or
// append). The working copy is untouched when validation fails. A successful
// merge restructures the collection, so it ends any active interaction the
// same way Delete does.
func (s *Session) ImportMerge(list []roi.Rect, replace bool) error {
	if err := s.rects.ImportMerge(list, replace); err != nil {
		return err
	}
	s.inter = idle{}
	s.markDirty()
	s.notify()
	return nil
}

// Save hands a snapshot of the working copy to the host and clears the dirty
// flag. The session stays open for further editing.
func (s *Session) Save() {
	if s.onSave != nil {
		s.onSave(s.rects.Clone())
	}
	s.saved = true
	s.logger.Info("rois saved", "count", len(s.rects))
}

func (s *Session) markDirty() { s.saved = false }

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
