// Package editor implements the pointer-driven ROI editing session: a state
// machine over a working copy of one video's ROI collection. Events are
// processed one at a time to completion; the session owns its working copy
// exclusively until Save hands a snapshot back to the host.
package editor

import (
	"image"

	"github.com/kbrambach/roicrop/domain/roi"
)

// Mode enumerates the interaction states. At most one interaction is active
// at a time; the concrete state data lives in the interaction variants below.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
	ModeDrafting
)

func (m Mode) String() string {
	switch m {
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	case ModeDrafting:
		return "drafting"
	default:
		return "idle"
	}
}

// interaction is the sum type behind Mode: exactly one variant is held by the
// session, so dragging/resizing/drafting can never be active simultaneously.
type interaction interface {
	mode() Mode
}

type idle struct{}

func (idle) mode() Mode { return ModeIdle }

// dragging translates every selected rectangle, keeping each one glued to the
// pointer via its own offset. Sizes are frozen at drag start.
type dragging struct {
	offsets map[int]image.Point // min corner relative to the pointer
	sizes   map[int]image.Point // width/height at drag start
}

func (dragging) mode() Mode { return ModeDragging }

// resizing moves the masked axes of one rectangle. anchor keeps the grabbed
// handle glued to the pointer instead of snapping the corner to it.
type resizing struct {
	index  int
	mask   roi.Mask
	anchor image.Point // controlled corner relative to the pointer, per axis
}

func (resizing) mode() Mode { return ModeResizing }

// drafting holds a freehand rectangle in progress. Its corners stay
// unnormalized until the pointer is released so it can grow into any of the
// four quadrants around the down-point. started flips on the first move so a
// bare click does not render a phantom draft.
type drafting struct {
	rect    roi.Rect
	started bool
}

func (drafting) mode() Mode { return ModeDrafting }
