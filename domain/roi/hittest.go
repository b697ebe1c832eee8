package roi

import "image"

// DefaultHandleRadius is the base handle radius in frame units. Corner
// hot-zones are squares of half-width twice this radius; edge zones extend
// the edge by the radius on each side.
const DefaultHandleRadius = 10

// Zone classifies what part of a rectangle a pointer position falls on.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneBody
	ZoneCornerTL
	ZoneCornerTR
	ZoneCornerBL
	ZoneCornerBR
	ZoneEdgeTop
	ZoneEdgeBottom
	ZoneEdgeLeft
	ZoneEdgeRight
)

func (z Zone) String() string {
	switch z {
	case ZoneBody:
		return "body"
	case ZoneCornerTL:
		return "corner-tl"
	case ZoneCornerTR:
		return "corner-tr"
	case ZoneCornerBL:
		return "corner-bl"
	case ZoneCornerBR:
		return "corner-br"
	case ZoneEdgeTop:
		return "edge-top"
	case ZoneEdgeBottom:
		return "edge-bottom"
	case ZoneEdgeLeft:
		return "edge-left"
	case ZoneEdgeRight:
		return "edge-right"
	default:
		return "none"
	}
}

// Cursor maps the zone to the Tk cursor name shown while hovering it.
func (z Zone) Cursor() string {
	switch z {
	case ZoneBody:
		return "fleur"
	case ZoneCornerTL:
		return "top_left_corner"
	case ZoneCornerTR:
		return "top_right_corner"
	case ZoneCornerBL:
		return "bottom_left_corner"
	case ZoneCornerBR:
		return "bottom_right_corner"
	case ZoneEdgeTop:
		return "top_side"
	case ZoneEdgeBottom:
		return "bottom_side"
	case ZoneEdgeLeft:
		return "left_side"
	case ZoneEdgeRight:
		return "right_side"
	default:
		return "crosshair"
	}
}

// IsHandle reports whether the zone is a resize handle (corner or edge).
func (z Zone) IsHandle() bool { return z >= ZoneCornerTL && z <= ZoneEdgeRight }

// Mask flags which corner axes a handle controls: Left/Top refer to corner 0,
// Right/Bottom to corner 1. It is the contract the resize transition consumes.
type Mask struct {
	Left, Top, Right, Bottom bool
}

// Mask returns the axis mask of a handle zone. Non-handle zones control nothing.
func (z Zone) Mask() Mask {
	switch z {
	case ZoneCornerTL:
		return Mask{Left: true, Top: true}
	case ZoneCornerTR:
		return Mask{Top: true, Right: true}
	case ZoneCornerBL:
		return Mask{Left: true, Bottom: true}
	case ZoneCornerBR:
		return Mask{Right: true, Bottom: true}
	case ZoneEdgeTop:
		return Mask{Top: true}
	case ZoneEdgeBottom:
		return Mask{Bottom: true}
	case ZoneEdgeLeft:
		return Mask{Left: true}
	case ZoneEdgeRight:
		return Mask{Right: true}
	default:
		return Mask{}
	}
}

// Hit is the result of classifying a pointer position against a collection.
type Hit struct {
	Index int
	Zone  Zone
}

// Classify maps a pointer position to the first matching hit. Rectangles are
// checked in collection order and the earliest one wins; within a rectangle
// the precedence is corners, then edges, then body. radius <= 0 falls back to
// DefaultHandleRadius.
func Classify(p image.Point, rects []Rect, radius int) Hit {
	if radius <= 0 {
		radius = DefaultHandleRadius
	}
	for i, r := range rects {
		if z := classifyOne(p, r, radius); z != ZoneNone {
			return Hit{Index: i, Zone: z}
		}
	}
	return Hit{Index: -1, Zone: ZoneNone}
}

func classifyOne(p image.Point, r Rect, radius int) Zone {
	x1, y1 := r.Corner(0).X, r.Corner(0).Y
	x2, y2 := r.Corner(1).X, r.Corner(1).Y
	cr := radius * 2

	switch {
	case near(p.X, x1, cr) && near(p.Y, y1, cr):
		return ZoneCornerTL
	case near(p.X, x2, cr) && near(p.Y, y1, cr):
		return ZoneCornerTR
	case near(p.X, x1, cr) && near(p.Y, y2, cr):
		return ZoneCornerBL
	case near(p.X, x2, cr) && near(p.Y, y2, cr):
		return ZoneCornerBR
	case between(p.X, x1-radius, x2+radius) && near(p.Y, y1, radius):
		return ZoneEdgeTop
	case between(p.X, x1-radius, x2+radius) && near(p.Y, y2, radius):
		return ZoneEdgeBottom
	case near(p.X, x1, radius) && between(p.Y, y1-radius, y2+radius):
		return ZoneEdgeLeft
	case near(p.X, x2, radius) && between(p.Y, y1-radius, y2+radius):
		return ZoneEdgeRight
	case r.Contains(p):
		return ZoneBody
	default:
		return ZoneNone
	}
}

func near(v, center, radius int) bool { return center-radius <= v && v <= center+radius }

func between(v, lo, hi int) bool { return lo <= v && v <= hi }
