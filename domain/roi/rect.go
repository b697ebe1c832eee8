// Package roi holds the rectangle geometry used by the editor and the crop
// pipeline: normalized two-corner rectangles, ordered per-video collections
// and pure hit-zone classification.
package roi

import "image"

// Rect is a region of interest stored as two corners. In normalized form
// corner 0 is the element-wise minimum and corner 1 the element-wise maximum,
// so Width and Height are never negative. A Rect is only unnormalized while
// it is being freehand-drawn (Draft); every committing operation normalizes.
type Rect struct {
	c     [2]image.Point
	Draft bool
}

// FromPoints builds a normalized Rect from two arbitrary opposite corners.
func FromPoints(a, b image.Point) Rect {
	var r Rect
	r.SetFromPoints(a, b)
	return r
}

// SetFromPoints assigns both corners and normalizes.
func (r *Rect) SetFromPoints(a, b image.Point) {
	r.c[0], r.c[1] = a, b
	r.Normalize()
}

// SetCorner assigns corner i (0 or 1). With normalize=false the corners are
// left as stored, which keeps intermediate drag/draft samples cheap; resize
// passes normalize=true after each axis update so a handle dragged past the
// opposite edge flips the rectangle correctly.
func (r *Rect) SetCorner(i int, p image.Point, normalize bool) {
	r.c[i] = p
	if normalize {
		r.Normalize()
	}
}

// Corner returns corner i (0 or 1).
func (r Rect) Corner(i int) image.Point { return r.c[i] }

// Normalize reorders the stored corners so corner 0 holds the minimum of each
// axis and corner 1 the maximum. This can swap which stored corner plays the
// top-left role mid-resize; resize re-derives handle identity from its axis
// mask, not from the corner index originally grabbed.
func (r *Rect) Normalize() {
	x1, x2 := r.c[0].X, r.c[1].X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := r.c[0].Y, r.c[1].Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	r.c[0] = image.Pt(x1, y1)
	r.c[1] = image.Pt(x2, y2)
}

// Width is the horizontal extent, corner1.X - corner0.X.
func (r Rect) Width() int { return r.c[1].X - r.c[0].X }

// Height is the vertical extent, corner1.Y - corner0.Y.
func (r Rect) Height() int { return r.c[1].Y - r.c[0].Y }

// Contains reports whether p lies strictly inside the rectangle body.
func (r Rect) Contains(p image.Point) bool {
	return r.c[0].X < p.X && p.X < r.c[1].X && r.c[0].Y < p.Y && p.Y < r.c[1].Y
}
