package roi

import (
	"image"
	"testing"
)

func TestClassify_ZonePrecedence(t *testing.T) {
	rects := []Rect{rect(100, 100, 300, 200)}
	cases := []struct {
		name string
		p    image.Point
		want Zone
	}{
		{"top-left corner", image.Pt(100, 100), ZoneCornerTL},
		{"top-left corner fringe", image.Pt(120, 80), ZoneCornerTL},
		{"top-right corner", image.Pt(300, 100), ZoneCornerTR},
		{"bottom-left corner", image.Pt(100, 200), ZoneCornerBL},
		{"bottom-right corner", image.Pt(300, 200), ZoneCornerBR},
		{"top edge", image.Pt(200, 100), ZoneEdgeTop},
		{"top edge fringe", image.Pt(200, 92), ZoneEdgeTop},
		{"bottom edge", image.Pt(200, 200), ZoneEdgeBottom},
		{"left edge", image.Pt(100, 150), ZoneEdgeLeft},
		{"right edge", image.Pt(300, 150), ZoneEdgeRight},
		{"body", image.Pt(200, 150), ZoneBody},
		{"outside", image.Pt(500, 500), ZoneNone},
		// A point 20 units diagonally inside the corner is still the corner
		// zone: corners take precedence over edges and body.
		{"corner beats edge and body", image.Pt(115, 115), ZoneCornerTL},
	}
	for _, c := range cases {
		h := Classify(c.p, rects, DefaultHandleRadius)
		if h.Zone != c.want {
			t.Fatalf("%s: Classify(%v) = %v, want %v", c.name, c.p, h.Zone, c.want)
		}
		if c.want != ZoneNone && h.Index != 0 {
			t.Fatalf("%s: index = %d, want 0", c.name, h.Index)
		}
	}
}

func TestClassify_EarliestROIWinsTies(t *testing.T) {
	// Two overlapping bodies: collection order decides.
	rects := []Rect{rect(100, 100, 300, 300), rect(150, 150, 350, 350)}
	h := Classify(image.Pt(230, 230), rects, DefaultHandleRadius)
	if h.Index != 0 || h.Zone != ZoneBody {
		t.Fatalf("hit = %+v, want body of ROI 0", h)
	}
}

func TestClassify_NoHitOutside(t *testing.T) {
	h := Classify(image.Pt(1, 1), []Rect{rect(100, 100, 300, 200)}, 0)
	if h.Zone != ZoneNone || h.Index != -1 {
		t.Fatalf("hit = %+v, want none", h)
	}
}

func TestZone_Masks(t *testing.T) {
	cases := []struct {
		z    Zone
		want Mask
	}{
		{ZoneCornerTL, Mask{Left: true, Top: true}},
		{ZoneCornerTR, Mask{Top: true, Right: true}},
		{ZoneCornerBL, Mask{Left: true, Bottom: true}},
		{ZoneCornerBR, Mask{Right: true, Bottom: true}},
		{ZoneEdgeTop, Mask{Top: true}},
		{ZoneEdgeBottom, Mask{Bottom: true}},
		{ZoneEdgeLeft, Mask{Left: true}},
		{ZoneEdgeRight, Mask{Right: true}},
		{ZoneBody, Mask{}},
		{ZoneNone, Mask{}},
	}
	for _, c := range cases {
		if got := c.z.Mask(); got != c.want {
			t.Fatalf("%v.Mask() = %+v, want %+v", c.z, got, c.want)
		}
	}
}

func TestZone_CursorNames(t *testing.T) {
	if ZoneBody.Cursor() != "fleur" {
		t.Fatalf("body cursor = %q", ZoneBody.Cursor())
	}
	if ZoneNone.Cursor() != "crosshair" {
		t.Fatalf("none cursor = %q", ZoneNone.Cursor())
	}
	if ZoneCornerBR.Cursor() != "bottom_right_corner" {
		t.Fatalf("corner cursor = %q", ZoneCornerBR.Cursor())
	}
}
