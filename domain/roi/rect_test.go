package roi

import (
	"image"
	"testing"
)

func TestRect_FromPointsNormalizes(t *testing.T) {
	cases := []struct {
		a, b image.Point
	}{
		{image.Pt(10, 10), image.Pt(50, 60)},
		{image.Pt(50, 60), image.Pt(10, 10)},
		{image.Pt(50, 10), image.Pt(10, 60)},
		{image.Pt(10, 60), image.Pt(50, 10)},
	}
	for _, c := range cases {
		r := FromPoints(c.a, c.b)
		if got := r.Corner(0); got != image.Pt(10, 10) {
			t.Fatalf("FromPoints(%v,%v) corner0 = %v, want (10,10)", c.a, c.b, got)
		}
		if got := r.Corner(1); got != image.Pt(50, 60) {
			t.Fatalf("FromPoints(%v,%v) corner1 = %v, want (50,60)", c.a, c.b, got)
		}
		if r.Width() != 40 || r.Height() != 50 {
			t.Fatalf("dimensions = %dx%d, want 40x50", r.Width(), r.Height())
		}
	}
}

func TestRect_SetCornerDeferredNormalize(t *testing.T) {
	var r Rect
	r.SetCorner(0, image.Pt(50, 60), false)
	r.SetCorner(1, image.Pt(10, 10), false)
	// Unnormalized: corners keep insertion order, width may be negative.
	if r.Corner(0) != image.Pt(50, 60) {
		t.Fatalf("unnormalized corner0 = %v, want (50,60)", r.Corner(0))
	}
	r.Normalize()
	if r.Corner(0) != image.Pt(10, 10) || r.Corner(1) != image.Pt(50, 60) {
		t.Fatalf("normalized corners = %v %v", r.Corner(0), r.Corner(1))
	}
	if r.Width() < 0 || r.Height() < 0 {
		t.Fatalf("normalized dimensions negative: %dx%d", r.Width(), r.Height())
	}
}

func TestRect_SetCornerNormalizingFlips(t *testing.T) {
	r := FromPoints(image.Pt(10, 10), image.Pt(50, 60))
	// Drag the max corner's x past the opposite edge.
	r.SetCorner(1, image.Pt(0, 60), true)
	if r.Corner(0) != image.Pt(0, 10) || r.Corner(1) != image.Pt(10, 60) {
		t.Fatalf("flip result = %v %v, want (0,10) (10,60)", r.Corner(0), r.Corner(1))
	}
}

func TestRect_Contains(t *testing.T) {
	r := FromPoints(image.Pt(10, 10), image.Pt(50, 60))
	if !r.Contains(image.Pt(30, 30)) {
		t.Fatal("interior point not contained")
	}
	// Boundary is not the body: strictly inside.
	if r.Contains(image.Pt(10, 30)) || r.Contains(image.Pt(30, 60)) {
		t.Fatal("boundary point reported as body")
	}
}
