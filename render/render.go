// Package render draws the editing overlay: the reference frame with every
// ROI outline, its 1-based index badge, selection highlighting and the
// in-progress draft. It is stateless; callers pass the full scene each time.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kbrambach/roicrop/domain/roi"
)

var (
	colorOutline  = color.RGBA{R: 0, G: 0, B: 255, A: 255}   // committed ROI
	colorSelected = color.RGBA{R: 0, G: 255, B: 0, A: 255}   // selected ROI and live draft
	colorBadge    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBadgeTxt = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

const (
	outlineThickness = 2
	badgeSize        = 20
)

// Frame composes the scene over the given base frame. selection holds indices
// into rects; draft, when non-nil, is the rectangle currently being drawn
// (possibly unnormalized).
func Frame(base image.Image, rects []roi.Rect, selection []int, draft *roi.Rect) *image.RGBA {
	b := base.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), base, b.Min, draw.Src)

	selected := make(map[int]bool, len(selection))
	for _, i := range selection {
		selected[i] = true
	}

	for i, r := range rects {
		col := colorOutline
		if selected[i] {
			col = colorSelected
		}
		outline(out, r.Corner(0), r.Corner(1), col)
		badge(out, r.Corner(0), i+1)
	}

	if draft != nil {
		d := *draft
		d.Normalize()
		outline(out, d.Corner(0), d.Corner(1), colorSelected)
		badge(out, d.Corner(0), len(rects)+1)
	}
	return out
}

// outline strokes the rectangle border with the configured thickness,
// clamped to the image bounds.
func outline(img *image.RGBA, min, max image.Point, col color.RGBA) {
	for t := 0; t < outlineThickness; t++ {
		hline(img, min.X-t, max.X+t, min.Y-t, col)
		hline(img, min.X-t, max.X+t, max.Y+t, col)
		vline(img, min.X-t, min.Y-t, max.Y+t, col)
		vline(img, max.X+t, min.Y-t, max.Y+t, col)
	}
}

// badge draws a small white square with the ROI's display number at the
// rectangle's minimum corner.
func badge(img *image.RGBA, at image.Point, number int) {
	box := image.Rect(at.X, at.Y, at.X+badgeSize, at.Y+badgeSize).Intersect(img.Bounds())
	if box.Empty() {
		return
	}
	draw.Draw(img, box, &image.Uniform{C: colorBadge}, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorBadgeTxt),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X+3, at.Y+14),
	}
	d.DrawString(fmt.Sprint(number))
}

func hline(img *image.RGBA, x1, x2, y int, col color.RGBA) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	for x := maxInt(x1, b.Min.X); x <= minInt(x2, b.Max.X-1); x++ {
		img.SetRGBA(x, y, col)
	}
}

func vline(img *image.RGBA, x, y1, y2 int, col color.RGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	for y := maxInt(y1, b.Min.Y); y <= minInt(y2, b.Max.Y-1); y++ {
		img.SetRGBA(x, y, col)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
