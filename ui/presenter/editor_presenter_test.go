package presenter

import (
	"bytes"
	"image"
	"log/slog"
	"testing"

	"github.com/kbrambach/roicrop/domain/editor"
	"github.com/kbrambach/roicrop/domain/roi"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type fakeEditorView struct {
	frames  int
	cursors []string
}

func (v *fakeEditorView) ShowFrame(img image.Image) { v.frames++ }
func (v *fakeEditorView) SetCursor(name string)     { v.cursors = append(v.cursors, name) }

func newTestPresenter(initial roi.Collection) (*EditorPresenter, *fakeEditorView) {
	s := editor.NewSession("clip.mp4", initial, roi.DefaultHandleRadius, discardLogger, nil)
	v := &fakeEditorView{}
	frame := image.NewRGBA(image.Rect(0, 0, 640, 480))
	return NewEditorPresenter(s, frame, v, discardLogger), v
}

func TestEditorPresenter_DrawCycleRedraws(t *testing.T) {
	p, v := newTestPresenter(nil)
	p.Down(10, 10, false)
	p.Drag(50, 60)
	p.Up(50, 60)
	if v.frames != 3 {
		t.Fatalf("frames rendered = %d, want 3", v.frames)
	}
	if got := p.Session().Rects(); len(got) != 1 || got[0].Width() != 40 {
		t.Fatalf("rects = %+v", got)
	}
}

func TestEditorPresenter_HoverCursor(t *testing.T) {
	p, v := newTestPresenter(roi.Collection{roi.FromPoints(image.Pt(100, 100), image.Pt(300, 200))})
	p.Hover(150, 150) // body
	p.Hover(100, 100) // top-left corner
	p.Hover(500, 400) // nothing
	want := []string{"fleur", "top_left_corner", "crosshair"}
	if len(v.cursors) != 3 {
		t.Fatalf("cursor updates = %v", v.cursors)
	}
	for i := range want {
		if v.cursors[i] != want[i] {
			t.Fatalf("cursor %d = %q, want %q", i, v.cursors[i], want[i])
		}
	}
}

func TestEditorPresenter_ContextSelects(t *testing.T) {
	p, _ := newTestPresenter(roi.Collection{roi.FromPoints(image.Pt(100, 100), image.Pt(300, 200))})
	n, ok := p.Context(150, 150)
	if !ok || n != 1 {
		t.Fatalf("Context = (%d,%v), want display index 1", n, ok)
	}
	if _, ok := p.Context(500, 400); ok {
		t.Fatal("context hit outside all ROIs")
	}
}

func TestEditorPresenter_ExportImportRoundTrip(t *testing.T) {
	p, _ := newTestPresenter(roi.Collection{roi.FromPoints(image.Pt(10, 10), image.Pt(50, 60))})
	var buf bytes.Buffer
	if err := p.ExportROIs(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := p.ImportROIs(&buf, false); err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := p.Session().Rects(); len(got) != 2 {
		t.Fatalf("rects after append import = %d, want 2", len(got))
	}
}

func TestEditorPresenter_DeleteAll(t *testing.T) {
	p, _ := newTestPresenter(roi.Collection{
		roi.FromPoints(image.Pt(10, 10), image.Pt(50, 60)),
		roi.FromPoints(image.Pt(70, 70), image.Pt(90, 90)),
	})
	p.DeleteAll()
	if got := p.Session().Rects(); len(got) != 0 {
		t.Fatalf("rects = %+v, want empty", got)
	}
}
