package presenter

import (
	"image"
	"io"
	"log/slog"

	"github.com/kbrambach/roicrop/domain/editor"
	"github.com/kbrambach/roicrop/domain/roi"
	"github.com/kbrambach/roicrop/interchange"
	"github.com/kbrambach/roicrop/render"
)

// EditorView is the subset of the editor window the presenter drives.
type EditorView interface {
	ShowFrame(img image.Image)
	SetCursor(name string)
}

// EditorPresenter glues pointer/keyboard callbacks from the editor window to
// the editing session and pushes re-rendered frames back to the view.
type EditorPresenter struct {
	session *editor.Session
	frame   image.Image
	view    EditorView
	logger  *slog.Logger
}

func NewEditorPresenter(session *editor.Session, frame image.Image, view EditorView, logger *slog.Logger) *EditorPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	p := &EditorPresenter{session: session, frame: frame, view: view, logger: logger}
	session.SetOnChange(p.redraw)
	return p
}

// Session exposes the underlying session for the window's dialogs.
func (p *EditorPresenter) Session() *editor.Session { return p.session }

// Redraw renders the current scene; also used for the initial paint.
func (p *EditorPresenter) Redraw() { p.redraw() }

func (p *EditorPresenter) redraw() {
	if p.view == nil || p.frame == nil {
		return
	}
	p.view.ShowFrame(render.Frame(p.frame, p.session.Rects(), p.session.Selection(), p.session.Draft()))
}

// Down handles a left-button press.
func (p *EditorPresenter) Down(x, y int, shift bool) {
	p.session.PointerDown(image.Pt(x, y), shift)
}

// Drag handles motion with the left button held.
func (p *EditorPresenter) Drag(x, y int) {
	p.session.PointerMove(image.Pt(x, y))
}

// Up handles the left-button release.
func (p *EditorPresenter) Up(x, y int) {
	p.session.PointerUp(image.Pt(x, y))
}

// Hover updates the cursor affordance while no button is held.
func (p *EditorPresenter) Hover(x, y int) {
	if p.view == nil {
		return
	}
	hit := p.session.Hover(image.Pt(x, y))
	p.view.SetCursor(hit.Zone.Cursor())
}

// Context selects the ROI under a right-click and reports its display index.
func (p *EditorPresenter) Context(x, y int) (int, bool) {
	idx, ok := p.session.SelectAt(image.Pt(x, y))
	if !ok {
		return 0, false
	}
	return idx + 1, true
}

func (p *EditorPresenter) SelectAll() { p.session.SelectAll() }
func (p *EditorPresenter) Delete()    { p.session.Delete() }
func (p *EditorPresenter) Escape()    { p.session.Escape() }

// DeleteAll removes every ROI regardless of selection.
func (p *EditorPresenter) DeleteAll() {
	p.session.SelectAll()
	p.session.Delete()
}

// Save pushes the working copy back to the host.
func (p *EditorPresenter) Save() { p.session.Save() }

// ExportROIs writes the working collection as a snapshot.
func (p *EditorPresenter) ExportROIs(w io.Writer) error {
	return interchange.EncodeCollection(w, p.session.Rects())
}

// ImportROIs merges a snapshot into the working collection.
func (p *EditorPresenter) ImportROIs(r io.Reader, replace bool) error {
	list, err := interchange.DecodeCollection(r)
	if err != nil {
		return err
	}
	return p.session.ImportMerge([]roi.Rect(list), replace)
}
