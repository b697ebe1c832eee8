package view

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kbrambach/roicrop/render"
	"github.com/kbrambach/roicrop/ui/presenter"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// EditorWindow is the per-video ROI editing window: a frame canvas receiving
// pointer events, a menu bar and the dimensions dialog. It implements
// presenter.EditorView.
type EditorWindow struct {
	logger *slog.Logger
	win    *ToplevelWidget
	canvas *LabelWidget
	photo  *Img
	pres   *presenter.EditorPresenter

	// closeGate decides whether the window may close; it receives the
	// discard confirmation prompt to show when edits are unsaved.
	closeGate func(confirmDiscard func() bool) bool
	cursor    string
}

// NewEditorWindow creates the toplevel and the canvas label. Bindings and
// menus are wired in Attach once the presenter exists.
func NewEditorWindow(title string, logger *slog.Logger) *EditorWindow {
	w := &EditorWindow{logger: logger}
	w.win = App.Toplevel()
	w.win.WmTitle(title)
	w.canvas = w.win.Label(Borderwidth(1), Relief("sunken"))
	Grid(w.canvas, Row(0), Column(0), Padx("0.4m"), Pady("0.4m"))
	w.ShowFrame(image.NewRGBA(image.Rect(0, 0, 640, 360)))
	return w
}

// Attach wires the presenter into the window: pointer and key bindings, the
// menu bar and the close protocol.
func (w *EditorWindow) Attach(p *presenter.EditorPresenter, closeGate func(confirmDiscard func() bool) bool) {
	w.pres = p
	w.closeGate = closeGate
	w.buildMenu()

	Bind(w.canvas, "<Button-1>", Command(func(e *Event) { p.Down(e.X, e.Y, false) }))
	Bind(w.canvas, "<Shift-Button-1>", Command(func(e *Event) { p.Down(e.X, e.Y, true) }))
	Bind(w.canvas, "<B1-Motion>", Command(func(e *Event) { p.Drag(e.X, e.Y) }))
	Bind(w.canvas, "<ButtonRelease-1>", Command(func(e *Event) { p.Up(e.X, e.Y) }))
	Bind(w.canvas, "<Motion>", Command(func(e *Event) { p.Hover(e.X, e.Y) }))
	Bind(w.canvas, "<Button-3>", Command(func(e *Event) {
		if idx, ok := p.Context(e.X, e.Y); ok {
			w.openDimensions(idx)
		}
	}))

	Bind(w.win, "<Control-s>", Command(func() { p.Save() }))
	Bind(w.win, "<Control-a>", Command(func() { p.SelectAll() }))
	Bind(w.win, "<Delete>", Command(func() { p.Delete() }))
	Bind(w.win, "<BackSpace>", Command(func() { p.Delete() }))
	Bind(w.win, "<Escape>", Command(func() { p.Escape() }))
	Bind(w.win, "<Control-q>", Command(func() { w.requestClose() }))
	WmProtocol(w.win.Window, "WM_DELETE_WINDOW", w.requestClose)
}

func (w *EditorWindow) buildMenu() {
	menubar := w.win.Menu()

	fileMenu := menubar.Menu()
	fileMenu.AddCommand(Lbl("Save ROIs"), Accelerator("Ctrl+S"), Command(func() { w.pres.Save() }))
	fileMenu.AddSeparator()
	fileMenu.AddCommand(Lbl("Quit"), Accelerator("Ctrl+Q"), Command(func() { w.requestClose() }))
	menubar.AddCascade(Lbl("File"), Mnu(fileMenu))

	roiMenu := menubar.Menu()
	roiMenu.AddCommand(Lbl("Export ROIs to file"), Command(w.exportROIs))
	roiMenu.AddCommand(Lbl("Import ROIs from file"), Command(func() { w.importROIs(false) }))
	roiMenu.AddCommand(Lbl("Replace ROIs from file"), Command(func() { w.importROIs(true) }))
	roiMenu.AddSeparator()
	roiMenu.AddCommand(Lbl("Delete all ROIs"), Command(func() { w.pres.DeleteAll() }))
	menubar.AddCascade(Lbl("ROIs"), Mnu(roiMenu))

	w.win.Configure(Mnu(menubar))
}

// ShowFrame replaces the canvas image with a freshly rendered frame. The
// previous photo is deleted so obsolete pixel buffers are not retained.
func (w *EditorWindow) ShowFrame(img image.Image) {
	if w.canvas == nil || img == nil {
		return
	}
	pngBytes, err := render.EncodePNG(img)
	if err != nil {
		// Keep the previous frame on screen rather than blanking the canvas.
		if w.logger != nil {
			w.logger.Error("frame encode failed", "error", err)
		}
		return
	}
	if w.photo != nil {
		w.photo.Delete()
	}
	w.photo = NewPhoto(Data(pngBytes))
	w.canvas.Configure(Image(w.photo))
}

// SetCursor updates the canvas cursor affordance, skipping redundant calls
// while the pointer stays in the same zone.
func (w *EditorWindow) SetCursor(name string) {
	if w.canvas == nil || name == w.cursor {
		return
	}
	w.cursor = name
	w.canvas.Configure(Cursor(name))
}

func (w *EditorWindow) requestClose() {
	if w.closeGate != nil && !w.closeGate(AskDiscard) {
		return
	}
	w.destroy()
}

func (w *EditorWindow) destroy() {
	if w.win != nil {
		Destroy(w.win)
		w.win = nil
	}
}

func (w *EditorWindow) exportROIs() {
	path := AskSaveJSON("export.json")
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		ShowError("Export failed", err.Error())
		return
	}
	defer f.Close()
	if err := w.pres.ExportROIs(f); err != nil {
		ShowError("Export failed", err.Error())
	}
}

func (w *EditorWindow) importROIs(replace bool) {
	path := AskOpenJSON()
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		ShowError("Import failed", err.Error())
		return
	}
	defer f.Close()
	if err := w.pres.ImportROIs(f, replace); err != nil {
		ShowError("Import failed", err.Error())
	}
}

// openDimensions shows the editable coordinate table for one rectangle.
// display is the 1-based number painted on the badge.
func (w *EditorWindow) openDimensions(display int) {
	rects := w.pres.Session().Rects()
	index := display - 1
	if index < 0 || index >= len(rects) {
		return
	}
	r := rects[index]
	a, b := r.Corner(0), r.Corner(1)

	dlg := App.Toplevel()
	dlg.WmTitle(fmt.Sprintf("Dimensions of ROI #%d", display))

	entries := make(map[string]*TextWidget, 4)
	row := 0
	makeRow := func(name string, value int, editable bool) {
		lbl := dlg.Label(Txt(name), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		t := dlg.Text(Height(1), Width(8))
		Grid(t, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		t.Insert("1.0", strconv.Itoa(value))
		if editable {
			entries[name] = t
		} else {
			t.Configure(State("disabled"))
		}
		row++
	}
	makeRow("X1", a.X, true)
	makeRow("Y1", a.Y, true)
	makeRow("X2", b.X, true)
	makeRow("Y2", b.Y, true)
	makeRow("Width", r.Width(), false)
	makeRow("Height", r.Height(), false)

	apply := dlg.Button(Txt("Apply"), Command(func() {
		p0, p1, ok := readCorners(entries)
		if !ok {
			ShowError("Invalid dimensions", "Coordinates must be whole numbers.")
			return
		}
		w.pres.Session().EditAt(index, p0, p1)
		Destroy(dlg)
	}))
	Grid(apply, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	del := dlg.Button(Txt("Delete ROI"), Command(func() {
		// Context already collapsed the selection onto this rectangle.
		w.pres.Delete()
		Destroy(dlg)
	}))
	Grid(del, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	cls := dlg.Button(Txt("Close"), Command(func() { Destroy(dlg) }))
	Grid(cls, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
}

func readCorners(entries map[string]*TextWidget) (p0, p1 image.Point, ok bool) {
	get := func(name string) (int, bool) {
		t := entries[name]
		if t == nil {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(textOf(t)))
		if err != nil {
			return 0, false
		}
		return v, true
	}
	x1, ok1 := get("X1")
	y1, ok2 := get("Y1")
	x2, ok3 := get("X2")
	y2, ok4 := get("Y2")
	if !(ok1 && ok2 && ok3 && ok4) {
		return image.Point{}, image.Point{}, false
	}
	return image.Pt(x1, y1), image.Pt(x2, y2), true
}

// textOf joins the full contents of a single-line Text widget.
func textOf(t *TextWidget) string {
	if t == nil {
		return ""
	}
	parts := t.Get("1.0", END)
	return strings.Join(parts, "")
}
