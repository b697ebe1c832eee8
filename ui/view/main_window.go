package view

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kbrambach/roicrop/render"
	"github.com/kbrambach/roicrop/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// VideoRow is one line of the video list: path, ROI count and whether the
// video carries at least one rectangle.
type VideoRow struct {
	Path     string
	ROICount int
	Labeled  bool
}

// MainHandlers are the callbacks the main window fires on user actions.
// Per-video actions receive the path currently selected in the dropdown.
type MainHandlers struct {
	AddVideo       func()
	RemoveVideo    func(path string)
	DrawROI        func(path string)
	ImportROI      func(path string)
	ExportROI      func(path string)
	ExportSettings func()
	ImportSettings func()
	ExportCSV      func()
	StartCrop      func()
	PreviewVideo   func(path string)
	ShowInfo       func()
	Exit           func()
}

const (
	// Max thumbnail dimensions; scaling is proportional.
	maxPreviewW = 400
	maxPreviewH = 225
)

// MainWindow composes the root application layout: the video list on the
// left, the filter and batch controls on the right, plus the menu bar. It
// owns the filter model and keeps the text widget in sync with it.
type MainWindow struct {
	logger *slog.Logger
	filter *model.FilterModel

	handlers    MainHandlers
	paths       []string
	videoSelect *TComboboxWidget
	statusText  *TextWidget
	filterLabel *LabelWidget
	filterText  *TextWidget

	preview      *LabelWidget
	previewPhoto *Img
}

func NewMainWindow(filter *model.FilterModel, logger *slog.Logger) *MainWindow {
	return &MainWindow{logger: logger, filter: filter}
}

// Build constructs the layout and wires the handlers. Called once before
// entering the event loop.
func (w *MainWindow) Build(h MainHandlers) {
	w.handlers = h

	frameLeft := Frame()
	Grid(frameLeft, Row(0), Column(0), Sticky("nw"), Padx("1m"), Pady("1m"))
	frameRight := Frame()
	Grid(frameRight, Row(0), Column(1), Sticky("ne"), Padx("1m"), Pady("1m"))

	// Left: video list and per-video actions.
	addBtn := Button(Txt("Add Video"), Command(h.AddVideo))
	Grid(addBtn, In(frameLeft), Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.3m"))

	w.videoSelect = TCombobox(Values([]string{"<no videos>"}), Width(48))
	Grid(w.videoSelect, In(frameLeft), Row(1), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	w.videoSelect.Current(0)
	Bind(w.videoSelect, "<<ComboboxSelected>>", Command(func() { w.withSelected(h.PreviewVideo) }))

	w.statusText = Text(Height(8), Width(64))
	Grid(w.statusText, In(frameLeft), Row(2), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	w.statusText.Configure(State("disabled"))

	drawBtn := Button(Txt("Draw ROI for selected video"), Command(func() { w.withSelected(h.DrawROI) }))
	Grid(drawBtn, In(frameLeft), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	importBtn := Button(Txt("Import ROI for selected video"), Command(func() { w.withSelected(h.ImportROI) }))
	Grid(importBtn, In(frameLeft), Row(3), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	removeBtn := Button(Txt("Remove selected video"), Command(func() { w.withSelected(h.RemoveVideo) }))
	Grid(removeBtn, In(frameLeft), Row(4), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	exportBtn := Button(Txt("Export ROI for selected video"), Command(func() { w.withSelected(h.ExportROI) }))
	Grid(exportBtn, In(frameLeft), Row(4), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.3m"))

	w.preview = Label(Borderwidth(1), Relief("sunken"))
	Grid(w.preview, In(frameLeft), Row(5), Column(0), Columnspan(2), Padx("0.2m"), Pady("0.3m"))
	w.ShowPreview(image.NewRGBA(image.Rect(0, 0, maxPreviewW, maxPreviewH)))

	// Right: filter and batch controls.
	w.filterLabel = Label(Txt("Filter: disabled"), Borderwidth(1), Relief("ridge"))
	Grid(w.filterLabel, In(frameRight), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	toggleBtn := Button(Txt("Toggle filter"), Command(w.toggleFilter))
	Grid(toggleBtn, In(frameRight), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.3m"))

	w.filterText = Text(Height(3), Width(40))
	Grid(w.filterText, In(frameRight), Row(1), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	Bind(w.filterText, "<FocusOut>", Command(func() { w.flushFilter() }))

	cropBtn := Button(Txt("Start Cropping"), Command(func() {
		w.flushFilter()
		h.StartCrop()
	}))
	Grid(cropBtn, In(frameRight), Row(2), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	exportSettingsBtn := Button(Txt("Export Settings"), Command(h.ExportSettings))
	Grid(exportSettingsBtn, In(frameRight), Row(3), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	exportAllBtn := Button(Txt("Export all ROIs"), Command(h.ExportCSV))
	Grid(exportAllBtn, In(frameRight), Row(4), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	importSettingsBtn := Button(Txt("Import settings"), Command(h.ImportSettings))
	Grid(importSettingsBtn, In(frameRight), Row(5), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.3m"))

	w.buildMenu()
	w.syncFilterWidgets()
}

func (w *MainWindow) buildMenu() {
	menubar := Menu()

	fileMenu := menubar.Menu()
	fileMenu.AddCommand(Lbl("Add video"), Command(w.handlers.AddVideo))
	fileMenu.AddSeparator()
	fileMenu.AddCommand(Lbl("Exit"), Command(w.handlers.Exit))
	menubar.AddCascade(Lbl("File"), Mnu(fileMenu))

	filterMenu := menubar.Menu()
	filterMenu.AddCommand(Lbl("Toggle filter"), Command(w.toggleFilter))
	filterMenu.AddSeparator()
	filterMenu.AddCommand(Lbl("Convert to black and white"), Command(func() { w.addPreset("hue=s=0") }))
	filterMenu.AddCommand(Lbl("Increase contrast and brightness"), Command(func() { w.addPreset("eq=contrast=2:brightness=0.8") }))
	menubar.AddCascade(Lbl("Filter"), Mnu(filterMenu))

	helpMenu := menubar.Menu()
	helpMenu.AddCommand(Lbl("Info"), Command(w.handlers.ShowInfo))
	menubar.AddCascade(Lbl("Help"), Mnu(helpMenu))

	App.Configure(Mnu(menubar))
}

// Refresh rebuilds the dropdown and the status list from the library rows.
func (w *MainWindow) Refresh(rows []VideoRow) {
	w.paths = w.paths[:0]
	values := make([]string, 0, len(rows))
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		w.paths = append(w.paths, r.Path)
		values = append(values, r.Path)
		status := "empty"
		if r.Labeled {
			status = "labeled"
		}
		lines = append(lines, fmt.Sprintf("%s  ROIs: %d  (%s)", r.Path, r.ROICount, status))
	}
	if len(values) == 0 {
		values = []string{"<no videos>"}
	}
	w.videoSelect.Configure(Values(values))
	w.videoSelect.Current(0)

	w.statusText.Configure(State("normal"))
	w.statusText.Delete("1.0", END)
	w.statusText.Insert("1.0", strings.Join(lines, "\n"))
	w.statusText.Configure(State("disabled"))
}

// ShowPreview replaces the thumbnail with a scaled copy of the frame. The
// previous photo is deleted so obsolete pixel buffers are not retained.
func (w *MainWindow) ShowPreview(img image.Image) {
	if w.preview == nil || img == nil {
		return
	}
	scaled := render.ScaleToFit(img, maxPreviewW, maxPreviewH)
	data, err := render.EncodePNG(scaled)
	if err != nil {
		if w.logger != nil {
			w.logger.Error("preview encode failed", "error", err)
		}
		return
	}
	if w.previewPhoto != nil {
		w.previewPhoto.Delete()
	}
	w.previewPhoto = NewPhoto(Data(data))
	w.preview.Configure(Image(w.previewPhoto))
}

// withSelected resolves the dropdown selection to a video path before firing
// the handler. No-op when the list is empty or the index does not parse.
func (w *MainWindow) withSelected(fn func(path string)) {
	if fn == nil || len(w.paths) == 0 {
		return
	}
	idxStr := w.videoSelect.Current(nil)
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx >= len(w.paths) {
		if w.logger != nil {
			w.logger.Error("video selection parse error", "raw", idxStr, "error", err)
		}
		return
	}
	fn(w.paths[idx])
}

func (w *MainWindow) toggleFilter() {
	w.flushFilter()
	w.filter.Toggle()
	w.syncFilterWidgets()
}

func (w *MainWindow) addPreset(expr string) {
	w.flushFilter()
	w.filter.AddPreset(expr)
	w.syncFilterWidgets()
}

// flushFilter pushes the text widget contents into the model. Bound to focus
// loss and run before any action that reads the filter.
func (w *MainWindow) flushFilter() {
	if w.filterText == nil {
		return
	}
	w.filter.SetText(strings.TrimSpace(textOf(w.filterText)))
}

func (w *MainWindow) syncFilterWidgets() {
	state := "disabled"
	if w.filter.Enabled() {
		state = "enabled"
	}
	w.filterLabel.Configure(Txt("Filter: " + state))
	w.filterText.Delete("1.0", END)
	w.filterText.Insert("1.0", w.filter.Text())
}
