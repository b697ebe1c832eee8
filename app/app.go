package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	tk "modernc.org/tk9.0"

	"github.com/kbrambach/roicrop/domain/batch"
	"github.com/kbrambach/roicrop/interchange"
	"github.com/kbrambach/roicrop/ui/presenter"
	"github.com/kbrambach/roicrop/ui/view"
	"github.com/kbrambach/roicrop/video"
)

const (
	progressTick = 100 * time.Millisecond
	ffmpegProbe  = 5 * time.Second
)

type app struct {
	c       *Container
	logger  *slog.Logger
	afterID string
}

func NewApp(title string, width, height int, c *Container) *app {
	a := &app{c: c, logger: c.Logger}
	tk.App.WmTitle(title)
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.exitHandler)
	tk.WmGeometry(tk.App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start probes ffmpeg, builds the main window and enters the event loop.
// Blocks until the application exits.
func (a *app) Start() {
	a.checkFFmpeg()
	a.c.MainView.Build(view.MainHandlers{
		AddVideo:       a.addVideo,
		RemoveVideo:    a.removeVideo,
		DrawROI:        a.drawROI,
		ImportROI:      a.importROI,
		ExportROI:      a.exportROI,
		ExportSettings: a.exportSettings,
		ImportSettings: a.importSettings,
		ExportCSV:      a.exportCSV,
		StartCrop:      a.startCrop,
		PreviewVideo:   a.previewVideo,
		ShowInfo:       a.showInfo,
		Exit:           a.exitHandler,
	})
	a.refresh()
	tk.App.Wait()
}

func (a *app) checkFFmpeg() {
	ctx, cancel := context.WithTimeout(context.Background(), ffmpegProbe)
	defer cancel()
	version, err := video.CheckInstalled(ctx, a.c.Config.FFmpegPath)
	if err != nil {
		a.logger.Error("ffmpeg not found", "path", a.c.Config.FFmpegPath, "error", err)
		view.ShowError("ffmpeg missing",
			"ffmpeg was not found. Frame preview and cropping will fail until it is installed.")
		return
	}
	a.logger.Info("ffmpeg detected", "version", version)
}

func (a *app) refresh() {
	statuses := a.c.Library.Videos()
	rows := make([]view.VideoRow, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, view.VideoRow{Path: s.Path, ROICount: s.ROICount, Labeled: s.Labeled})
	}
	a.c.MainView.Refresh(rows)
}

func (a *app) addVideo() {
	path := view.AskVideoFile()
	if path == "" {
		return
	}
	if err := a.c.Library.AddVideo(path); err != nil {
		view.ShowError("Cannot add video", err.Error())
		return
	}
	a.refresh()
}

func (a *app) removeVideo(path string) {
	a.c.Library.RemoveVideo(path)
	a.refresh()
}

func (a *app) drawROI(path string) {
	sess, err := a.c.Host.OpenSession(path)
	if err != nil {
		view.ShowError("Cannot open video", err.Error())
		return
	}
	frame, err := a.referenceFrame(path)
	if err != nil {
		view.ShowError("Cannot read video", err.Error())
		return
	}
	w := view.NewEditorWindow(path, a.logger)
	p := presenter.NewEditorPresenter(sess, frame, w, a.logger)
	w.Attach(p, func(confirmDiscard func() bool) bool {
		ok := a.c.Host.CloseSession(sess, confirmDiscard)
		if ok {
			a.refresh()
		}
		return ok
	})
	p.Redraw()
}

// referenceFrame extracts the preview frame. Short clips that do not reach
// the configured frame fall back to the first one.
func (a *app) referenceFrame(path string) (image.Image, error) {
	h, err := a.c.Frames.Open(path)
	if err != nil {
		return nil, err
	}
	defer h.Close()
	img, err := h.Seek(a.c.Config.ReferenceFrame)
	if errors.Is(err, video.ErrFrameNotFound) {
		img, err = h.Seek(0)
	}
	return img, err
}

// previewVideo updates the main window thumbnail. Failures are logged only;
// the frame grab is a convenience, not a required step.
func (a *app) previewVideo(path string) {
	img, err := a.referenceFrame(path)
	if err != nil {
		a.logger.Warn("preview frame unavailable", "video", path, "error", err)
		return
	}
	a.c.MainView.ShowPreview(img)
}

func (a *app) importROI(path string) {
	file := view.AskOpenJSON()
	if file == "" {
		return
	}
	f, err := os.Open(file)
	if err != nil {
		view.ShowError("Import failed", err.Error())
		return
	}
	defer f.Close()
	c, err := interchange.DecodeCollection(f)
	if err != nil {
		view.ShowError("Import failed", err.Error())
		return
	}
	if err := a.c.Library.SetCollection(path, c); err != nil {
		view.ShowError("Import failed", err.Error())
		return
	}
	a.refresh()
}

func (a *app) exportROI(path string) {
	c, err := a.c.Library.Collection(path)
	if err != nil {
		view.ShowError("Export failed", err.Error())
		return
	}
	file := view.AskSaveJSON("export.json")
	if file == "" {
		return
	}
	f, err := os.Create(file)
	if err != nil {
		view.ShowError("Export failed", err.Error())
		return
	}
	defer f.Close()
	if err := interchange.EncodeCollection(f, c); err != nil {
		view.ShowError("Export failed", err.Error())
	}
}

func (a *app) exportSettings() {
	file := view.AskSaveJSON("settings.json")
	if file == "" {
		return
	}
	f, err := os.Create(file)
	if err != nil {
		view.ShowError("Export failed", err.Error())
		return
	}
	defer f.Close()
	if err := interchange.EncodeLibrary(f, a.c.Library.Map()); err != nil {
		view.ShowError("Export failed", err.Error())
	}
}

func (a *app) importSettings() {
	file := view.AskOpenJSON()
	if file == "" {
		return
	}
	f, err := os.Open(file)
	if err != nil {
		view.ShowError("Import failed", err.Error())
		return
	}
	defer f.Close()
	m, err := interchange.DecodeLibrary(f)
	if err != nil {
		view.ShowError("Import failed", err.Error())
		return
	}
	if err := a.c.Library.Replace(m); err != nil {
		view.ShowError("Import failed", err.Error())
		return
	}
	a.refresh()
}

func (a *app) exportCSV() {
	file := view.AskSaveCSV("export.csv")
	if file == "" {
		return
	}
	f, err := os.Create(file)
	if err != nil {
		view.ShowError("Export failed", err.Error())
		return
	}
	defer f.Close()
	if err := interchange.WriteCSV(f, a.c.Library.Map()); err != nil {
		view.ShowError("Export failed", err.Error())
	}
}

type batchResult struct {
	report *batch.Report
	err    error
}

// progressRelay is the ProgressView handed to the batch presenter when the
// run happens off the Tk thread. Updates travel over a latest-wins channel;
// a stale update the UI has not consumed yet is dropped for the newer one.
type progressRelay struct {
	ch chan [2]int
}

func newProgressRelay() *progressRelay {
	return &progressRelay{ch: make(chan [2]int, 1)}
}

func (r *progressRelay) SetProgress(completed, total int) {
	upd := [2]int{completed, total}
	select {
	case r.ch <- upd:
	default:
		select {
		case <-r.ch:
		default:
		}
		select {
		case r.ch <- upd:
		default:
		}
	}
}

// startCrop runs the pipeline on a worker goroutine behind the batch
// presenter. Progress is relayed onto the Tk thread via TclAfter polling;
// widgets are never touched off the event loop.
func (a *app) startCrop() {
	outDir := view.AskOutputDir()
	if outDir == "" {
		return
	}
	opts := batch.Options{
		OutputDir:         outDir,
		FilterEnabled:     a.c.Filter.Enabled(),
		FilterText:        a.c.Filter.EffectiveText(),
		FilterPlaceholder: a.c.Config.FilterPlaceholder,
		CRF:               a.c.Config.CRF,
		OutputExt:         a.c.Config.OutputExt,
	}

	relay := newProgressRelay()
	bp := presenter.NewBatchPresenter(a.c.Pipeline, relay, a.logger)
	doneCh := make(chan batchResult, 1)

	videos := a.c.Library.Map()
	pw := view.NewProgressWindow(a.c.Library.TotalROIs())

	go func() {
		report, err := bp.Run(context.Background(), videos, opts)
		doneCh <- batchResult{report: report, err: err}
	}()

	var poll func()
	poll = func() {
		select {
		case upd := <-relay.ch:
			pw.SetProgress(upd[0], upd[1])
		case res := <-doneCh:
			pw.Close()
			a.afterID = ""
			a.finishBatch(res)
			return
		default:
		}
		a.afterID = tk.TclAfter(progressTick, poll)
	}
	poll()
}

func (a *app) finishBatch(res batchResult) {
	if res.err != nil {
		var pre *batch.PreconditionError
		if errors.As(res.err, &pre) {
			view.ShowError("Cannot start cropping", pre.Reason)
		} else {
			view.ShowError("Cropping failed", res.err.Error())
		}
		return
	}
	report := res.report
	if len(report.Failed) > 0 {
		for _, f := range report.Failed {
			a.logger.Error("crop job failed", "run", report.RunID, "video", f.Video, "roi", f.ROIIndex, "error", f.Err)
		}
		view.ShowError("Cropping finished with errors",
			fmt.Sprintf("%d crops written, %d failed. See the log for details.", report.Succeeded, len(report.Failed)))
		return
	}
	view.ShowInfo("Cropping finished", fmt.Sprintf("%d crops written.", report.Succeeded))
}

func (a *app) showInfo() {
	view.ShowInfo("ROI Cropper",
		"Label regions of interest on MP4 videos and crop each region into its own file with ffmpeg.")
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		tk.TclAfterCancel(a.afterID)
	}
	tk.Destroy(tk.App)
}
