package view

import (
	"fmt"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ProgressWindow shows a determinate bar while the batch runs. All methods
// must be called from the Tk event loop thread.
type ProgressWindow struct {
	win   *ToplevelWidget
	bar   *TProgressbarWidget
	label *LabelWidget
}

func NewProgressWindow(total int) *ProgressWindow {
	w := &ProgressWindow{}
	w.win = App.Toplevel()
	w.win.WmTitle("Progress")
	w.bar = w.win.TProgressbar(Mode("determinate"), Length(300), Maximum(float64(total)))
	Grid(w.bar, Row(0), Column(0), Sticky("we"), Padx("1m"), Pady("1m"))
	w.label = w.win.Label(Txt(fmt.Sprintf("0 / %d", total)))
	Grid(w.label, Row(1), Column(0), Padx("1m"), Pady("0.4m"))
	// The batch owns the window's lifetime; ignore close requests mid-run.
	WmProtocol(w.win.Window, "WM_DELETE_WINDOW", func() {})
	return w
}

// SetProgress moves the bar to completed out of total jobs.
func (w *ProgressWindow) SetProgress(completed, total int) {
	if w.win == nil {
		return
	}
	w.bar.Configure(Value(float64(completed)), Maximum(float64(total)))
	w.label.Configure(Txt(fmt.Sprintf("%d / %d", completed, total)))
}

// Close destroys the window once the run finishes.
func (w *ProgressWindow) Close() {
	if w.win != nil {
		Destroy(w.win)
		w.win = nil
	}
}
