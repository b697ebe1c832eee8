package presenter

import (
	"context"
	"log/slog"

	"github.com/kbrambach/roicrop/domain/batch"
	"github.com/kbrambach/roicrop/domain/roi"
)

// ProgressView receives per-job progress and the final outcome.
type ProgressView interface {
	SetProgress(completed, total int)
}

// BatchPresenter drives one synchronous batch run and forwards progress to
// the view. The run blocks the caller for its whole duration, matching the
// pipeline's synchronous contract.
type BatchPresenter struct {
	pipeline *batch.Pipeline
	view     ProgressView
	logger   *slog.Logger
}

func NewBatchPresenter(pipeline *batch.Pipeline, view ProgressView, logger *slog.Logger) *BatchPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchPresenter{pipeline: pipeline, view: view, logger: logger}
}

// Run executes the batch, wiring the pipeline's progress callback into the
// view. The returned report is nil when a precondition or fatal error aborts
// the run.
func (p *BatchPresenter) Run(ctx context.Context, videos map[string]roi.Collection, opts batch.Options) (*batch.Report, error) {
	opts.OnProgress = func(completed, total int) {
		if p.view != nil {
			p.view.SetProgress(completed, total)
		}
	}
	return p.pipeline.Run(ctx, videos, opts)
}
