package presenter

import (
	"context"
	"image"
	"testing"

	"github.com/kbrambach/roicrop/domain/batch"
	"github.com/kbrambach/roicrop/domain/roi"
	"github.com/kbrambach/roicrop/video"
)

type fakeProgressView struct {
	updates [][2]int
}

func (v *fakeProgressView) SetProgress(completed, total int) {
	v.updates = append(v.updates, [2]int{completed, total})
}

func TestBatchPresenter_ForwardsProgress(t *testing.T) {
	pipe := batch.New(video.NewStubFrameSource(), &video.StubTranscoder{}, discardLogger)
	view := &fakeProgressView{}
	p := NewBatchPresenter(pipe, view, discardLogger)

	videos := map[string]roi.Collection{
		"/in/a.mp4": {roi.FromPoints(image.Pt(0, 0), image.Pt(10, 10))},
		"/in/b.mp4": {roi.FromPoints(image.Pt(0, 0), image.Pt(10, 10))},
	}
	report, err := p.Run(context.Background(), videos, batch.Options{OutputDir: t.TempDir(), CRF: 22})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Succeeded != 2 {
		t.Fatalf("succeeded = %d", report.Succeeded)
	}
	if len(view.updates) != 2 || view.updates[1] != [2]int{2, 2} {
		t.Fatalf("progress updates = %v", view.updates)
	}
}
