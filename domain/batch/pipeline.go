// Package batch iterates videos and their ROIs, building one crop job per
// ROI and driving the transcoder. A single failing job never aborts the run;
// progress is reported after each completed job.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/kbrambach/roicrop/domain/roi"
	"github.com/kbrambach/roicrop/video"
)

// PreconditionError rejects a batch invocation before any job starts: no
// videos, no ROIs anywhere, or no output folder chosen.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return "batch: " + e.Reason }

// Options configures one batch run.
type Options struct {
	OutputDir         string
	FilterEnabled     bool
	FilterText        string // free-form ffmpeg filter expression
	FilterPlaceholder string // placeholder text stripped before use
	CRF               int
	OutputExt         string // output container extension, without dot

	// OnProgress is invoked after every job attempt with the running
	// completed count and the up-front total. completed only grows on
	// success, so a failed job reports an unchanged count.
	OnProgress func(completed, total int)
}

// JobFailure is one skipped crop job.
type JobFailure struct {
	Video    string
	ROIIndex int // 1-based, matching the display numbering
	Err      error
}

// Report summarizes a finished (or aborted) batch run.
type Report struct {
	RunID     string
	Succeeded int
	Failed    []JobFailure
}

// Pipeline drives the transcoder over a video→ROI map.
type Pipeline struct {
	frames     video.FrameSource
	transcoder video.Transcoder
	logger     *slog.Logger
}

func New(frames video.FrameSource, transcoder video.Transcoder, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{frames: frames, transcoder: transcoder, logger: logger}
}

// Run crops every ROI of every video into opts.OutputDir. Videos are
// processed in sorted path order for deterministic progress. A failure to
// create a per-video output directory aborts the whole run; per-job
// transcoder failures are collected into the report and the run continues.
func (p *Pipeline) Run(ctx context.Context, videos map[string]roi.Collection, opts Options) (*Report, error) {
	if err := preflight(videos, opts); err != nil {
		return nil, err
	}

	total := 0
	for _, list := range videos {
		total += len(list)
	}

	report := &Report{RunID: uuid.NewString()}
	logger := p.logger.With("run_id", report.RunID)
	logger.Info("batch run started", "videos", len(videos), "jobs", total)

	paths := make([]string, 0, len(videos))
	for path := range videos {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	completed := 0
	for _, path := range paths {
		list := videos[path]
		if len(list) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("batch run aborted: %w", err)
		}

		handle, err := p.frames.Open(path)
		if err != nil {
			// The whole video is unreadable: every one of its jobs fails,
			// keeping succeeded+failed reconciled with the total.
			logger.Error("video unreadable, skipping its jobs", "video", path, "error", err)
			for i := range list {
				report.Failed = append(report.Failed, JobFailure{Video: path, ROIIndex: i + 1, Err: err})
				if opts.OnProgress != nil {
					opts.OnProgress(completed, total)
				}
			}
			continue
		}

		base := videoBase(path)
		subdir := filepath.Join(opts.OutputDir, base)
		if err := os.MkdirAll(subdir, 0o755); err != nil {
			_ = handle.Close()
			return report, fmt.Errorf("create output directory %s: %w", subdir, err)
		}

		for i, r := range list {
			if err := ctx.Err(); err != nil {
				_ = handle.Close()
				return report, fmt.Errorf("batch run aborted: %w", err)
			}
			chain := FilterChain(r, opts.FilterEnabled, opts.FilterText, opts.FilterPlaceholder)
			output := filepath.Join(subdir, fmt.Sprintf("%s_%d_cropped.%s", base, i+1, ext(opts.OutputExt)))

			if err := p.transcoder.Run(ctx, path, chain, opts.CRF, output); err != nil {
				logger.Warn("crop job failed", "video", path, "roi", i+1, "error", err)
				report.Failed = append(report.Failed, JobFailure{Video: path, ROIIndex: i + 1, Err: err})
			} else {
				completed++
				report.Succeeded++
			}
			if opts.OnProgress != nil {
				opts.OnProgress(completed, total)
			}
		}
		if err := handle.Close(); err != nil {
			logger.Warn("frame source close failed", "video", path, "error", err)
		}
	}

	logger.Info("batch run finished", "succeeded", report.Succeeded, "failed", len(report.Failed))
	return report, nil
}

func preflight(videos map[string]roi.Collection, opts Options) error {
	if len(videos) == 0 {
		return &PreconditionError{Reason: "no videos selected"}
	}
	any := false
	for _, list := range videos {
		if len(list) > 0 {
			any = true
			break
		}
	}
	if !any {
		return &PreconditionError{Reason: "no regions of interest defined"}
	}
	if opts.OutputDir == "" {
		return &PreconditionError{Reason: "no output folder chosen"}
	}
	return nil
}

// FilterChain builds the per-job ffmpeg filter chain: the crop from the ROI's
// normalized corners, plus the user filter text when enabled. The placeholder
// text never reaches ffmpeg.
func FilterChain(r roi.Rect, filterEnabled bool, filterText, placeholder string) string {
	min := r.Corner(0)
	chain := fmt.Sprintf("crop=%d:%d:%d:%d", r.Width(), r.Height(), min.X, min.Y)
	if !filterEnabled {
		return chain
	}
	txt := strings.TrimSpace(filterText)
	if txt == "" || txt == strings.TrimSpace(placeholder) {
		return chain
	}
	return chain + ", " + txt
}

// videoBase is the file name without directory and extension, used both for
// the per-video subfolder and the output file prefix.
func videoBase(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func ext(e string) string {
	if e == "" {
		return "mp4"
	}
	return strings.TrimPrefix(e, ".")
}
