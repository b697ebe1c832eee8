// Package video models the two external collaborators of the cropper: a
// FrameSource that decodes single reference frames and a Transcoder that
// produces the cropped clips. Both are implemented on top of the ffmpeg
// binary; stubs for tests live in stub.go.
package video

import (
	"context"
	"errors"
	"fmt"
	"image"
)

// ErrFrameNotFound is returned by Seek when the requested frame index does
// not exist in the video (for example a clip shorter than the reference
// frame index).
var ErrFrameNotFound = errors.New("video: frame not found")

// FrameSource opens videos for single-frame access.
type FrameSource interface {
	Open(path string) (FrameHandle, error)
}

// FrameHandle is one opened video. Close releases it; handles are cheap and
// per-video, the pipeline opens one per video and closes it before moving on.
type FrameHandle interface {
	// Seek decodes the frame at the given zero-based index.
	Seek(frameIndex int) (image.Image, error)
	Close() error
}

// Transcoder runs one declarative crop/filter job synchronously.
type Transcoder interface {
	Run(ctx context.Context, inputPath, filterChain string, crf int, outputPath string) error
}

// TranscodeError is a single failed transcode job. The batch skips the job
// and carries on; the error is aggregated into the run report.
type TranscodeError struct {
	Input  string
	Stderr string
	Err    error
}

func (e *TranscodeError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("transcode %s: %v: %s", e.Input, e.Err, e.Stderr)
	}
	return fmt.Sprintf("transcode %s: %v", e.Input, e.Err)
}

func (e *TranscodeError) Unwrap() error { return e.Err }
