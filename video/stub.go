package video

import (
	"context"
	"image"
	"sync"
)

// StubFrameSource serves a fixed in-memory frame and records the open/close
// sequence. It backs package tests and the batch pipeline's tests.
type StubFrameSource struct {
	Frame image.Image
	Fail  map[string]error // per-path Open failures

	mu     sync.Mutex
	Opened []string
	Closed []string
}

func NewStubFrameSource() *StubFrameSource {
	return &StubFrameSource{Frame: image.NewRGBA(image.Rect(0, 0, 640, 480))}
}

func (s *StubFrameSource) Open(path string) (FrameHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Fail[path]; err != nil {
		return nil, err
	}
	s.Opened = append(s.Opened, path)
	return &stubHandle{src: s, path: path}, nil
}

type stubHandle struct {
	src  *StubFrameSource
	path string
}

func (h *stubHandle) Seek(frameIndex int) (image.Image, error) {
	if h.src.Frame == nil {
		return nil, ErrFrameNotFound
	}
	return h.src.Frame, nil
}

func (h *stubHandle) Close() error {
	h.src.mu.Lock()
	defer h.src.mu.Unlock()
	h.src.Closed = append(h.src.Closed, h.path)
	return nil
}

// StubTranscoder records jobs and fails the configured ones.
type StubTranscoder struct {
	Fail map[string]error // keyed by output path

	mu   sync.Mutex
	Jobs []StubJob
}

type StubJob struct {
	Input  string
	Filter string
	CRF    int
	Output string
}

func (t *StubTranscoder) Run(ctx context.Context, inputPath, filterChain string, crf int, outputPath string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.Fail[outputPath]; err != nil {
		return err
	}
	t.Jobs = append(t.Jobs, StubJob{Input: inputPath, Filter: filterChain, CRF: crf, Output: outputPath})
	return nil
}
