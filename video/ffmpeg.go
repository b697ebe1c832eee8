package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os/exec"
	"strings"
)

const (
	// Tail of stderr kept for diagnostics when ffmpeg fails.
	maxStderrBytes = 8 * 1024
)

// CheckInstalled verifies the ffmpeg binary responds to -version and returns
// its first version line. Called once at startup so a misconfigured path is
// reported before any work is attempted.
func CheckInstalled(ctx context.Context, ffmpegPath string) (string, error) {
	out, err := exec.CommandContext(ctx, ffmpegPath, "-version").Output()
	if err != nil {
		return "", fmt.Errorf("ffmpeg not usable at %q: %w", ffmpegPath, err)
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}

// FFmpegFrameSource decodes single frames by piping one PNG out of ffmpeg.
type FFmpegFrameSource struct {
	ffmpegPath string
	logger     *slog.Logger
}

func NewFFmpegFrameSource(ffmpegPath string, logger *slog.Logger) *FFmpegFrameSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FFmpegFrameSource{ffmpegPath: ffmpegPath, logger: logger}
}

func (s *FFmpegFrameSource) Open(path string) (FrameHandle, error) {
	return &ffmpegHandle{ffmpegPath: s.ffmpegPath, input: path, logger: s.logger.With("video", path)}, nil
}

type ffmpegHandle struct {
	ffmpegPath string
	input      string
	logger     *slog.Logger
	closed     bool
}

// frameArgs builds the ffmpeg argument list that emits exactly one PNG for
// the given zero-based frame index on stdout.
func frameArgs(input string, frameIndex int) []string {
	return []string{
		"-i", input,
		"-vf", fmt.Sprintf("select=eq(n\\,%d)", frameIndex),
		"-vsync", "0",
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	}
}

func (h *ffmpegHandle) Seek(frameIndex int) (image.Image, error) {
	if h.closed {
		return nil, fmt.Errorf("seek on closed handle for %s", h.input)
	}
	cmd := exec.Command(h.ffmpegPath, frameArgs(h.input, frameIndex)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("decode frame %d of %s: %w: %s", frameIndex, h.input, err, stderrTail(stderr.Bytes()))
	}
	if stdout.Len() == 0 {
		// ffmpeg exits zero with empty output when the select filter never
		// matches, which means the index is past the end of the clip.
		return nil, fmt.Errorf("frame %d of %s: %w", frameIndex, h.input, ErrFrameNotFound)
	}
	img, err := png.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("decode frame %d of %s: %w", frameIndex, h.input, err)
	}
	h.logger.Debug("reference frame decoded", "frame", frameIndex)
	return img, nil
}

func (h *ffmpegHandle) Close() error {
	h.closed = true
	return nil
}

// FFmpegTranscoder crops clips with libx264 at a fixed quality. The whole
// clip is cropped spatially; no temporal trim is applied.
type FFmpegTranscoder struct {
	ffmpegPath string
	logger     *slog.Logger
}

func NewFFmpegTranscoder(ffmpegPath string, logger *slog.Logger) *FFmpegTranscoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &FFmpegTranscoder{ffmpegPath: ffmpegPath, logger: logger}
}

// transcodeArgs builds the crop job argument list.
func transcodeArgs(input, filterChain string, crf int, output string) []string {
	return []string{
		"-i", input,
		"-vf", filterChain,
		"-vcodec", "libx264",
		"-crf", fmt.Sprint(crf),
		"-y",
		output,
	}
}

func (t *FFmpegTranscoder) Run(ctx context.Context, inputPath, filterChain string, crf int, outputPath string) error {
	cmd := exec.CommandContext(ctx, t.ffmpegPath, transcodeArgs(inputPath, filterChain, crf, outputPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	t.logger.Debug("transcode start", "input", inputPath, "filter", filterChain, "output", outputPath)
	if err := cmd.Run(); err != nil {
		return &TranscodeError{Input: inputPath, Stderr: stderrTail(stderr.Bytes()), Err: err}
	}
	return nil
}

func stderrTail(b []byte) string {
	if len(b) > maxStderrBytes {
		b = b[len(b)-maxStderrBytes:]
	}
	return strings.TrimSpace(string(b))
}
