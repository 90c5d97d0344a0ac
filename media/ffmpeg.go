package media

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"path/filepath"
	"sync"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const (
	defaultFFmpeg  = "ffmpeg"
	defaultFFprobe = "ffprobe"
)

// Source is a sequence of decoded frames.
type Source interface {
	// Next returns the next frame, or [io.EOF] at end of stream.
	Next() (image.Image, error)
	// Info returns the stream metadata.
	Info() Info
	// Close releases the stream. Idempotent.
	Close() error
}

// FFmpeg decodes media with the ffmpeg and ffprobe executables.
// The zero value looks both up in PATH.
type FFmpeg struct {
	// Binary is the ffmpeg executable name or path.
	Binary string
	// FFprobe is the ffprobe executable name or path. When empty it is the
	// ffprobe next to Binary, or ffprobe in PATH.
	FFprobe string
}

// ProbeBinary returns the ffprobe executable [FFmpeg.Probe] runs.
func (f FFmpeg) ProbeBinary() string {
	if f.FFprobe != "" {
		return f.FFprobe
	}

	if f.Binary != "" && filepath.Base(f.Binary) != f.Binary {
		return filepath.Join(filepath.Dir(f.Binary), defaultFFprobe+filepath.Ext(f.Binary))
	}

	return defaultFFprobe
}

// ProbeArgs returns the ffprobe arguments that print path's streams and
// format as JSON.
func ProbeArgs(path string) []string {
	return []string{"-show_format", "-show_streams", "-of", "json", path}
}

// Probe reads stream metadata for path with ffprobe.
func (f FFmpeg) Probe(path string) (Info, error) {
	bin := f.ProbeBinary()

	resolved, err := exec.LookPath(bin)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s not found: install ffmpeg (https://ffmpeg.org)",
			ErrDecoderNotFound, bin)
	}

	var out []byte

	// ffmpeg-go always runs ffprobe from PATH.
	if bin == defaultFFprobe {
		var s string

		s, err = ffmpeg.Probe(path)
		out = []byte(s)
	} else {
		//nolint:gosec // The media path is chosen by the local user.
		out, err = exec.Command(resolved, ProbeArgs(path)...).Output()
	}

	if err != nil {
		return Info{}, fmt.Errorf("%w: probing %s: %w", ErrUnsupported, path, err)
	}

	return ParseProbe(out)
}

// DecodeArgs returns the ffmpeg arguments that write path's video as raw
// RGBA frames to stdout. A positive frames limits the output frame count.
// The process is started with stdin on the null device, so it never reads
// keystrokes meant for the player.
func DecodeArgs(path string, frames int) []string {
	out := ffmpeg.KwArgs{
		"format":  "rawvideo",
		"pix_fmt": "rgba",
	}
	if frames > 0 {
		out["frames:v"] = frames
	}

	return ffmpeg.Input(path, ffmpeg.KwArgs{"loglevel": "quiet"}).
		Output("pipe:", out).
		GetArgs()
}

// Open probes path and starts an ffmpeg process decoding it. The process
// is stopped when ctx is done or the returned [Source] is closed.
func (f FFmpeg) Open(ctx context.Context, path string) (Source, error) {
	return f.open(ctx, path, 0)
}

func (f FFmpeg) open(ctx context.Context, path string, frames int) (*Stream, error) {
	info, err := f.Probe(path)
	if err != nil {
		return nil, err
	}

	bin := f.Binary
	if bin == "" {
		bin = defaultFFmpeg
	}

	resolved, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found in PATH: install ffmpeg (https://ffmpeg.org)",
			ErrDecoderNotFound, bin)
	}

	ctx, cancel := context.WithCancel(ctx)

	//nolint:gosec // The media path is chosen by the local user.
	cmd := exec.CommandContext(ctx, resolved, DecodeArgs(path, frames)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()

		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}

	err = cmd.Start()
	if err != nil {
		cancel()

		return nil, fmt.Errorf("starting ffmpeg: %w", err)
	}

	s := NewRawStream(stdout, info)
	s.stop = func() {
		cancel()
		//nolint:errcheck // Error is expected after context cancellation.
		cmd.Wait()
	}

	return s, nil
}

// Stream reads raw RGBA frames of a fixed size from a reader.
//
// Create instances with [NewRawStream] or [FFmpeg.Open].
type Stream struct {
	r     io.Reader
	stop  func()
	info  Info
	close sync.Once
}

// NewRawStream creates a [Stream] decoding consecutive frames of
// info.Width x info.Height RGBA pixels from r. Closing the stream closes r
// if it implements [io.Closer].
func NewRawStream(r io.Reader, info Info) *Stream {
	return &Stream{r: r, info: info}
}

// Next reads one frame. A short final frame is treated as end of stream.
func (s *Stream) Next() (image.Image, error) {
	if s.info.Width <= 0 || s.info.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid frame size %dx%d", ErrUnsupported, s.info.Width, s.info.Height)
	}

	buf := make([]byte, s.info.Width*s.info.Height*4)

	_, err := io.ReadFull(s.r, buf)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, io.EOF
	}

	if err != nil {
		return nil, err
	}

	return &image.RGBA{
		Pix:    buf,
		Stride: s.info.Width * 4,
		Rect:   image.Rect(0, 0, s.info.Width, s.info.Height),
	}, nil
}

// Info returns the stream metadata.
func (s *Stream) Info() Info {
	return s.info
}

// Close stops the decoder process, if any, and closes the reader.
func (s *Stream) Close() error {
	var err error

	s.close.Do(func() {
		if c, ok := s.r.(io.Closer); ok {
			err = c.Close()
		}

		if s.stop != nil {
			s.stop()
		}
	})

	return err
}
