package player

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"go.jacobcolvin.com/asciiplay/ascii"
	"go.jacobcolvin.com/asciiplay/audio"
	"go.jacobcolvin.com/asciiplay/clock"
	"go.jacobcolvin.com/asciiplay/media"
)

// DefaultWidth is the grid width used when [Options.Width] is below 1.
const DefaultWidth = 80

var (
	// ErrNotFound indicates the input path does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrUnrecognized indicates the input is neither a video nor an image.
	ErrUnrecognized = errors.New("unrecognized file type")
	// ErrUnsupported indicates media that yields no decodable picture.
	ErrUnsupported = media.ErrUnsupported
)

// Decoder opens media files.
type Decoder interface {
	Open(ctx context.Context, path string) (media.Source, error)
	DecodeImage(ctx context.Context, path string) (image.Image, error)
}

// Display shows rendered frames. Open acquires the terminal, Close restores
// it, and Width reports the column count (0 if unknown).
type Display interface {
	Open() error
	Show(frame string) error
	Close() error
	Width() int
}

// Audio starts side-channel audio for a media file.
type Audio interface {
	Start(ctx context.Context, path string) (AudioSession, error)
}

// AudioSession is a running audio player.
type AudioSession interface {
	// Wait blocks until playback ends or timeout elapses, reporting
	// whether playback ended.
	Wait(timeout time.Duration) bool
	// Stop ends playback.
	Stop()
}

// FFplay adapts an [audio.FFplay] to [Audio].
func FFplay(f audio.FFplay) Audio {
	return ffplayAudio{f: f}
}

type ffplayAudio struct {
	f audio.FFplay
}

func (a ffplayAudio) Start(ctx context.Context, path string) (AudioSession, error) {
	s, err := a.f.Start(ctx, path)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Options are the per-session choices made by the user.
type Options struct {
	// Path is the media file.
	Path string
	// Width is the grid width in columns; below 1 means [DefaultWidth].
	Width int
	// FPS overrides the source frame rate when positive.
	FPS float64
	// Color wraps glyphs in 24-bit color escapes.
	Color bool
	// Sound plays the audio track of videos.
	Sound bool
}

// Player runs playback sessions.
//
// Decoder and Display are required. A nil Audio disables sound, a nil Clock
// uses [clock.System], a nil Out discards messages, and a nil Logger uses
// [slog.Default].
type Player struct {
	Decoder Decoder
	Display Display
	Audio   Audio
	Clock   clock.Clock
	Out     io.Writer
	Logger  *slog.Logger
	Mapper  ascii.Mapper
	// PreRoll is the wait between starting audio and the first frame.
	PreRoll time.Duration
	// AudioWait bounds the wait for audio to end after the last frame.
	AudioWait time.Duration
}

// Play classifies opts.Path and plays it: videos frame by frame until end
// of stream, images once. Interruption through ctx is not an error: the
// session is torn down and Play returns nil.
//
// A path that does not exist returns [ErrNotFound] before the decoder is
// used; other stat failures are returned wrapped. Neither video nor image
// returns [ErrUnrecognized].
func (p *Player) Play(ctx context.Context, opts Options) error {
	_, err := os.Stat(opts.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, opts.Path)
	}

	if err != nil {
		return fmt.Errorf("checking input: %w", err)
	}

	if opts.Width < 1 {
		opts.Width = DefaultWidth
	}

	kind := media.Detect(opts.Path)

	switch kind {
	case media.KindVideo:
		return p.playVideo(ctx, opts)
	case media.KindImage:
		return p.showImage(ctx, opts)
	case media.KindUnknown:
	}

	return fmt.Errorf("%w: %s", ErrUnrecognized, opts.Path)
}

func (p *Player) showImage(ctx context.Context, opts Options) (err error) {
	log := p.logger().With(slog.String("path", opts.Path))

	img, err := p.Decoder.DecodeImage(ctx, opts.Path)
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	err = p.Display.Open()
	if err != nil {
		return fmt.Errorf("opening display: %w", err)
	}

	defer func() {
		err = errors.Join(err, p.Display.Close())
	}()

	grid := p.Mapper.Map(img, fitWidth(opts.Width, p.Display.Width()))

	log.Debug("rendering image",
		slog.Int("width", grid.Width),
		slog.Int("height", grid.Height),
	)

	return p.Display.Show(grid.Render(opts.Color))
}

// session is the state of one video playback.
type session struct {
	src   media.Source
	audio AudioSession
	log   *slog.Logger
	opts  Options
	delay time.Duration
}

func (p *Player) playVideo(ctx context.Context, opts Options) (err error) {
	src, err := p.Decoder.Open(ctx, opts.Path)
	if err != nil {
		return fmt.Errorf("opening video: %w", err)
	}

	defer func() {
		err = errors.Join(err, src.Close())
	}()

	info := src.Info()

	s := &session{
		src:   src,
		opts:  opts,
		delay: clock.Delay(opts.FPS, info.FPS),
		log:   p.logger().With(slog.String("session", uuid.NewString())),
	}

	s.log.Info("playback started",
		slog.String("path", opts.Path),
		slog.Float64("source_fps", info.FPS),
		slog.Int("frames", info.Frames),
		slog.Duration("delay", s.delay),
		slog.Bool("color", opts.Color),
		slog.Bool("sound", opts.Sound),
	)

	p.printHeader(opts)

	if opts.Sound {
		s.audio = p.startAudio(ctx, s)
	}

	stopped, shown, err := p.render(ctx, s)

	if stopped {
		p.printf("\nPlayback stopped by user.\n")
	}

	if s.audio != nil {
		if stopped || !s.audio.Wait(p.AudioWait) {
			s.audio.Stop()
		}
	}

	s.log.Info("playback ended",
		slog.Int("shown", shown),
		slog.Bool("stopped", stopped),
	)

	if err != nil {
		return err
	}

	if shown == 0 && !stopped {
		return fmt.Errorf("%w: no frames decoded from %s", ErrUnsupported, opts.Path)
	}

	p.printf("\nVideo finished.\n")

	return nil
}

// startAudio launches audio and waits the pre-roll. A missing player is
// reported and playback continues silently.
func (p *Player) startAudio(ctx context.Context, s *session) AudioSession {
	if p.Audio == nil {
		return nil
	}

	a, err := p.Audio.Start(ctx, s.opts.Path)
	if err != nil {
		if errors.Is(err, audio.ErrPlayerNotFound) {
			p.printf("Warning: %v\n", err)
		} else {
			p.printf("Warning: audio disabled: %v\n", err)
		}

		s.log.Warn("audio unavailable", slog.Any("err", err))

		return nil
	}

	if p.PreRoll > 0 {
		select {
		case <-ctx.Done():
		case <-p.clock().After(p.PreRoll):
		}
	}

	return a
}

// render shows frames until end of stream, an error, or cancellation. The
// display is closed before returning.
func (p *Player) render(ctx context.Context, s *session) (stopped bool, shown int, err error) {
	err = p.Display.Open()
	if err != nil {
		return false, 0, fmt.Errorf("opening display: %w", err)
	}

	defer func() {
		err = errors.Join(err, p.Display.Close())
	}()

	total := s.src.Info().Frames

	pacer := clock.NewPacer(s.delay, p.clock())
	pacer.Start()

	for {
		if ctx.Err() != nil {
			return true, shown, nil
		}

		frame, nextErr := s.src.Next()
		// An interrupt also reaches the decoder, whose pipe then ends early.
		if nextErr != nil && ctx.Err() != nil {
			return true, shown, nil
		}

		if errors.Is(nextErr, io.EOF) {
			return false, shown, nil
		}

		if nextErr != nil {
			return false, shown, fmt.Errorf("decoding frame %d: %w", shown+1, nextErr)
		}

		termWidth := p.Display.Width()
		grid := p.Mapper.Map(frame, fitWidth(s.opts.Width, termWidth))

		text := grid.Render(s.opts.Color) + progressBar(shown+1, total, termWidth)

		showErr := p.Display.Show(text)
		if showErr != nil {
			return false, shown, fmt.Errorf("showing frame %d: %w", shown+1, showErr)
		}

		shown++

		if pacer.Wait(ctx, shown) != nil {
			return true, shown, nil
		}

		if shown%100 == 0 {
			s.log.Debug("pacing",
				slog.Int("shown", shown),
				slog.Duration("elapsed", pacer.Elapsed()),
			)
		}
	}
}

func (p *Player) printHeader(opts Options) {
	sound := "OFF"
	if opts.Sound {
		sound = "ON"
	}

	rule := p.Display.Width()
	if rule <= 0 {
		rule = opts.Width
	}

	p.printf("\nPlaying '%s' with sound: %s\n%s\n", filepath.Base(opts.Path), sound, repeat('-', rule))
}

func (p *Player) printf(format string, args ...any) {
	if p.Out == nil {
		return
	}

	fmt.Fprintf(p.Out, format, args...)
}

func (p *Player) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}

	return p.Logger
}

func (p *Player) clock() clock.Clock {
	if p.Clock == nil {
		return clock.System()
	}

	return p.Clock
}

// fitWidth reduces width to the terminal's column count when known.
func fitWidth(width, termWidth int) int {
	if termWidth > 0 && width > termWidth {
		return termWidth
	}

	return width
}
