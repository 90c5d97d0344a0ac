// Package audio plays a media file's sound track through an external player
// process, independently of the rendered frames.
//
// The player is started detached with its output discarded. There is no
// sample-level synchronization: callers wait a short pre-roll after
// [FFplay.Start] before drawing the first frame.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultBinary is the player executable looked up in PATH.
const DefaultBinary = "ffplay"

// ErrPlayerNotFound indicates the player executable is not installed.
var ErrPlayerNotFound = errors.New("audio player not found")

// FFplay launches ffplay in audio-only mode.
// The zero value uses [DefaultBinary].
type FFplay struct {
	// Binary is the executable name or path.
	Binary string
}

// Args returns the player arguments for path: no video window, exit at end
// of stream, no logging.
func (f FFplay) Args(path string) []string {
	return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
}

// Start launches the player for path and returns immediately. The process
// is killed when ctx is done or [Session.Stop] is called. A missing
// executable returns an error wrapping [ErrPlayerNotFound].
func (f FFplay) Start(ctx context.Context, path string) (*Session, error) {
	bin := f.Binary
	if bin == "" {
		bin = DefaultBinary
	}

	resolved, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: install ffmpeg (https://ffmpeg.org) to enable sound", ErrPlayerNotFound, bin)
	}

	ctx, cancel := context.WithCancel(ctx)

	//nolint:gosec // The media path is chosen by the local user.
	cmd := exec.CommandContext(ctx, resolved, f.Args(path)...)
	// Nil Stdout and Stderr are connected to the null device.
	cmd.Stdout = nil
	cmd.Stderr = nil

	err = cmd.Start()
	if err != nil {
		cancel()

		return nil, fmt.Errorf("starting %s: %w", bin, err)
	}

	s := &Session{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		s.err = cmd.Wait()
		close(s.done)
	}()

	return s, nil
}

// Session is a running player process.
type Session struct {
	err    error
	cancel context.CancelFunc
	done   chan struct{}
}

// Done returns a channel that is closed when the process exits.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns the process exit error. It is only meaningful after
// [Session.Done] is closed.
func (s *Session) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Wait blocks until the process exits or timeout elapses, reporting
// whether the process exited.
func (s *Session) Wait(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-s.done:
		return true
	case <-timer.C:
		return false
	}
}

// Stop kills the process if it is still running and waits for it to be
// reaped. Idempotent.
func (s *Session) Stop() {
	s.cancel()
	<-s.done
}
