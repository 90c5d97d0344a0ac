package audio_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiplay/audio"
)

// fakePlayer writes an executable shell script standing in for ffplay.
func fakePlayer(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	path := filepath.Join(t.TempDir(), "ffplay")

	//nolint:gosec // Test script must be executable.
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)
	require.NoError(t, err)

	return path
}

func TestArgs(t *testing.T) {
	t.Parallel()

	got := audio.FFplay{}.Args("clip.mp4")
	assert.Equal(t, []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "clip.mp4"}, got)
}

func TestStartMissingBinary(t *testing.T) {
	t.Parallel()

	f := audio.FFplay{Binary: "asciiplay-test-no-such-player"}

	s, err := f.Start(t.Context(), "clip.mp4")
	require.ErrorIs(t, err, audio.ErrPlayerNotFound)
	assert.Nil(t, s)
}

func TestStartPassesArgs(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "args.txt")
	bin := fakePlayer(t, `printf '%s\n' "$@" > "`+out+`"`)

	s, err := audio.FFplay{Binary: bin}.Start(t.Context(), "my clip.mp4")
	require.NoError(t, err)

	require.True(t, s.Wait(5*time.Second))
	require.NoError(t, s.Err())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"-nodisp", "-autoexit", "-loglevel", "quiet", "my clip.mp4"},
		strings.Split(strings.TrimSpace(string(data)), "\n"),
	)
}

func TestWaitTimeout(t *testing.T) {
	t.Parallel()

	bin := fakePlayer(t, "exec sleep 30")

	s, err := audio.FFplay{Binary: bin}.Start(t.Context(), "clip.mp4")
	require.NoError(t, err)

	assert.False(t, s.Wait(20*time.Millisecond))

	s.Stop()
	s.Stop()

	select {
	case <-s.Done():
	default:
		t.Fatal("session should be done after Stop")
	}

	assert.Error(t, s.Err())
}

func TestContextCancelKillsPlayer(t *testing.T) {
	t.Parallel()

	bin := fakePlayer(t, "exec sleep 30")

	ctx, cancel := context.WithCancel(t.Context())

	s, err := audio.FFplay{Binary: bin}.Start(ctx, "clip.mp4")
	require.NoError(t, err)

	cancel()

	assert.True(t, s.Wait(5*time.Second))
}
