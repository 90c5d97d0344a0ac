// Package prompt asks for playback options on an interactive console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.jacobcolvin.com/asciiplay/player"
)

// ErrNoPath indicates input ended before a media path was given.
var ErrNoPath = errors.New("no media path given")

// Questions shown to the user, in order.
const (
	AskPath  = "🎥 Enter video path: "
	AskWidth = "📏 Enter terminal width (default 80): "
	AskFPS   = "🎞️  Enter FPS (0 = auto): "
	AskColor = "🌈 Enable color output? (y/n): "
	AskSound = "🔊 Play sound? (y/n): "
)

// Ask writes each question to w and reads one answer line from r.
//
// Input that ends after the path leaves the remaining options at their
// defaults. Input that ends before the path returns [ErrNoPath].
func Ask(r io.Reader, w io.Writer) (player.Options, error) {
	var opts player.Options

	sc := bufio.NewScanner(r)

	path, ok, err := ask(sc, w, AskPath)
	if err != nil {
		return opts, err
	}

	if !ok || path == "" {
		return opts, ErrNoPath
	}

	opts.Path = path
	opts.Width = player.DefaultWidth

	answer, ok, err := ask(sc, w, AskWidth)
	if err != nil || !ok {
		return opts, err
	}

	opts.Width = ParseWidth(answer)

	answer, ok, err = ask(sc, w, AskFPS)
	if err != nil || !ok {
		return opts, err
	}

	opts.FPS = ParseFPS(answer)

	answer, ok, err = ask(sc, w, AskColor)
	if err != nil || !ok {
		return opts, err
	}

	opts.Color = ParseYes(answer)

	answer, ok, err = ask(sc, w, AskSound)
	if err != nil || !ok {
		return opts, err
	}

	opts.Sound = ParseYes(answer)

	return opts, nil
}

// ask prints question and returns the trimmed answer, or ok=false at end
// of input.
func ask(sc *bufio.Scanner, w io.Writer, question string) (string, bool, error) {
	_, err := io.WriteString(w, question)
	if err != nil {
		return "", false, fmt.Errorf("writing prompt: %w", err)
	}

	if !sc.Scan() {
		err := sc.Err()
		if err != nil {
			return "", false, fmt.Errorf("reading answer: %w", err)
		}

		return "", false, nil
	}

	return strings.TrimSpace(sc.Text()), true, nil
}

// ParseWidth returns the width in s, or [player.DefaultWidth] unless s is
// all digits with a value of at least 1.
func ParseWidth(s string) int {
	n, ok := digits(s)
	if !ok || n < 1 {
		return player.DefaultWidth
	}

	return n
}

// ParseFPS returns the frame rate in s, or 0 (use the source rate) unless s
// is all digits with a positive value.
func ParseFPS(s string) float64 {
	n, ok := digits(s)
	if !ok || n < 1 {
		return 0
	}

	return float64(n)
}

// ParseYes reports whether s is "y" or "yes", ignoring case.
func ParseYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}

	return false
}

func digits(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}
