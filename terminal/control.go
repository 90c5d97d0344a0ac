package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// EraseLine erases from the cursor to the end of the row.
const EraseLine = "\033[K"

const (
	seqClear      = "\033[2J\033[H"
	seqHome       = "\033[H"
	seqEraseDown  = "\033[J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// Control is the set of terminal operations a display needs.
type Control interface {
	Clear() error
	Home() error
	EraseDown() error
	HideCursor() error
	ShowCursor() error
}

// Escapes implements [Control] by writing ANSI escape sequences to W.
type Escapes struct {
	W io.Writer
}

// Clear erases the screen and moves the cursor to the origin.
func (e Escapes) Clear() error { return e.write(seqClear) }

// Home moves the cursor to the origin without erasing.
func (e Escapes) Home() error { return e.write(seqHome) }

// EraseDown erases from the cursor to the end of the screen.
func (e Escapes) EraseDown() error { return e.write(seqEraseDown) }

// HideCursor makes the cursor invisible.
func (e Escapes) HideCursor() error { return e.write(seqHideCursor) }

// ShowCursor makes the cursor visible.
func (e Escapes) ShowCursor() error { return e.write(seqShowCursor) }

func (e Escapes) write(seq string) error {
	_, err := io.WriteString(e.W, seq)
	if err != nil {
		return fmt.Errorf("writing control sequence: %w", err)
	}

	return nil
}

// FileWidth returns a function reporting the column count of the terminal
// attached to f, or 0 when f is not a terminal.
func FileWidth(f *os.File) func() int {
	fd := int(f.Fd()) //nolint:gosec // File descriptors fit in an int.

	return func() int {
		if !term.IsTerminal(fd) {
			return 0
		}

		w, _, err := term.GetSize(fd)
		if err != nil {
			return 0
		}

		return w
	}
}
