package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Strategy selects how the previous frame is erased.
type Strategy string

const (
	// StrategyHome moves the cursor to the origin and overwrites in place.
	StrategyHome Strategy = "home"
	// StrategyClear clears the whole screen before each frame.
	StrategyClear Strategy = "clear"
)

// ErrUnknownStrategy indicates an unrecognized refresh strategy string.
var ErrUnknownStrategy = errors.New("unknown refresh strategy")

// GetAllStrategyStrings returns every valid [Strategy] as a string.
func GetAllStrategyStrings() []string {
	return []string{string(StrategyHome), string(StrategyClear)}
}

// ParseStrategy parses a refresh strategy string, case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(s)) {
	case StrategyHome:
		return StrategyHome, nil
	case StrategyClear:
		return StrategyClear, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Renderer writes frames to a terminal through a [Control].
//
// Create instances with [NewRenderer], or fill the fields directly.
type Renderer struct {
	// Out receives frame text.
	Out io.Writer
	// Control performs cursor and screen operations, usually on Out.
	Control Control
	// Size reports the terminal's column count; nil or 0 means unknown.
	Size func() int
	// Strategy defaults to [StrategyHome].
	Strategy Strategy
}

// NewRenderer creates a [Renderer] drawing to f.
func NewRenderer(f *os.File, s Strategy) *Renderer {
	return &Renderer{
		Out:      f,
		Control:  Escapes{W: f},
		Size:     FileWidth(f),
		Strategy: s,
	}
}

// Open hides the cursor. With [StrategyHome] the screen is also cleared once
// so that in-place overwrites start from a blank screen.
func (r *Renderer) Open() error {
	err := r.Control.HideCursor()
	if err != nil {
		return err
	}

	if r.Strategy != StrategyClear {
		return r.Control.Clear()
	}

	return nil
}

// Show erases the previous frame according to the strategy and writes
// frame. With [StrategyHome] each row is erased to its end and the screen
// below the frame is erased.
func (r *Renderer) Show(frame string) error {
	if r.Strategy == StrategyClear {
		err := r.Control.Clear()
		if err != nil {
			return err
		}

		return r.write(frame)
	}

	err := r.Control.Home()
	if err != nil {
		return err
	}

	// Overwriting in place leaves the tail of a larger previous frame.
	err = r.write(strings.ReplaceAll(frame, "\n", EraseLine+"\n"))
	if err != nil {
		return err
	}

	return r.Control.EraseDown()
}

func (r *Renderer) write(frame string) error {
	_, err := io.WriteString(r.Out, frame)
	if err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}

	return nil
}

// Close moves past the last frame and restores the cursor.
func (r *Renderer) Close() error {
	_, err := io.WriteString(r.Out, "\n")
	showErr := r.Control.ShowCursor()

	return errors.Join(err, showErr)
}

// Width returns the terminal's column count, or 0 if unknown.
func (r *Renderer) Width() int {
	if r.Size == nil {
		return 0
	}

	return r.Size()
}
