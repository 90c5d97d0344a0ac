package player

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/asciiplay/audio"
	"go.jacobcolvin.com/asciiplay/terminal"
)

const (
	// DefaultPreRoll is the wait between starting audio and the first frame.
	DefaultPreRoll = 500 * time.Millisecond
	// DefaultAudioWait bounds the wait for audio to finish after the last
	// frame.
	DefaultAudioWait = time.Second
)

// DisplayKind selects the display implementation.
type DisplayKind string

const (
	// DisplayANSI writes escape sequences directly to the terminal.
	DisplayANSI DisplayKind = "ansi"
	// DisplayTUI draws through a Bubble Tea program on the alternate screen.
	DisplayTUI DisplayKind = "tui"
)

var (
	// ErrUnknownDisplay indicates an unrecognized display string.
	ErrUnknownDisplay = errors.New("unknown display")
	// ErrInvalidDuration indicates a negative duration flag.
	ErrInvalidDuration = errors.New("invalid duration")
)

// GetAllDisplayStrings returns every valid [DisplayKind] as a string.
func GetAllDisplayStrings() []string {
	return []string{string(DisplayANSI), string(DisplayTUI)}
}

// ParseDisplay parses a display string, case-insensitively.
func ParseDisplay(s string) (DisplayKind, error) {
	switch DisplayKind(strings.ToLower(s)) {
	case DisplayANSI:
		return DisplayANSI, nil
	case DisplayTUI:
		return DisplayTUI, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownDisplay, s)
}

// Flags holds CLI flag names for playback tuning.
type Flags struct {
	Refresh     string
	Display     string
	PreRoll     string
	AudioWait   string
	AudioPlayer string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds playback tuning set from CLI flags. What to play, and how
// wide, is asked interactively instead.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags       Flags
	Refresh     string
	Display     string
	AudioPlayer string
	PreRoll     time.Duration
	AudioWait   time.Duration
}

// NewConfig creates a [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Refresh:     "refresh",
		Display:     "display",
		PreRoll:     "preroll",
		AudioWait:   "audio-wait",
		AudioPlayer: "audio-player",
	}

	return f.NewConfig()
}

// RegisterFlags adds playback flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Refresh, c.Flags.Refresh, string(terminal.StrategyHome),
		fmt.Sprintf("frame refresh strategy, one of: %s", terminal.GetAllStrategyStrings()))
	flags.StringVar(&c.Display, c.Flags.Display, string(DisplayANSI),
		fmt.Sprintf("display, one of: %s", GetAllDisplayStrings()))
	flags.DurationVar(&c.PreRoll, c.Flags.PreRoll, DefaultPreRoll,
		"wait between starting audio and the first frame")
	flags.DurationVar(&c.AudioWait, c.Flags.AudioWait, DefaultAudioWait,
		"maximum wait for audio to finish after the last frame")
	flags.StringVar(&c.AudioPlayer, c.Flags.AudioPlayer, audio.DefaultBinary,
		"audio player executable")
}

// RegisterCompletions registers shell completions for playback flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Refresh,
		cobra.FixedCompletions(terminal.GetAllStrategyStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Refresh, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Display,
		cobra.FixedCompletions(GetAllDisplayStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Display, err)
	}

	return nil
}

// Strategy parses the refresh flag.
func (c *Config) Strategy() (terminal.Strategy, error) {
	return terminal.ParseStrategy(c.Refresh)
}

// DisplayKind parses the display flag.
func (c *Config) DisplayKind() (DisplayKind, error) {
	return ParseDisplay(c.Display)
}

// Validate checks every flag value.
func (c *Config) Validate() error {
	_, err := c.Strategy()
	if err != nil {
		return err
	}

	_, err = c.DisplayKind()
	if err != nil {
		return err
	}

	if c.PreRoll < 0 {
		return fmt.Errorf("%w: --%s %s", ErrInvalidDuration, c.Flags.PreRoll, c.PreRoll)
	}

	if c.AudioWait < 0 {
		return fmt.Errorf("%w: --%s %s", ErrInvalidDuration, c.Flags.AudioWait, c.AudioWait)
	}

	return nil
}
