package log

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags names the logging flags.
type Flags struct {
	Level  string
	Format string
}

// NewConfig creates a [Config] using these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds the logging flag values.
//
// Diagnostics default to warn so that routine session logs do not scroll
// the rendered frames. Create instances with [NewConfig].
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig creates a [Config] with the --log-level and --log-format flag
// names.
func NewConfig() *Config {
	return Flags{Level: "log-level", Format: "log-format"}.NewConfig()
}

// RegisterFlags adds the logging flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, string(LevelWarn),
		fmt.Sprintf("diagnostic log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, string(FormatText),
		fmt.Sprintf("diagnostic log format, one of: %s", GetAllFormatStrings()))
}

// RegisterCompletions completes the logging flag values on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	completions := map[string][]string{
		c.Flags.Level:  GetAllLevelStrings(),
		c.Flags.Format: GetAllFormatStrings(),
	}

	for flag, values := range completions {
		err := cmd.RegisterFlagCompletionFunc(flag,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// Validate reports an unknown level or format, wrapping
// [ErrInvalidArgument], so that bad flags fail before any prompt is shown.
func (c *Config) Validate() error {
	_, _, err := c.parse()
	return err
}

// NewLogger creates a logger writing to w. The display decides w: stderr
// for the ANSI renderer, a [Publisher] feeding the status row for the TUI.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, f, err := c.parse()
	if err != nil {
		return nil, err
	}

	return slog.New(NewHandler(w, lvl, f)), nil
}

func (c *Config) parse() (Level, Format, error) {
	lvl, err := ParseLevel(c.Level)
	if err != nil {
		return "", "", fmt.Errorf("%w: --%s: %w", ErrInvalidArgument, c.Flags.Level, err)
	}

	f, err := ParseFormat(c.Format)
	if err != nil {
		return "", "", fmt.Errorf("%w: --%s: %w", ErrInvalidArgument, c.Flags.Format, err)
	}

	return lvl, f, nil
}
