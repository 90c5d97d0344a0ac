package player_test

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiplay/player"
	"go.jacobcolvin.com/asciiplay/terminal"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := player.NewConfig()
	cfg.RegisterFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))

	assert.Equal(t, "home", cfg.Refresh)
	assert.Equal(t, "ansi", cfg.Display)
	assert.Equal(t, "ffplay", cfg.AudioPlayer)
	assert.Equal(t, player.DefaultPreRoll, cfg.PreRoll)
	assert.Equal(t, player.DefaultAudioWait, cfg.AudioWait)
	require.NoError(t, cfg.Validate())
}

func TestConfigFlags(t *testing.T) {
	t.Parallel()

	cfg := player.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	err := flags.Parse([]string{
		"--refresh=clear",
		"--display=TUI",
		"--preroll=250ms",
		"--audio-wait=2s",
		"--audio-player=/opt/bin/ffplay",
	})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	strategy, err := cfg.Strategy()
	require.NoError(t, err)
	assert.Equal(t, terminal.StrategyClear, strategy)

	display, err := cfg.DisplayKind()
	require.NoError(t, err)
	assert.Equal(t, player.DisplayTUI, display)

	assert.Equal(t, 250*time.Millisecond, cfg.PreRoll)
	assert.Equal(t, 2*time.Second, cfg.AudioWait)
	assert.Equal(t, "/opt/bin/ffplay", cfg.AudioPlayer)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err    error
		modify func(*player.Config)
	}{
		"unknown refresh": {
			modify: func(c *player.Config) { c.Refresh = "redraw" },
			err:    terminal.ErrUnknownStrategy,
		},
		"unknown display": {
			modify: func(c *player.Config) { c.Display = "sixel" },
			err:    player.ErrUnknownDisplay,
		},
		"negative preroll": {
			modify: func(c *player.Config) { c.PreRoll = -time.Second },
			err:    player.ErrInvalidDuration,
		},
		"negative audio wait": {
			modify: func(c *player.Config) { c.AudioWait = -time.Millisecond },
			err:    player.ErrInvalidDuration,
		},
		"zero durations": {
			modify: func(c *player.Config) {
				c.PreRoll = 0
				c.AudioWait = 0
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := player.NewConfig()
			cfg.RegisterFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestParseDisplay(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  player.DisplayKind
		input string
		err   bool
	}{
		"ansi":       {input: "ansi", want: player.DisplayANSI},
		"tui":        {input: "tui", want: player.DisplayTUI},
		"mixed case": {input: "Ansi", want: player.DisplayANSI},
		"empty":      {input: "", err: true},
		"unknown":    {input: "kitty", err: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := player.ParseDisplay(tc.input)
			if tc.err {
				require.ErrorIs(t, err, player.ErrUnknownDisplay)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := player.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	for _, name := range []string{"refresh", "display"} {
		fn, ok := cmd.GetFlagCompletionFunc(name)
		require.True(t, ok, "flag %s", name)

		got, directive := fn(cmd, nil, "")
		assert.NotEmpty(t, got)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	}
}
