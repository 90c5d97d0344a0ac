// Command asciiplay plays a video or shows an image in the terminal as
// ASCII art.
//
// The media path, width, frame rate, color, and sound choices are asked
// interactively on start. Flags tune how playback is displayed.
//
// # Usage
//
//	asciiplay [flags]
//
// # Flags
//
//	--refresh string        frame refresh strategy, home or clear (default home)
//	--display string        display, ansi or tui (default ansi)
//	--preroll duration      wait between starting audio and the first frame (default 500ms)
//	--audio-wait duration   maximum wait for audio to finish (default 1s)
//	--audio-player string   audio player executable (default ffplay)
//	--log-level string      log level (default warn)
//	--log-format string     log format (default text)
//	--cpu-profile string    write a CPU profile to this file
//	--heap-profile string   write a heap profile to this file
//	--allocs-profile string write an allocs profile to this file
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/asciiplay/audio"
	"go.jacobcolvin.com/asciiplay/clock"
	"go.jacobcolvin.com/asciiplay/log"
	"go.jacobcolvin.com/asciiplay/media"
	"go.jacobcolvin.com/asciiplay/player"
	"go.jacobcolvin.com/asciiplay/profile"
	"go.jacobcolvin.com/asciiplay/prompt"
	"go.jacobcolvin.com/asciiplay/terminal"
	"go.jacobcolvin.com/asciiplay/version"
)

// registrar registers shell completions for its flags.
type registrar interface {
	RegisterCompletions(cmd *cobra.Command) error
}

func main() {
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()
	playCfg := player.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "asciiplay [flags]",
		Short: "Play videos and images as ASCII art in the terminal",
		Long: `asciiplay asks for a media file and plays it in the terminal as ASCII art.
Videos play at their own frame rate, optionally in 24-bit color and with sound
through ffplay. Images are shown once. Press ctrl+c to stop playback.`,
		Args:          cobra.NoArgs,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), logCfg, profCfg, playCfg)
		},
	}

	flags := rootCmd.Flags()
	logCfg.RegisterFlags(flags)
	profCfg.RegisterFlags(flags)
	playCfg.RegisterFlags(flags)

	for _, r := range []registrar{logCfg, profCfg, playCfg} {
		completionErr := r.RegisterCompletions(rootCmd)
		if completionErr != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
		}
	}

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logCfg *log.Config, profCfg *profile.Config, playCfg *player.Config) (err error) {
	err = logCfg.Validate()
	if err != nil {
		return err
	}

	err = playCfg.Validate()
	if err != nil {
		return err
	}

	strategy, err := playCfg.Strategy()
	if err != nil {
		return err
	}

	kind, err := playCfg.DisplayKind()
	if err != nil {
		return err
	}

	// Prompts run before signals are captured so that ctrl+c still exits
	// while waiting for input.
	opts, err := prompt.Ask(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		display player.Display
		logOut  io.Writer = os.Stderr
	)

	switch kind {
	case player.DisplayTUI:
		pub := log.NewPublisher()
		defer func() {
			err = errors.Join(err, pub.Close())
		}()

		sub := pub.Subscribe()
		defer sub.Close()

		logOut = pub
		display = terminal.NewTUI(stop, terminal.WithLogs(sub.C()))

	case player.DisplayANSI:
		display = terminal.NewRenderer(os.Stdout, strategy)
	}

	logger, err := logCfg.NewLogger(logOut)
	if err != nil {
		return err
	}

	slog.SetDefault(logger)

	prof := profCfg.NewProfiler()

	err = prof.Start()
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, prof.Stop())
	}()

	p := &player.Player{
		Decoder:   media.FFmpeg{},
		Display:   display,
		Audio:     player.FFplay(audio.FFplay{Binary: playCfg.AudioPlayer}),
		Clock:     clock.System(),
		Out:       os.Stdout,
		Logger:    logger,
		PreRoll:   playCfg.PreRoll,
		AudioWait: playCfg.AudioWait,
	}

	return p.Play(ctx, opts)
}
