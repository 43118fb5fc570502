package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/badelinebot/badeline/internal/bot"
	"github.com/badelinebot/badeline/internal/config"
	"github.com/badelinebot/badeline/internal/rules"
	"github.com/badelinebot/badeline/internal/srcom"
	"github.com/badelinebot/badeline/internal/twitch"
)

// WatchOptions holds flags for the watch command.
type WatchOptions struct {
	*RootOptions
	Config   string
	Interval time.Duration

	// Tokens allows overriding the cycle token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	Tokens bot.TokenGenerator
}

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Start the moderation loop",
		Long: `Start the moderation loop over the configured games.

The bot polls each game's pending submissions at the configured
interval, evaluates the validity rules, and rejects failing runs with
a composed reason. Credentials come from SRC_API_KEY, TWITCH_CLIENT_ID
and TWITCH_CLIENT_SECRET.

Example:
  badeline watch --config games.cue
  badeline watch --config games.cue --interval 10m --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "path to the game roster file (required)")
	cmd.Flags().DurationVar(&opts.Interval, "interval", bot.DefaultInterval, "wait between moderation cycles")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runWatch(opts *WatchOptions, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	creds, err := config.LoadCredentials()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load credentials", err)
	}

	slog.Info("loading game roster", "path", opts.Config)
	games, err := config.LoadGames(opts.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load game roster", err)
	}
	slog.Info("roster loaded", "games", len(games))

	src := srcom.NewClient(creds.SRCAPIKey)
	ttv := twitch.NewClient(creds.TwitchClientID, creds.TwitchClientSecret)
	checker := rules.NewChecker(ttv)
	runner := bot.NewRunner(src, ttv, checker, srcom.NewRotator(), games)

	tokens := opts.Tokens
	if tokens == nil {
		tokens = bot.UUIDv7Generator{}
	}
	scheduler := bot.NewScheduler(runner, opts.Interval, tokens)

	// Setup signal handling for shutdown.
	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	slog.Info("bot starting", "games", len(games), "interval", opts.Interval)
	fmt.Fprintln(cmd.OutOrStdout(), "Moderation loop started. Press Ctrl-C to stop.")

	if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return WrapExitError(ExitFailure, "scheduler error", err)
	}

	slog.Info("bot stopped")
	return nil
}
