package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/logger"
	"ctchen222/tictactoe/internal/telemetry"
)

// app carries what the persistent pre-run sets up for sub-commands.
type app struct {
	cfg      *config.Config
	shutdown telemetry.ShutdownFunc
}

func Root() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe against a friend or the computer",
		Long: heredoc.Doc(`tictactoe plays tic-tac-toe in the terminal, either between
			two players sharing the keyboard or against the computer at
			one of three difficulties: easy, medium or hard.

			Settings are read from $XDG_CONFIG_HOME/tictactoe/config.yml
			when present and may be overridden with TICTACTOE_* environment
			variables or command line flags.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// global flags
	root.PersistentFlags().StringP("config", "c", "", "Path to the config file")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(withTeardown(a, Play(a)))
	root.AddCommand(withTeardown(a, SelfPlay(a)))
	root.AddCommand(withTeardown(a, Serve(a)))

	return root
}

// withTeardown flushes telemetry after cmd runs, whether or not it failed.
func withTeardown(a *app, cmd *cobra.Command) *cobra.Command {
	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer a.teardown(cmd.Context())
		return run(cmd, args)
	}
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// If --trace flag is provided, log everything.
	if cmd.Flag("trace").Changed {
		cfg.LogLevel = "debug"
	}

	if err := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
		OTel:   cfg.Telemetry.Enabled,
	}); err != nil {
		return err
	}

	shutdown, err := telemetry.InitOtel(cmd.Context(), cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	a.cfg = cfg
	a.shutdown = shutdown
	slog.Debug("config loaded", "config.path", path, "game.mode", cfg.Game.Mode, "game.difficulty", cfg.Game.Difficulty)
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	shutdown := a.shutdown
	a.shutdown = nil
	if err := shutdown(context.WithoutCancel(ctx)); err != nil {
		slog.Error("Error shutting down telemetry", "error", err)
	}
	return nil
}
