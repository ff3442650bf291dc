package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/klabast/wb-services/event-manager/internal/app"
	"github.com/klabast/wb-services/event-manager/internal/console"
)

// NewRootCommand builds the event-manager command tree
func NewRootCommand() *cobra.Command {
	cfg := app.DefaultConfig()

	root := &cobra.Command{
		Use:          "event-manager",
		Short:        "Coordinate the phases of a school or club event",
		Long:         "Interactive tool for agenda, approvals, announcements, logistics, rehearsal and execution day.\nAll event data lives in memory and is gone when the program exits.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd.Context(), cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.AuthFile, "auth-file", cfg.AuthFile,
		fmt.Sprintf("Principal credentials file (env %s, default %s next to the binary)", app.EnvAuthFile, app.DefaultAuthFile))
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel,
		fmt.Sprintf("Log level: debug, info, warn or error (env %s, default %s, or %s on a terminal without --log-file)",
			app.EnvLogLevel, app.DefaultLogLevel, app.TerminalLogLevel))
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")

	root.AddCommand(newHashPasswordCommand(&cfg))
	return root
}

func runConsole(ctx context.Context, cfg app.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	interactive := console.IsTerminal(os.Stdin)
	if interactive {
		cfg = cfg.ForTerminal()
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	authFile, err := cfg.ResolveAuthFile()
	if err != nil {
		return err
	}
	guard, err := app.LoadGuard(authFile, logger)
	if err != nil {
		return fmt.Errorf("failed to load auth credentials: %w", err)
	}

	prompter, out, restore, err := console.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer restore()

	// Raw mode drops the carriage return from bare line feeds on stderr.
	if interactive && cfg.LogFile == "" {
		if logger, err = app.NewWriterLogger(cfg, out); err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
	}

	state := app.NewState(logger, guard)
	logger.Debug("starting event manager", zap.Bool("sign_off_required", state.SignOffRequired()))
	return console.New(state, prompter, out, logger).Run(ctx)
}
