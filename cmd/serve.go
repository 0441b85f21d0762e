package main

import (
	"context"
	"fmt"
	"log/slog"

	"tablebook/cmd/bootstrap"
	"tablebook/internal/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type serveFlags struct {
	port     string
	maxSeats int
}

func newServeCmd() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.port, "port", "", "listen port (overrides PORT)")
	cmd.Flags().IntVar(&flags.maxSeats, "max-seats", 0, "seat capacity (overrides LEDGER_MAX_SEATS)")

	return cmd
}

// applyFlags layers command-line overrides on top of the environment config.
func (f serveFlags) applyFlags(cfg config.Config) (config.Config, error) {
	if f.port != "" {
		cfg.Server.Port = f.port
	}
	if f.maxSeats != 0 {
		cfg.Ledger.MaxSeats = f.maxSeats
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runServer(ctx context.Context, flags serveFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app := fx.New(
		bootstrap.Module,
		bootstrap.ServerModule,
		bootstrap.FxLogger,
		fx.Decorate(flags.applyFlags),
	)

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	sig := <-app.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("failed to stop application cleanly", "error", err.Error())
	}

	if sig.ExitCode != 0 {
		return fmt.Errorf("application exited with code %d", sig.ExitCode)
	}
	slog.Info("application stopped")
	return nil
}
