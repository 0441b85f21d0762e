package bootstrap

import (
	"context"

	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cmds commands.LedgerCommands, cfg config.Config) *worker.IdempotencySweeper {
			return worker.NewIdempotencySweeper(cmds, cfg.Ledger.SweepInterval)
		},
	),
	fx.Invoke(startSweeper),
)

func startSweeper(lc fx.Lifecycle, s *worker.IdempotencySweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go s.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
