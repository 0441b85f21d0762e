package bootstrap

import (
	"context"
	"log/slog"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/metrics"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		clock.NewRealClock,
		NewLedger,
	),
)

// NewLedger creates the single process-wide ledger with every seat free.
func NewLedger(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, m *metrics.Metrics) (*reservation.Ledger, error) {
	ledger, err := reservation.NewLedger(cfg.Ledger.MaxSeats, clk)
	if err != nil {
		return nil, err
	}
	m.ObserveLedger(ledger.MaxSeats(), ledger.SeatsAvailable(), 0)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("ledger opened", "max_seats", ledger.MaxSeats())
			return nil
		},
		// The ledger is in-memory only; its final state is logged and discarded.
		OnStop: func(_ context.Context) error {
			slog.Info("ledger closed",
				"reservations", ledger.Len(),
				"seated_guests", ledger.SeatedGuests(),
				"seats_available", ledger.SeatsAvailable())
			return nil
		},
	})

	return ledger, nil
}
