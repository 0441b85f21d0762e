package commands

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/commands/mock_ledger.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/pkg/metrics"
	"tablebook/internal/usecase/queries"
	"tablebook/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	opReserve    = "reserve"
	opCheckout   = "checkout"
	opDelete     = "delete"
	opPurgeIdemp = "purge_idempotency"
)

// ReserveInput carries the raw form fields; guests is parsed as a decimal integer.
type ReserveInput struct {
	Name   string
	Phone  string
	Guests string
}

type ReserveResult struct {
	Reservation    *queries.ReservationView
	IsReplayed     bool
	SeatsAvailable int
}

type ChangeResult struct {
	Reservation    *queries.ReservationView
	SeatsAvailable int
}

type LedgerCommands interface {
	Reserve(ctx context.Context, in ReserveInput, idempotencyKey *uuid.UUID) (*ReserveResult, error)
	Checkout(ctx context.Context, id uuid.UUID) (*ChangeResult, error)
	Delete(ctx context.Context, id uuid.UUID) (*ChangeResult, error)
	// CheckoutAt and DeleteAt address a reservation by its current list position.
	CheckoutAt(ctx context.Context, index int) (*ChangeResult, error)
	DeleteAt(ctx context.Context, index int) (*ChangeResult, error)
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int, error)
}

type ledgerCommandsImpl struct {
	uow            shared.UnitOfWork
	clock          clock.Clock
	metrics        *metrics.Metrics
	idempotencyTTL time.Duration
}

func NewLedgerCommands(
	uow shared.UnitOfWork,
	clock clock.Clock,
	metrics *metrics.Metrics,
	cfg config.Config,
) LedgerCommands {
	return &ledgerCommandsImpl{
		uow:            uow,
		clock:          clock,
		metrics:        metrics,
		idempotencyTTL: cfg.Ledger.IdempotencyTTL,
	}
}

func (c *ledgerCommandsImpl) Reserve(
	ctx context.Context,
	in ReserveInput,
	idempotencyKey *uuid.UUID,
) (*ReserveResult, error) {
	parsed, err := reservation.ParseInput(in.Name, in.Phone, in.Guests)
	if err != nil {
		c.observe(opReserve, err)
		return nil, err
	}
	requestHash := c.calculateRequestHash(parsed)

	var result ReserveResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if idempotencyKey != nil {
			existing, err := c.findExisting(ctx, tx, *idempotencyKey, requestHash)
			if err != nil {
				return err
			}
			if existing != nil {
				result = ReserveResult{
					Reservation:    queries.NewReservationView(existing.Result),
					IsReplayed:     true,
					SeatsAvailable: tx.Ledger().SeatsAvailable(),
				}
				return nil
			}
		}

		created, err := tx.Ledger().Reserve(parsed.Name, parsed.Phone, parsed.Guests)
		if err != nil {
			return err
		}
		snapshot := created.Snapshot()

		if idempotencyKey != nil {
			err := tx.Idempotency().Save(ctx, shared.IdempotencyRecord{
				Key:         *idempotencyKey,
				RequestHash: requestHash,
				Result:      snapshot,
				ExpiresAt:   c.clock.Now().Add(c.idempotencyTTL),
			})
			if err != nil {
				return errs.Mark(err, errs.ErrIdempotencyCheckFailed)
			}
		}

		result = ReserveResult{
			Reservation:    queries.NewReservationView(snapshot),
			SeatsAvailable: tx.Ledger().SeatsAvailable(),
		}
		return nil
	})
	if err != nil {
		c.observe(opReserve, err)
		return nil, err
	}

	if result.IsReplayed {
		c.metrics.ObserveOperation(opReserve, "replayed")
		slog.Info("reservation replayed",
			"reservation_id", result.Reservation.ID,
			"idempotency_key", idempotencyKey.String())
		return &result, nil
	}

	c.observe(opReserve, nil)
	c.refreshGauges(ctx)
	slog.Info("reservation created",
		"reservation_id", result.Reservation.ID,
		"guests", result.Reservation.Guests,
		"seats_available", result.SeatsAvailable)
	return &result, nil
}

// findExisting returns the stored outcome for key, or nil when the key is unused.
func (c *ledgerCommandsImpl) findExisting(
	ctx context.Context,
	tx shared.Tx,
	key uuid.UUID,
	requestHash string,
) (*shared.IdempotencyRecord, error) {
	existing, err := tx.Idempotency().Get(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, errs.Wrapf(errs.ErrDuplicateRequest, "idempotency key %s", key)
	}
	return existing, nil
}

func (c *ledgerCommandsImpl) Checkout(ctx context.Context, id uuid.UUID) (*ChangeResult, error) {
	return c.change(ctx, opCheckout, func(l *reservation.Ledger) (*reservation.Reservation, error) {
		return l.Checkout(id)
	})
}

func (c *ledgerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) (*ChangeResult, error) {
	return c.change(ctx, opDelete, func(l *reservation.Ledger) (*reservation.Reservation, error) {
		return l.Delete(id)
	})
}

func (c *ledgerCommandsImpl) CheckoutAt(ctx context.Context, index int) (*ChangeResult, error) {
	return c.change(ctx, opCheckout, func(l *reservation.Ledger) (*reservation.Reservation, error) {
		id, err := l.IDAt(index)
		if err != nil {
			return nil, err
		}
		return l.Checkout(id)
	})
}

func (c *ledgerCommandsImpl) DeleteAt(ctx context.Context, index int) (*ChangeResult, error) {
	return c.change(ctx, opDelete, func(l *reservation.Ledger) (*reservation.Reservation, error) {
		id, err := l.IDAt(index)
		if err != nil {
			return nil, err
		}
		return l.Delete(id)
	})
}

func (c *ledgerCommandsImpl) change(
	ctx context.Context,
	op string,
	apply func(l *reservation.Ledger) (*reservation.Reservation, error),
) (*ChangeResult, error) {
	var result ChangeResult
	err := c.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		changed, err := apply(tx.Ledger())
		if err != nil {
			return err
		}
		result = ChangeResult{
			Reservation:    queries.NewReservationView(changed.Snapshot()),
			SeatsAvailable: tx.Ledger().SeatsAvailable(),
		}
		return nil
	})
	c.observe(op, err)
	if err != nil {
		return nil, err
	}

	c.refreshGauges(ctx)
	slog.Info("reservation "+op,
		"reservation_id", result.Reservation.ID,
		"status", result.Reservation.Status,
		"seats_available", result.SeatsAvailable)
	return &result, nil
}

func (c *ledgerCommandsImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int, error) {
	var purged int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx)
		if err != nil {
			return err
		}
		purged = n
		return nil
	})
	c.observe(opPurgeIdemp, err)
	if err != nil {
		return 0, err
	}
	return purged, nil
}

func (c *ledgerCommandsImpl) refreshGauges(ctx context.Context) {
	err := c.uow.WithinReadOnly(ctx, func(_ context.Context, r shared.LedgerReader) error {
		c.metrics.ObserveLedger(r.MaxSeats(), r.SeatsAvailable(), r.SeatedReservations())
		return nil
	})
	if err != nil {
		slog.Warn("failed to refresh ledger gauges", "error", err.Error())
	}
}

func (c *ledgerCommandsImpl) observe(op string, err error) {
	c.metrics.ObserveOperation(op, ResultLabel(err))
	if err != nil && !isClientError(err) {
		slog.Error("ledger operation failed", "operation", op, "error", err.Error())
	}
}

// ResultLabel classifies an operation outcome for metrics.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errs.Is(err, reservation.ErrInvalidInput):
		return "invalid_input"
	case errs.Is(err, reservation.ErrInsufficientCapacity):
		return "insufficient_capacity"
	case errs.Is(err, reservation.ErrNotFound):
		return "not_found"
	case errs.Is(err, reservation.ErrAlreadyCheckedOut):
		return "already_checked_out"
	case errs.Is(err, errs.ErrDuplicateRequest):
		return "duplicate_request"
	case errs.IsAny(err, context.Canceled, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

func isClientError(err error) bool {
	return errs.IsAny(err,
		reservation.ErrInvalidInput,
		reservation.ErrInsufficientCapacity,
		reservation.ErrNotFound,
		reservation.ErrAlreadyCheckedOut,
		errs.ErrDuplicateRequest,
		context.Canceled,
		context.DeadlineExceeded,
	)
}

func (c *ledgerCommandsImpl) calculateRequestHash(in reservation.Input) string {
	data, _ := json.Marshal(struct {
		Name   string `json:"name"`
		Phone  string `json:"phone"`
		Guests int    `json:"guests"`
	}{in.Name.String(), in.Phone.String(), in.Guests.Value()})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
