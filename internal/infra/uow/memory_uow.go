package uow

import (
	"context"
	"log/slog"
	"sync"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra/repository"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/shared"
)

// MemoryUoW guards the process-wide ledger and idempotency records with one
// lock. Writers run one at a time against snapshots taken on entry; a failing
// writer is rolled back to them.
type MemoryUoW struct {
	mu          sync.RWMutex
	ledger      *reservation.Ledger
	idempotency *repository.IdempotencyRepository
}

func NewMemoryUoW(ledger *reservation.Ledger, idempotency *repository.IdempotencyRepository) shared.UnitOfWork {
	return &MemoryUoW{
		ledger:      ledger,
		idempotency: idempotency,
	}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	before := u.ledger.Snapshot()
	beforeKeys := u.idempotency.Snapshot()
	tx := &memTx{uow: u}

	err := fn(ctx, tx)
	if err == nil {
		if auditErr := u.ledger.Audit(); auditErr != nil {
			slog.Error("ledger audit failed after commit", "error", auditErr.Error())
			err = errs.Mark(auditErr, errs.ErrInvariantViolated)
		}
	}
	if err == nil {
		return nil
	}

	u.idempotency.Restore(beforeKeys)
	if restoreErr := u.ledger.Restore(before); restoreErr != nil {
		slog.Error("ledger rollback failed", "error", restoreErr.Error(), "cause", err.Error())
		return errs.Mark(restoreErr, errs.ErrRollbackFailed)
	}
	return err
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, r shared.LedgerReader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	return fn(ctx, u.ledger)
}

type memTx struct {
	uow *MemoryUoW
}

func (t *memTx) Ledger() *reservation.Ledger {
	return t.uow.ledger
}

func (t *memTx) Idempotency() shared.IdempotencyRepository {
	return t.uow.idempotency
}
