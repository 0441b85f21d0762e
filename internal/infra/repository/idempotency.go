package repository

import (
	"context"
	"maps"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/usecase/shared"

	"github.com/google/uuid"
)

// IdempotencyRepository keeps reserve outcomes in memory until they expire.
// It is not synchronised itself; callers reach it through the unit of work.
type IdempotencyRepository struct {
	clock   clock.Clock
	records map[uuid.UUID]shared.IdempotencyRecord
}

func NewIdempotencyRepository(clk clock.Clock) *IdempotencyRepository {
	return &IdempotencyRepository{
		clock:   clk,
		records: make(map[uuid.UUID]shared.IdempotencyRecord),
	}
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindCanceled, "get idempotency key", err)
	}
	rec, ok := r.records[key]
	if !ok || r.expired(rec) {
		return nil, infra.NewRepoErr(infra.KindNotFound, "idempotency key not found")
	}
	return &rec, nil
}

func (r *IdempotencyRepository) Save(ctx context.Context, rec shared.IdempotencyRecord) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(infra.KindCanceled, "save idempotency key", err)
	}
	if existing, ok := r.records[rec.Key]; ok && !r.expired(existing) {
		return infra.NewRepoErr(infra.KindDuplicateKey, "idempotency key already recorded")
	}
	r.records[rec.Key] = rec
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, infra.WrapRepoErr(infra.KindCanceled, "delete expired idempotency keys", err)
	}
	count := 0
	for key, rec := range r.records {
		if r.expired(rec) {
			delete(r.records, key)
			count++
		}
	}
	return count, nil
}

// Snapshot copies the stored records so a failed unit of work can put them back.
func (r *IdempotencyRepository) Snapshot() map[uuid.UUID]shared.IdempotencyRecord {
	return maps.Clone(r.records)
}

func (r *IdempotencyRepository) Restore(records map[uuid.UUID]shared.IdempotencyRecord) {
	if records == nil {
		records = make(map[uuid.UUID]shared.IdempotencyRecord)
	}
	r.records = records
}

func (r *IdempotencyRepository) Len() int {
	return len(r.records)
}

func (r *IdempotencyRepository) expired(rec shared.IdempotencyRecord) bool {
	return !r.clock.Now().Before(rec.ExpiresAt)
}
