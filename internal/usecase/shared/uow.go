package shared

import (
	"context"
	"iter"

	"tablebook/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: exclusive access to the ledger; state is rolled back when fn fails
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: shared access for consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, r LedgerReader) error) error
}

type Tx interface {
	Ledger() *reservation.Ledger
	Idempotency() IdempotencyRepository
}

// LedgerReader is the read-only surface of the ledger.
type LedgerReader interface {
	Get(id uuid.UUID) (*reservation.Reservation, error)
	Search(query string) iter.Seq[*reservation.Reservation]
	MaxSeats() int
	SeatsAvailable() int
	SeatedGuests() int
	SeatedReservations() int
	Len() int
}

type IdempotencyRepository interface {
	Get(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
	Save(ctx context.Context, rec IdempotencyRecord) error
	DeleteExpired(ctx context.Context) (int, error)
}
