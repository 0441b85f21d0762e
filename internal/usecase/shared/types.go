package shared

import (
	"time"

	"tablebook/internal/domain/reservation"

	"github.com/google/uuid"
)

// IdempotencyRecord remembers the outcome of a reserve request so a retry with
// the same key replays it instead of taking seats twice.
type IdempotencyRecord struct {
	Key         uuid.UUID
	RequestHash string
	Result      reservation.ReservationSnapshot
	ExpiresAt   time.Time
}
