package queries

import (
	"encoding/base64"
	"strings"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Wrap(reservation.ErrInvalidInput, "invalid cursor")

// Cursor points just past a reservation in insertion order. Reservation ids
// are stable, so a cursor survives deletions of other rows.
type Cursor struct {
	After string `json:"after,omitempty"`
}

func EncodeAfterCursor(id uuid.UUID) string {
	return base64.URLEncoding.EncodeToString([]byte(CursorVersionV1 + ":" + id.String()))
}

func DecodeAfterCursor(cursor string) (uuid.UUID, error) {
	if cursor == "" {
		return uuid.Nil, errs.Wrap(ErrInvalidCursor, "cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return uuid.Nil, errs.Wrap(ErrInvalidCursor, "cursor is not base64url")
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return uuid.Nil, errs.Wrap(ErrInvalidCursor, "unsupported cursor version")
	}
	id, err := uuid.Parse(payload)
	if err != nil {
		return uuid.Nil, errs.Wrap(ErrInvalidCursor, "cursor id is not a uuid")
	}
	return id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
