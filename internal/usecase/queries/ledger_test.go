//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra/repository"
	"tablebook/internal/infra/uow"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, names ...string) (queries.LedgerQueries, *reservation.Ledger) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC))
	ledger, err := reservation.NewLedger(50, clk)
	require.NoError(t, err)
	for _, n := range names {
		in, err := reservation.ParseInput(n, "555-0100", "2")
		require.NoError(t, err)
		_, err = ledger.Reserve(in.Name, in.Phone, in.Guests)
		require.NoError(t, err)
	}
	return queries.NewLedgerQueries(uow.NewMemoryUoW(ledger, repository.NewIdempotencyRepository(clk))), ledger
}

func viewNames(views []*queries.ReservationView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Name)
	}
	return out
}

func TestLedgerQueries_Summary(t *testing.T) {
	q, ledger := seed(t, "Ana", "Bo", "Cy")
	id, err := ledger.IDAt(1)
	require.NoError(t, err)
	_, err = ledger.Checkout(id)
	require.NoError(t, err)

	got, err := q.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &queries.LedgerSummary{
		MaxSeats:           50,
		SeatsAvailable:     46,
		SeatedGuests:       4,
		SeatedReservations: 2,
		TotalReservations:  3,
	}, got)
}

func TestLedgerQueries_Ledger(t *testing.T) {
	q, _ := seed(t, "Anna", "Bob", "Hannah", "Zoe")

	t.Run("filtered, insertion order", func(t *testing.T) {
		view, err := q.Ledger(context.Background(), "AN")

		require.NoError(t, err)
		assert.Equal(t, []string{"Anna", "Hannah"}, viewNames(view.Reservations))
		assert.Equal(t, 4, view.Summary.TotalReservations)
	})

	t.Run("empty query lists everything", func(t *testing.T) {
		view, err := q.Ledger(context.Background(), "")

		require.NoError(t, err)
		assert.Len(t, view.Reservations, 4)
	})

	t.Run("no match yields an empty list", func(t *testing.T) {
		view, err := q.Ledger(context.Background(), "xyz")

		require.NoError(t, err)
		assert.NotNil(t, view.Reservations)
		assert.Empty(t, view.Reservations)
	})
}

func TestLedgerQueries_Search(t *testing.T) {
	ctx := context.Background()
	q, ledger := seed(t, "A1", "A2", "A3", "A4", "A5")

	t.Run("pages with cursor", func(t *testing.T) {
		first, err := q.Search(ctx, "a", nil, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"A1", "A2"}, viewNames(first.Items))
		require.NotNil(t, first.Next)

		second, err := q.Search(ctx, "a", first.Next, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"A3", "A4"}, viewNames(second.Items))

		third, err := q.Search(ctx, "a", second.Next, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"A5"}, viewNames(third.Items))
		assert.Nil(t, third.Next)
	})

	t.Run("cursor survives deleting an earlier row", func(t *testing.T) {
		first, err := q.Search(ctx, "", nil, 2)
		require.NoError(t, err)
		id, err := ledger.IDAt(0)
		require.NoError(t, err)
		_, err = ledger.Delete(id)
		require.NoError(t, err)

		next, err := q.Search(ctx, "", first.Next, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"A3", "A4"}, viewNames(next.Items))
	})

	t.Run("error: malformed cursor", func(t *testing.T) {
		_, err := q.Search(ctx, "", &queries.Cursor{After: "not-a-cursor"}, 2)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
		assert.ErrorIs(t, err, reservation.ErrInvalidInput)
	})

	t.Run("error: cursor from a different query", func(t *testing.T) {
		page, err := q.Search(ctx, "", nil, 1)
		require.NoError(t, err)
		require.NotNil(t, page.Next)

		_, err = q.Search(ctx, "no such guest", page.Next, 2)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
		assert.ErrorIs(t, err, reservation.ErrInvalidInput)
	})

	t.Run("error: cursor row deleted", func(t *testing.T) {
		_, err := q.Search(ctx, "", &queries.Cursor{After: queries.EncodeAfterCursor(uuid.New())}, 2)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestLedgerQueries_GetByID(t *testing.T) {
	q, ledger := seed(t, "Ana")
	id, err := ledger.IDAt(0)
	require.NoError(t, err)

	got, err := q.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "seated", got.Status)

	_, err = q.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, reservation.ErrNotFound)
}

func TestCursor(t *testing.T) {
	id := uuid.New()
	got, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = queries.DecodeAfterCursor("")
	assert.ErrorIs(t, err, queries.ErrInvalidCursor)

	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
	assert.Equal(t, 7, queries.ValidateLimit(7))
}
