//go:build unit

package reservation_test

import (
	"errors"
	"iter"
	"slices"
	"testing"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

func newLedger(t *testing.T, maxSeats int) (*reservation.Ledger, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(baseTime)
	l, err := reservation.NewLedger(maxSeats, clk)
	require.NoError(t, err)
	return l, clk
}

func mustInput(t *testing.T, name, phone, guests string) reservation.Input {
	t.Helper()
	in, err := reservation.ParseInput(name, phone, guests)
	require.NoError(t, err)
	return in
}

func reserve(t *testing.T, l *reservation.Ledger, name string, guests int) *reservation.Reservation {
	t.Helper()
	g, err := reservation.NewGuestCount(guests)
	require.NoError(t, err)
	in := mustInput(t, name, "555-0000", "1")
	r, err := l.Reserve(in.Name, in.Phone, g)
	require.NoError(t, err)
	return r
}

func names(seq iter.Seq[*reservation.Reservation]) []string {
	var out []string
	for r := range seq {
		out = append(out, r.Name().String())
	}
	return out
}

func TestNewLedger(t *testing.T) {
	t.Run("starts with full capacity", func(t *testing.T) {
		l, _ := newLedger(t, 50)
		assert.Equal(t, 50, l.MaxSeats())
		assert.Equal(t, 50, l.SeatsAvailable())
		assert.Equal(t, 0, l.Len())
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		for _, n := range []int{0, -1} {
			_, err := reservation.NewLedger(n, nil)
			assert.ErrorIs(t, err, reservation.ErrInvalidInput)
		}
	})
}

func TestLedger_Reserve(t *testing.T) {
	t.Run("success: appends and consumes seats", func(t *testing.T) {
		l, _ := newLedger(t, 50)
		in := mustInput(t, "Ana", "555-1", "4")

		r, err := l.Reserve(in.Name, in.Phone, in.Guests)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "Ana", r.Name().String())
		assert.Equal(t, "555-1", r.Phone().String())
		assert.Equal(t, 4, r.Guests().Value())
		assert.Equal(t, baseTime, r.CheckInTime())
		assert.Nil(t, r.CheckOutTime())
		assert.True(t, r.IsSeated())
		assert.Equal(t, 46, l.SeatsAvailable())
		assert.Equal(t, 1, l.Len())
	})

	t.Run("success: exactly the remaining seats", func(t *testing.T) {
		l, _ := newLedger(t, 6)
		reserve(t, l, "Ana", 6)
		assert.Equal(t, 0, l.SeatsAvailable())
	})

	t.Run("error: insufficient capacity leaves ledger unchanged", func(t *testing.T) {
		l, _ := newLedger(t, 50)
		reserve(t, l, "Ana", 4)
		before := l.Snapshot()

		in := mustInput(t, "Bo", "555-2", "47")
		_, err := l.Reserve(in.Name, in.Phone, in.Guests)

		assert.ErrorIs(t, err, reservation.ErrInsufficientCapacity)
		if diff := cmp.Diff(before, l.Snapshot()); diff != "" {
			t.Errorf("ledger changed after failed reserve (-before +after):\n%s", diff)
		}
	})

	t.Run("error: zero-value typed inputs are rejected", func(t *testing.T) {
		l, _ := newLedger(t, 50)
		in := mustInput(t, "Ana", "555-1", "2")

		_, err := l.Reserve(reservation.CustomerName{}, in.Phone, in.Guests)
		assert.ErrorIs(t, err, reservation.ErrInvalidInput)

		_, err = l.Reserve(in.Name, reservation.Phone{}, in.Guests)
		assert.ErrorIs(t, err, reservation.ErrInvalidInput)

		_, err = l.Reserve(in.Name, in.Phone, reservation.GuestCount{})
		assert.ErrorIs(t, err, reservation.ErrInvalidInput)

		assert.Equal(t, 50, l.SeatsAvailable())
		assert.Equal(t, 0, l.Len())
	})
}

func TestLedger_Checkout(t *testing.T) {
	t.Run("success: restores seats and stamps checkout time", func(t *testing.T) {
		l, clk := newLedger(t, 50)
		r := reserve(t, l, "Ana", 4)
		clk.Advance(90 * time.Minute)

		out, err := l.Checkout(r.ID())
		require.NoError(t, err)

		require.NotNil(t, out.CheckOutTime())
		assert.Equal(t, baseTime.Add(90*time.Minute), *out.CheckOutTime())
		assert.Equal(t, reservation.StatusCheckedOut, out.Status())
		assert.Equal(t, 50, l.SeatsAvailable())
	})

	t.Run("error: second checkout is rejected and seats change once", func(t *testing.T) {
		l, clk := newLedger(t, 50)
		r := reserve(t, l, "Ana", 4)

		_, err := l.Checkout(r.ID())
		require.NoError(t, err)
		first := *r.CheckOutTime()

		clk.Advance(time.Hour)
		_, err = l.Checkout(r.ID())

		assert.ErrorIs(t, err, reservation.ErrAlreadyCheckedOut)
		assert.Equal(t, 50, l.SeatsAvailable())
		assert.Equal(t, first, *r.CheckOutTime())
	})

	t.Run("error: unknown id", func(t *testing.T) {
		l, _ := newLedger(t, 50)
		reserve(t, l, "Ana", 4)

		_, err := l.Checkout(uuid.New())

		assert.ErrorIs(t, err, reservation.ErrNotFound)
		assert.Equal(t, 46, l.SeatsAvailable())
	})
}

func TestLedger_Delete(t *testing.T) {
	t.Run("seated reservation returns its seats", func(t *testing.T) {
		l, _ := newLedger(t, 50)
		a := reserve(t, l, "Ana", 4)
		reserve(t, l, "Bo", 3)

		_, err := l.Delete(a.ID())
		require.NoError(t, err)

		assert.Equal(t, 47, l.SeatsAvailable())
		assert.Equal(t, []string{"Bo"}, names(l.All()))
	})

	t.Run("checked-out reservation leaves capacity untouched", func(t *testing.T) {
		l, _ := newLedger(t, 50)
		a := reserve(t, l, "Ana", 4)
		_, err := l.Checkout(a.ID())
		require.NoError(t, err)

		_, err = l.Delete(a.ID())
		require.NoError(t, err)

		assert.Equal(t, 50, l.SeatsAvailable())
		assert.Equal(t, 0, l.Len())
	})

	t.Run("later positions shift down", func(t *testing.T) {
		l, _ := newLedger(t, 50)
		reserve(t, l, "Ana", 1)
		b := reserve(t, l, "Bo", 1)
		c := reserve(t, l, "Cy", 1)

		_, err := l.Delete(b.ID())
		require.NoError(t, err)

		id, err := l.IDAt(1)
		require.NoError(t, err)
		assert.Equal(t, c.ID(), id)
	})

	t.Run("error: unknown id", func(t *testing.T) {
		l, _ := newLedger(t, 50)
		_, err := l.Delete(uuid.New())
		assert.ErrorIs(t, err, reservation.ErrNotFound)
	})
}

func TestLedger_IDAt(t *testing.T) {
	l, _ := newLedger(t, 50)
	a := reserve(t, l, "Ana", 1)

	id, err := l.IDAt(0)
	require.NoError(t, err)
	assert.Equal(t, a.ID(), id)

	for _, i := range []int{-1, 1, 10} {
		_, err := l.IDAt(i)
		assert.ErrorIs(t, err, reservation.ErrNotFound, "index %d", i)
	}
}

func TestLedger_Search(t *testing.T) {
	l, _ := newLedger(t, 50)
	reserve(t, l, "Anabel", 1)
	reserve(t, l, "Bo", 1)
	reserve(t, l, "JOANNA", 1)

	testCases := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"Anabel", "Bo", "JOANNA"}},
		{query: "an", want: []string{"Anabel", "JOANNA"}},
		{query: "AN", want: []string{"Anabel", "JOANNA"}},
		{query: "bo", want: []string{"Bo"}},
		{query: "zed", want: nil},
	}

	for _, tc := range testCases {
		t.Run("query "+tc.query, func(t *testing.T) {
			assert.Equal(t, tc.want, names(l.Search(tc.query)))
		})
	}

	t.Run("sequence reflects state at iteration time", func(t *testing.T) {
		seq := l.Search("bo")
		reserve(t, l, "Bonnie", 1)
		assert.Equal(t, []string{"Bo", "Bonnie"}, names(seq))
		assert.Equal(t, []string{"Bo", "Bonnie"}, names(seq))
	})

	t.Run("early stop", func(t *testing.T) {
		got := slices.Collect(l.Search(""))
		require.NotEmpty(t, got)
		for r := range l.Search("") {
			assert.Equal(t, got[0].ID(), r.ID())
			break
		}
	})

	t.Run("does not mutate", func(t *testing.T) {
		before := l.Snapshot()
		_ = slices.Collect(l.Search("a"))
		assert.Empty(t, cmp.Diff(before, l.Snapshot()))
	})
}

func TestLedger_CapacityInvariant(t *testing.T) {
	l, _ := newLedger(t, 20)
	var ids []uuid.UUID
	for i, g := range []int{3, 5, 2, 7} {
		r := reserve(t, l, "Guest", g)
		ids = append(ids, r.ID())
		require.NoError(t, l.Audit(), "after reserve %d", i)
		assert.Equal(t, l.MaxSeats(), l.SeatsAvailable()+l.SeatedGuests())
	}

	_, err := l.Checkout(ids[1])
	require.NoError(t, err)
	require.NoError(t, l.Audit())

	_, err = l.Delete(ids[1])
	require.NoError(t, err)
	_, err = l.Delete(ids[0])
	require.NoError(t, err)
	require.NoError(t, l.Audit())

	assert.Equal(t, 20-2-7, l.SeatsAvailable())
	assert.Equal(t, 2, l.SeatedReservations())
}

func TestLedger_SnapshotRestore(t *testing.T) {
	l, _ := newLedger(t, 10)
	a := reserve(t, l, "Ana", 4)
	saved := l.Snapshot()

	reserve(t, l, "Bo", 3)
	_, err := l.Checkout(a.ID())
	require.NoError(t, err)

	require.NoError(t, l.Restore(saved))
	if diff := cmp.Diff(saved, l.Snapshot()); diff != "" {
		t.Errorf("restored ledger differs (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6, l.SeatsAvailable())

	t.Run("rejects snapshot from a ledger of another size", func(t *testing.T) {
		other, _ := newLedger(t, 11)
		err := l.Restore(other.Snapshot())
		assert.ErrorIs(t, err, reservation.ErrInvalidInput)
	})

	t.Run("rejects inconsistent snapshot", func(t *testing.T) {
		bad := l.Snapshot()
		bad.SeatsAvailable = 10
		assert.Error(t, l.Restore(bad))
		assert.Equal(t, 6, l.SeatsAvailable())
	})
}

// Scenario from the product walkthrough: 50 seats, one party in and out.
func TestLedger_Walkthrough(t *testing.T) {
	l, _ := newLedger(t, 50)

	ana := mustInput(t, "Ana", "555-1", "4")
	r, err := l.Reserve(ana.Name, ana.Phone, ana.Guests)
	require.NoError(t, err)
	assert.Equal(t, 46, l.SeatsAvailable())

	bo := mustInput(t, "Bo", "555-2", "50")
	_, err = l.Reserve(bo.Name, bo.Phone, bo.Guests)
	assert.True(t, errors.Is(err, reservation.ErrInsufficientCapacity))
	assert.Equal(t, 46, l.SeatsAvailable())

	id, err := l.IDAt(0)
	require.NoError(t, err)
	require.Equal(t, r.ID(), id)

	_, err = l.Checkout(id)
	require.NoError(t, err)
	assert.Equal(t, 50, l.SeatsAvailable())

	_, err = l.Delete(id)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 50, l.SeatsAvailable())
}
