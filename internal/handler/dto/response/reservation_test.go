//go:build unit

package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"tablebook/internal/handler/dto/response"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenter_Reservation(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Display.TimeZone = "EST"
	cfg.Display.TimeZoneOffset = -5 * 60 * 60
	p := response.NewPresenter(cfg)

	checkIn := time.Date(2025, 3, 14, 19, 5, 9, 0, time.UTC)
	id := uuid.New()

	t.Run("seated", func(t *testing.T) {
		got, err := p.Reservation(&queries.ReservationView{
			ID: id, Name: "Ana", Phone: "555", Guests: 4, Status: "seated", CheckInTime: checkIn,
		})

		require.NoError(t, err)
		assert.Equal(t, id.String(), got.ID)
		assert.Equal(t, "Ana", got.Name)
		assert.Equal(t, 4, got.Guests)
		assert.Equal(t, "14:05:09", got.CheckInDisplay)
		assert.Equal(t, response.NotCheckedOut, got.CheckOutDisplay)

		raw, err := json.Marshal(got)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"checkOutTime":null`)
	})

	t.Run("checked out", func(t *testing.T) {
		checkOut := checkIn.Add(95 * time.Minute)
		got, err := p.Reservation(&queries.ReservationView{
			ID: id, Name: "Ana", Phone: "555", Guests: 4, Status: "checked_out",
			CheckInTime: checkIn, CheckOutTime: &checkOut,
		})

		require.NoError(t, err)
		require.NotNil(t, got.CheckOutTime)
		assert.True(t, checkOut.Equal(*got.CheckOutTime))
		assert.Equal(t, "15:40:09", got.CheckOutDisplay)
	})
}

func TestPresenter_Ledger(t *testing.T) {
	p := response.NewPresenter(config.NewTestConfig())

	got, err := p.Ledger(&queries.LedgerView{
		Summary: queries.LedgerSummary{MaxSeats: 50, SeatsAvailable: 46, SeatedGuests: 4, SeatedReservations: 1, TotalReservations: 1},
		Reservations: []*queries.ReservationView{
			{ID: uuid.New(), Name: "Ana", Phone: "555", Guests: 4, Status: "seated"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, &response.LedgerSummaryResponse{
		MaxSeats: 50, SeatsAvailable: 46, SeatedGuests: 4, SeatedReservations: 1, TotalReservations: 1,
	}, got.Summary)
	assert.Len(t, got.Reservations, 1)
}

func TestPresenter_Page(t *testing.T) {
	p := response.NewPresenter(config.NewTestConfig())

	empty, err := p.Page(&queries.ReservationPage{})
	require.NoError(t, err)
	assert.NotNil(t, empty.Items)
	assert.Nil(t, empty.NextCursor)

	next, err := p.Page(&queries.ReservationPage{Next: &queries.Cursor{After: "abc"}})
	require.NoError(t, err)
	require.NotNil(t, next.NextCursor)
	assert.Equal(t, "abc", *next.NextCursor)
}
