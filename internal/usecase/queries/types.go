package queries

import (
	"time"

	"tablebook/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationView is the read model of one reservation.
type ReservationView struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Guests       int        `json:"guests"`
	Status       string     `json:"status"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
}

func NewReservationView(s reservation.ReservationSnapshot) *ReservationView {
	return &ReservationView{
		ID:           s.ID,
		Name:         s.Name,
		Phone:        s.Phone,
		Guests:       s.Guests,
		Status:       s.Status().String(),
		CheckInTime:  s.CheckInTime,
		CheckOutTime: s.CheckOutTime,
	}
}

// LedgerSummary is the capacity header shown above the reservation list.
type LedgerSummary struct {
	MaxSeats           int `json:"max_seats"`
	SeatsAvailable     int `json:"seats_available"`
	SeatedGuests       int `json:"seated_guests"`
	SeatedReservations int `json:"seated_reservations"`
	TotalReservations  int `json:"total_reservations"`
}

// LedgerView is a summary and the matching reservations read under one lock.
type LedgerView struct {
	Summary      LedgerSummary
	Reservations []*ReservationView
}

type ReservationPage struct {
	Items []*ReservationView
	Next  *Cursor
}
