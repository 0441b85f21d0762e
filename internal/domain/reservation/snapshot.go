package reservation

import (
	"time"

	"github.com/google/uuid"
)

// ReservationSnapshot is a detached copy of a Reservation, safe to hand to readers.
type ReservationSnapshot struct {
	ID           uuid.UUID
	Name         string
	Phone        string
	Guests       int
	CheckInTime  time.Time
	CheckOutTime *time.Time
}

func (s ReservationSnapshot) Status() Status {
	if s.CheckOutTime == nil {
		return StatusSeated
	}
	return StatusCheckedOut
}

type Snapshot struct {
	MaxSeats       int
	SeatsAvailable int
	Reservations   []ReservationSnapshot
}

func (r *Reservation) Snapshot() ReservationSnapshot {
	return ReservationSnapshot{
		ID:           r.id,
		Name:         r.name.String(),
		Phone:        r.phone.String(),
		Guests:       r.guests.Value(),
		CheckInTime:  r.checkInTime,
		CheckOutTime: r.CheckOutTime(),
	}
}

func reservationFromSnapshot(s ReservationSnapshot) (*Reservation, error) {
	name, err := NewCustomerName(s.Name)
	if err != nil {
		return nil, err
	}
	phone, err := NewPhone(s.Phone)
	if err != nil {
		return nil, err
	}
	guests, err := NewGuestCount(s.Guests)
	if err != nil {
		return nil, err
	}
	return ReconstructReservation(s.ID, name, phone, guests, s.CheckInTime, s.CheckOutTime), nil
}
