package reservation

import (
	"time"

	"tablebook/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Reservation is one party's booking. Guests and check-in time never change;
// check-out time is set at most once.
type Reservation struct {
	id           uuid.UUID
	name         CustomerName
	phone        Phone
	guests       GuestCount
	checkInTime  time.Time
	checkOutTime *time.Time
}

func newReservation(name CustomerName, phone Phone, guests GuestCount, now time.Time) *Reservation {
	return &Reservation{
		id:          uuid.New(),
		name:        name,
		phone:       phone,
		guests:      guests,
		checkInTime: now,
	}
}

func ReconstructReservation(
	id uuid.UUID,
	name CustomerName,
	phone Phone,
	guests GuestCount,
	checkInTime time.Time,
	checkOutTime *time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		name:         name,
		phone:        phone,
		guests:       guests,
		checkInTime:  checkInTime,
		checkOutTime: ptr.Clone(checkOutTime),
	}
}

func (r *Reservation) IsSeated() bool {
	return r.checkOutTime == nil
}

func (r *Reservation) Status() Status {
	if r.IsSeated() {
		return StatusSeated
	}
	return StatusCheckedOut
}

func (r *Reservation) checkOut(now time.Time) error {
	if !r.IsSeated() {
		return ErrAlreadyCheckedOut
	}
	r.checkOutTime = &now
	return nil
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) Name() CustomerName     { return r.name }
func (r *Reservation) Phone() Phone           { return r.phone }
func (r *Reservation) Guests() GuestCount     { return r.guests }
func (r *Reservation) CheckInTime() time.Time { return r.checkInTime }

func (r *Reservation) CheckOutTime() *time.Time {
	return ptr.Clone(r.checkOutTime)
}
