package reservation

import (
	"iter"
	"slices"

	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

// Ledger tracks remaining seat capacity and the ordered list of reservations.
//
// Invariant: seatsAvailable == maxSeats - sum(guests of seated reservations),
// and 0 <= seatsAvailable <= maxSeats. Every method either applies its whole
// transition or returns an error with the ledger untouched.
//
// A Ledger is not safe for concurrent use; callers serialise access.
type Ledger struct {
	clock          clock.Clock
	maxSeats       int
	seatsAvailable int
	reservations   []*Reservation
}

func NewLedger(maxSeats int, clk clock.Clock) (*Ledger, error) {
	if maxSeats <= 0 {
		return nil, errs.Wrapf(ErrInvalidInput, "max seats must be positive, got %d", maxSeats)
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Ledger{
		clock:          clk,
		maxSeats:       maxSeats,
		seatsAvailable: maxSeats,
	}, nil
}

func (l *Ledger) Reserve(name CustomerName, phone Phone, guests GuestCount) (*Reservation, error) {
	if name.IsZero() || phone.IsZero() {
		return nil, errs.Wrap(ErrInvalidInput, "name and phone are required")
	}
	if guests.Value() <= 0 {
		return nil, errs.Wrapf(ErrInvalidInput, "guest count must be positive, got %d", guests.Value())
	}
	if guests.Value() > l.seatsAvailable {
		return nil, errs.Wrapf(ErrInsufficientCapacity, "requested %d seats, %d available", guests.Value(), l.seatsAvailable)
	}

	r := newReservation(name, phone, guests, l.clock.Now())
	l.reservations = append(l.reservations, r)
	l.seatsAvailable -= guests.Value()
	return r, nil
}

func (l *Ledger) Checkout(id uuid.UUID) (*Reservation, error) {
	i := l.indexOf(id)
	if i < 0 {
		return nil, errs.Wrapf(ErrNotFound, "reservation %s", id)
	}
	r := l.reservations[i]
	if err := r.checkOut(l.clock.Now()); err != nil {
		return nil, errs.Wrapf(err, "reservation %s", id)
	}
	l.seatsAvailable += r.guests.Value()
	return r, nil
}

// Delete removes a reservation in either phase. Seats are restored only when
// the party is still seated; checkout already returned them otherwise.
func (l *Ledger) Delete(id uuid.UUID) (*Reservation, error) {
	i := l.indexOf(id)
	if i < 0 {
		return nil, errs.Wrapf(ErrNotFound, "reservation %s", id)
	}
	r := l.reservations[i]
	if r.IsSeated() {
		l.seatsAvailable += r.guests.Value()
	}
	l.reservations = slices.Delete(l.reservations, i, i+1)
	return r, nil
}

// Search yields reservations whose name contains query, case-insensitively,
// in insertion order. The sequence reads the ledger each time it is ranged over.
func (l *Ledger) Search(query string) iter.Seq[*Reservation] {
	return func(yield func(*Reservation) bool) {
		for _, r := range l.reservations {
			if !r.name.Matches(query) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

func (l *Ledger) All() iter.Seq[*Reservation] {
	return l.Search("")
}

func (l *Ledger) Get(id uuid.UUID) (*Reservation, error) {
	i := l.indexOf(id)
	if i < 0 {
		return nil, errs.Wrapf(ErrNotFound, "reservation %s", id)
	}
	return l.reservations[i], nil
}

// IDAt resolves a position in insertion order to a stable id.
// Positions shift after Delete; do not cache them across mutations.
func (l *Ledger) IDAt(index int) (uuid.UUID, error) {
	if index < 0 || index >= len(l.reservations) {
		return uuid.Nil, errs.Wrapf(ErrNotFound, "index %d out of range [0,%d)", index, len(l.reservations))
	}
	return l.reservations[index].id, nil
}

func (l *Ledger) Len() int            { return len(l.reservations) }
func (l *Ledger) MaxSeats() int       { return l.maxSeats }
func (l *Ledger) SeatsAvailable() int { return l.seatsAvailable }

func (l *Ledger) SeatedGuests() int {
	total := 0
	for _, r := range l.reservations {
		if r.IsSeated() {
			total += r.guests.Value()
		}
	}
	return total
}

func (l *Ledger) SeatedReservations() int {
	n := 0
	for _, r := range l.reservations {
		if r.IsSeated() {
			n++
		}
	}
	return n
}

// Audit recomputes the capacity invariant from the reservation list.
func (l *Ledger) Audit() error {
	if l.seatsAvailable < 0 || l.seatsAvailable > l.maxSeats {
		return errs.Newf("seats available %d outside [0,%d]", l.seatsAvailable, l.maxSeats)
	}
	if want := l.maxSeats - l.SeatedGuests(); want != l.seatsAvailable {
		return errs.Newf("seats available %d, expected %d", l.seatsAvailable, want)
	}
	return nil
}

func (l *Ledger) Snapshot() Snapshot {
	rs := make([]ReservationSnapshot, len(l.reservations))
	for i, r := range l.reservations {
		rs[i] = r.Snapshot()
	}
	return Snapshot{
		MaxSeats:       l.maxSeats,
		SeatsAvailable: l.seatsAvailable,
		Reservations:   rs,
	}
}

// Restore replaces the ledger state with s. Capacity is fixed for the ledger's
// lifetime, so a snapshot taken from a ledger of a different size is rejected.
func (l *Ledger) Restore(s Snapshot) error {
	if s.MaxSeats != l.maxSeats {
		return errs.Wrapf(ErrInvalidInput, "snapshot max seats %d, ledger has %d", s.MaxSeats, l.maxSeats)
	}
	rs := make([]*Reservation, 0, len(s.Reservations))
	for _, rsnap := range s.Reservations {
		r, err := reservationFromSnapshot(rsnap)
		if err != nil {
			return errs.Wrapf(err, "restore reservation %s", rsnap.ID)
		}
		rs = append(rs, r)
	}
	restored := &Ledger{
		clock:          l.clock,
		maxSeats:       l.maxSeats,
		seatsAvailable: s.SeatsAvailable,
		reservations:   rs,
	}
	if err := restored.Audit(); err != nil {
		return errs.Wrap(err, "restore")
	}
	*l = *restored
	return nil
}

func (l *Ledger) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(l.reservations, func(r *Reservation) bool {
		return r.id == id
	})
}
