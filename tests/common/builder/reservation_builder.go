//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	"tablebook/internal/domain/reservation"
	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/pkg/ptr"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	Name         string
	Phone        string
	Guests       int
	CheckInTime  time.Time
	CheckOutTime *time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		Name:        "Ana Lima",
		Phone:       "555-0100",
		Guests:      4,
		CheckInTime: time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) CheckedOutAfter(d time.Duration) *ReservationBuilder {
	r.CheckOutTime = ptr.Of(r.CheckInTime.Add(d))
	return r
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Name:   r.Name,
		Phone:  r.Phone,
		Guests: reqdto.GuestsField(strconv.Itoa(r.Guests)),
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	status := reservation.StatusSeated
	if r.CheckOutTime != nil {
		status = reservation.StatusCheckedOut
	}
	return &queries.ReservationView{
		ID:           r.ID,
		Name:         r.Name,
		Phone:        r.Phone,
		Guests:       r.Guests,
		Status:       status.String(),
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
	}
}
