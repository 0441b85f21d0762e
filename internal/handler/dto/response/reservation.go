package response

import (
	"time"

	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const NotCheckedOut = "Not Checked Out"

type ReservationResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Guests          int        `json:"guests"`
	Status          string     `json:"status"`
	CheckInTime     time.Time  `json:"checkInTime"`
	CheckOutTime    *time.Time `json:"checkOutTime"`
	CheckInDisplay  string     `json:"checkInDisplay" copier:"-"`
	CheckOutDisplay string     `json:"checkOutDisplay" copier:"-"`
}

type ReserveResponse struct {
	Reservation    *ReservationResponse `json:"reservation"`
	SeatsAvailable int                  `json:"seatsAvailable"`
	Replayed       bool                 `json:"replayed"`
}

type ChangeResponse struct {
	Reservation    *ReservationResponse `json:"reservation"`
	SeatsAvailable int                  `json:"seatsAvailable"`
}

type LedgerSummaryResponse struct {
	MaxSeats           int `json:"maxSeats"`
	SeatsAvailable     int `json:"seatsAvailable"`
	SeatedGuests       int `json:"seatedGuests"`
	SeatedReservations int `json:"seatedReservations"`
	TotalReservations  int `json:"totalReservations"`
}

type LedgerResponse struct {
	Summary      *LedgerSummaryResponse `json:"summary"`
	Reservations []*ReservationResponse `json:"reservations"`
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor *string                `json:"nextCursor"`
}

var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

// Presenter renders read models with check-in/check-out strings in the display zone.
type Presenter struct {
	location *time.Location
	layout   string
}

func NewPresenter(cfg config.Config) *Presenter {
	return &Presenter{
		location: cfg.Display.Location(),
		layout:   cfg.Display.TimeFormat,
	}
}

func (p *Presenter) Reservation(v *queries.ReservationView) (*ReservationResponse, error) {
	var res ReservationResponse
	if err := copier.CopyWithOption(&res, v, copyOpts); err != nil {
		return nil, err
	}
	res.CheckInDisplay = p.format(v.CheckInTime)
	res.CheckOutDisplay = NotCheckedOut
	if v.CheckOutTime != nil {
		res.CheckOutDisplay = p.format(*v.CheckOutTime)
	}
	return &res, nil
}

func (p *Presenter) Reservations(vs []*queries.ReservationView) ([]*ReservationResponse, error) {
	out := make([]*ReservationResponse, 0, len(vs))
	for _, v := range vs {
		res, err := p.Reservation(v)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (p *Presenter) Reserve(r *commands.ReserveResult) (*ReserveResponse, error) {
	res, err := p.Reservation(r.Reservation)
	if err != nil {
		return nil, err
	}
	return &ReserveResponse{
		Reservation:    res,
		SeatsAvailable: r.SeatsAvailable,
		Replayed:       r.IsReplayed,
	}, nil
}

func (p *Presenter) Change(r *commands.ChangeResult) (*ChangeResponse, error) {
	res, err := p.Reservation(r.Reservation)
	if err != nil {
		return nil, err
	}
	return &ChangeResponse{Reservation: res, SeatsAvailable: r.SeatsAvailable}, nil
}

func (p *Presenter) Summary(s *queries.LedgerSummary) (*LedgerSummaryResponse, error) {
	var res LedgerSummaryResponse
	if err := copier.Copy(&res, s); err != nil {
		return nil, err
	}
	return &res, nil
}

func (p *Presenter) Ledger(v *queries.LedgerView) (*LedgerResponse, error) {
	summary, err := p.Summary(&v.Summary)
	if err != nil {
		return nil, err
	}
	list, err := p.Reservations(v.Reservations)
	if err != nil {
		return nil, err
	}
	return &LedgerResponse{Summary: summary, Reservations: list}, nil
}

func (p *Presenter) Page(page *queries.ReservationPage) (*ReservationListResponse, error) {
	items, err := p.Reservations(page.Items)
	if err != nil {
		return nil, err
	}
	res := &ReservationListResponse{Items: items}
	if page.Next != nil {
		res.NextCursor = &page.Next.After
	}
	return res, nil
}

func (p *Presenter) format(t time.Time) string {
	return t.In(p.location).Format(p.layout)
}
