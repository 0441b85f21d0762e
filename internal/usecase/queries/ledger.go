package queries

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/queries/mock_ledger.go -package=queriesmock

import (
	"context"

	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type LedgerQueries interface {
	Summary(ctx context.Context) (*LedgerSummary, error)
	Ledger(ctx context.Context, query string) (*LedgerView, error)
	Search(ctx context.Context, query string, after *Cursor, limit int) (*ReservationPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type ledgerQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewLedgerQueries(uow shared.UnitOfWork) LedgerQueries {
	return &ledgerQueriesImpl{uow: uow}
}

func (q *ledgerQueriesImpl) Summary(ctx context.Context) (*LedgerSummary, error) {
	var summary LedgerSummary
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, r shared.LedgerReader) error {
		summary = summarize(r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (q *ledgerQueriesImpl) Ledger(ctx context.Context, query string) (*LedgerView, error) {
	var view LedgerView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, r shared.LedgerReader) error {
		view.Summary = summarize(r)
		view.Reservations = make([]*ReservationView, 0, r.Len())
		for res := range r.Search(query) {
			view.Reservations = append(view.Reservations, NewReservationView(res.Snapshot()))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (q *ledgerQueriesImpl) Search(ctx context.Context, query string, after *Cursor, limit int) (*ReservationPage, error) {
	limit = ValidateLimit(limit)

	var afterID uuid.UUID
	if after != nil && after.After != "" {
		id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, err
		}
		afterID = id
	}

	page := &ReservationPage{Items: make([]*ReservationView, 0, limit)}
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, r shared.LedgerReader) error {
		if afterID != uuid.Nil {
			res, err := r.Get(afterID)
			if err != nil {
				return errs.Wrap(ErrInvalidCursor, "cursor reservation no longer exists")
			}
			if !res.Name().Matches(query) {
				return errs.Wrapf(ErrInvalidCursor, "cursor reservation does not match query %q", query)
			}
		}

		skipping := afterID != uuid.Nil
		for res := range r.Search(query) {
			if skipping {
				skipping = res.ID() != afterID
				continue
			}
			if len(page.Items) == limit {
				last := page.Items[len(page.Items)-1]
				page.Next = &Cursor{After: EncodeAfterCursor(last.ID)}
				break
			}
			page.Items = append(page.Items, NewReservationView(res.Snapshot()))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (q *ledgerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, r shared.LedgerReader) error {
		res, err := r.Get(id)
		if err != nil {
			return err
		}
		view = NewReservationView(res.Snapshot())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func summarize(r shared.LedgerReader) LedgerSummary {
	return LedgerSummary{
		MaxSeats:           r.MaxSeats(),
		SeatsAvailable:     r.SeatsAvailable(),
		SeatedGuests:       r.SeatedGuests(),
		SeatedReservations: r.SeatedReservations(),
		TotalReservations:  r.Len(),
	}
}
