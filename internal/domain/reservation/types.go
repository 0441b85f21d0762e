package reservation

import "tablebook/internal/pkg/errs"

var (
	ErrInvalidInput         = errs.New("invalid input")
	ErrInsufficientCapacity = errs.New("insufficient capacity")
	ErrNotFound             = errs.New("reservation not found")
	ErrAlreadyCheckedOut    = errs.New("reservation already checked out")
)

type Status string

const (
	StatusSeated     Status = "seated"
	StatusCheckedOut Status = "checked_out"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSeated, StatusCheckedOut:
		return true
	default:
		return false
	}
}
