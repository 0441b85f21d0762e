package reservation

import (
	"strconv"
	"strings"

	"tablebook/internal/pkg/errs"
)

type CustomerName struct {
	value string
}

func NewCustomerName(s string) (CustomerName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return CustomerName{}, errs.Wrap(ErrInvalidInput, "name is required")
	}
	return CustomerName{value: t}, nil
}

func (n CustomerName) String() string { return n.value }
func (n CustomerName) IsZero() bool   { return n.value == "" }

// Matches reports whether query is a case-insensitive substring of the name.
// An empty query matches every name.
func (n CustomerName) Matches(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.value), strings.ToLower(query))
}

// Phone is an unvalidated contact string.
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Phone{}, errs.Wrap(ErrInvalidInput, "phone is required")
	}
	return Phone{value: t}, nil
}

func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool   { return p.value == "" }

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n <= 0 {
		return GuestCount{}, errs.Wrapf(ErrInvalidInput, "guest count must be positive, got %d", n)
	}
	return GuestCount{value: n}, nil
}

// ParseGuestCount accepts a base-10 integer with optional surrounding whitespace.
func ParseGuestCount(raw string) (GuestCount, error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return GuestCount{}, errs.Wrap(ErrInvalidInput, "guest count is required")
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return GuestCount{}, errs.Wrapf(ErrInvalidInput, "guest count %q is not an integer", raw)
	}
	return NewGuestCount(n)
}

func (g GuestCount) Value() int { return g.value }
