package reservation

// Input is a reservation request whose fields already satisfy the domain rules.
type Input struct {
	Name   CustomerName
	Phone  Phone
	Guests GuestCount
}

// ParseInput converts raw form fields into typed values, reporting the first
// offending field wrapped in ErrInvalidInput.
func ParseInput(name, phone, guestsRaw string) (Input, error) {
	n, err := NewCustomerName(name)
	if err != nil {
		return Input{}, err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return Input{}, err
	}
	g, err := ParseGuestCount(guestsRaw)
	if err != nil {
		return Input{}, err
	}
	return Input{Name: n, Phone: p, Guests: g}, nil
}
