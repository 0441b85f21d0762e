package request

import (
	"bytes"
	"encoding/json"

	"tablebook/internal/pkg/errs"
)

type CreateReservationRequest struct {
	Name   string      `json:"name" example:"Ana"`
	Phone  string      `json:"phone" example:"555-0100"`
	Guests GuestsField `json:"guests" swaggertype:"string" example:"4"`
}

// GuestsField accepts the guest count as a JSON number or a JSON string.
// The raw text is kept so the domain applies one parsing rule to both.
type GuestsField string

var errGuestsType = errs.New("guests must be a number or a string")

func (g *GuestsField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*g = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = GuestsField(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errGuestsType
	}
	*g = GuestsField(n.String())
	return nil
}

func (g GuestsField) String() string {
	return string(g)
}
