//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"tablebook/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservationRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantGuests string
		wantErr    bool
	}{
		{name: "number", body: `{"name":"Ana","phone":"555","guests":4}`, wantGuests: "4"},
		{name: "string", body: `{"name":"Ana","phone":"555","guests":"4"}`, wantGuests: "4"},
		{name: "fraction kept verbatim", body: `{"guests":2.5}`, wantGuests: "2.5"},
		{name: "null", body: `{"guests":null}`, wantGuests: ""},
		{name: "missing", body: `{"name":"Ana"}`, wantGuests: ""},
		{name: "error: bool", body: `{"guests":true}`, wantErr: true},
		{name: "error: object", body: `{"guests":{"n":4}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req request.CreateReservationRequest
			err := json.Unmarshal([]byte(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantGuests, req.Guests.String())
		})
	}
}
