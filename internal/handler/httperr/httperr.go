package httperr

import (
	"net/http"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the context for the error middleware and
// writes the public envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithLedgerError maps ledger and usecase errors to their HTTP status.
// Client errors carry the error text as detail; anything else is a 500.
func AbortWithLedgerError(c *gin.Context, err error) {
	status, msg := Classify(err)
	var detail any
	if status < http.StatusInternalServerError {
		detail = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, reservation.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid input"
	case errs.Is(err, reservation.ErrNotFound):
		return http.StatusNotFound, "Reservation not found"
	case errs.Is(err, reservation.ErrInsufficientCapacity):
		return http.StatusConflict, "Not enough seats available"
	case errs.Is(err, reservation.ErrAlreadyCheckedOut):
		return http.StatusConflict, "Reservation already checked out"
	case errs.Is(err, errs.ErrDuplicateRequest):
		return http.StatusConflict, "Idempotency key reused with a different request"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
