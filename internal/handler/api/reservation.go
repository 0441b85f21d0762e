package api

import (
	"net/http"
	"strconv"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/httperr"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type ReservationHandler struct {
	commands  commands.LedgerCommands
	queries   queries.LedgerQueries
	presenter *resdto.Presenter
}

func NewReservationHandler(
	commands commands.LedgerCommands,
	queries queries.LedgerQueries,
	presenter *resdto.Presenter,
) *ReservationHandler {
	return &ReservationHandler{
		commands:  commands,
		queries:   queries,
		presenter: presenter,
	}
}

// @Summary Ledger overview
// @Description Capacity summary and the reservations whose name contains q
// @Tags ledger
// @Produce json
// @Param q query string false "Case-insensitive name filter"
// @Success 200 {object} resdto.LedgerResponse
// @Router /ledger [get]
func (h *ReservationHandler) GetLedger(c *gin.Context) {
	view, err := h.queries.Ledger(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	h.render(c, http.StatusOK)(h.presenter.Ledger(view))
}

// @Summary Search reservations
// @Description Reservations in insertion order whose name contains q, paged by cursor
// @Tags reservations
// @Produce json
// @Param q query string false "Case-insensitive name filter"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	var after *queries.Cursor
	if raw := c.Query("after"); raw != "" {
		after = &queries.Cursor{After: raw}
	}

	page, err := h.queries.Search(c.Request.Context(), c.Query("q"), after, limit)
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	h.render(c, http.StatusOK)(h.presenter.Page(page))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}
	h.render(c, http.StatusOK)(h.presenter.Reservation(view))
}

// @Summary Reserve seats
// @Description Seat a party now. A repeated Idempotency-Key replays the first result.
// @Tags reservations
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID identifying this request"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReserveResponse
// @Success 200 {object} resdto.ReserveResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key format", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.commands.Reserve(c.Request.Context(), commands.ReserveInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Guests: req.Guests.String(),
	}, idempotencyKey)
	if err != nil {
		httperr.AbortWithLedgerError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/reservations/"+result.Reservation.ID.String())
	h.render(c, status)(h.presenter.Reserve(result))
}

// @Summary Check out
// @Description Mark a seated party as departed and return its seats
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ChangeResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/checkout [post]
func (h *ReservationHandler) CheckoutReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.change(c)(h.commands.Checkout(c.Request.Context(), id))
}

// @Summary Delete reservation
// @Description Remove a reservation; seats return only if the party is still seated
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ChangeResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.change(c)(h.commands.Delete(c.Request.Context(), id))
}

// @Summary Check out by position
// @Tags rows
// @Produce json
// @Param index path int true "Zero-based position in the current list"
// @Success 200 {object} resdto.ChangeResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rows/{index}/checkout [post]
func (h *ReservationHandler) CheckoutRow(c *gin.Context) {
	index, ok := parseIndex(c)
	if !ok {
		return
	}
	h.change(c)(h.commands.CheckoutAt(c.Request.Context(), index))
}

// @Summary Delete by position
// @Tags rows
// @Produce json
// @Param index path int true "Zero-based position in the current list"
// @Success 200 {object} resdto.ChangeResponse
// @Failure 404 {object} httperr.Response
// @Router /rows/{index} [delete]
func (h *ReservationHandler) DeleteRow(c *gin.Context) {
	index, ok := parseIndex(c)
	if !ok {
		return
	}
	h.change(c)(h.commands.DeleteAt(c.Request.Context(), index))
}

func (h *ReservationHandler) change(c *gin.Context) func(*commands.ChangeResult, error) {
	return func(result *commands.ChangeResult, err error) {
		if err != nil {
			httperr.AbortWithLedgerError(c, err)
			return
		}
		h.render(c, http.StatusOK)(h.presenter.Change(result))
	}
}

func (h *ReservationHandler) render(c *gin.Context, status int) func(any, error) {
	return func(body any, err error) {
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		c.JSON(status, body)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parseIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid row index", nil)
		return 0, false
	}
	return index, true
}

func getIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	keyStr := c.GetHeader(IdempotencyKeyHeader)
	if keyStr == "" {
		return nil, nil
	}
	key, err := uuid.Parse(keyStr)
	if err != nil {
		return nil, errs.Wrap(errs.ErrIdempotencyKeyInvalid, err.Error())
	}
	return &key, nil
}
