package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"mesareserva/internal/middleware"
	"mesareserva/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterClientRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations", h.List)
	rg.POST("/reservations", h.Create)
	rg.GET("/reservations/available-tables", h.AvailableTables)
	rg.GET("/reservations/:id", h.Get)
	rg.POST("/reservations/:id/cancel", h.Cancel)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations", h.ListForRestaurant)
	rg.POST("/reservations/:id/confirm", h.Confirm)
	rg.POST("/reservations/:id/complete", h.Complete)
	rg.POST("/reservations/:id/cancel", h.Cancel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": res})
}

func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	reservations, total, err := h.service.ListForUser(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, "reservations", reservations, total)
}

func (h *Handler) ListForRestaurant(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	reservations, total, err := h.service.ListForRestaurant(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, "reservations", reservations, total)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.service.GetForActor(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) Confirm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.service.Confirm(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) Complete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.service.Complete(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) AvailableTables(c *gin.Context) {
	var req AvailableTablesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	tables, err := h.service.FindAvailableTables(c.Request.Context(), req.RestaurantID, req.ReservationDate, req.PartySize)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tables": tables})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return 0, false
	}
	return id, true
}

// respondError maps business sentinels to wire responses. Anything not
// recognized is an infrastructure fault and surfaces as a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRestaurantUnavailable):
		response.Error(c, http.StatusNotFound, "RESTAURANT_UNAVAILABLE", "Restaurant not available")
	case errors.Is(err, ErrTableUnavailable):
		response.Error(c, http.StatusNotFound, "TABLE_UNAVAILABLE", "Table not available")
	case errors.Is(err, ErrReservationNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation request")
	case errors.Is(err, ErrCapacityExceeded):
		response.Error(c, http.StatusUnprocessableEntity, "CAPACITY_EXCEEDED", "Party size exceeds the table capacity")
	case errors.Is(err, ErrClosedAtTime):
		response.Error(c, http.StatusUnprocessableEntity, "CLOSED_AT_TIME", "The restaurant is closed at that time")
	case errors.Is(err, ErrClosedOnDay):
		response.Error(c, http.StatusUnprocessableEntity, "CLOSED_ON_DAY", "The restaurant is closed on that day")
	case errors.Is(err, ErrTableConflict):
		response.Error(c, http.StatusConflict, "TABLE_CONFLICT", "The table is not available at that time")
	case errors.Is(err, ErrAlreadyCancelled):
		response.Error(c, http.StatusUnprocessableEntity, "ALREADY_CANCELLED", "The reservation is already cancelled")
	case errors.Is(err, ErrAlreadyCompleted):
		response.Error(c, http.StatusUnprocessableEntity, "ALREADY_COMPLETED", "A completed reservation cannot be changed")
	case errors.Is(err, ErrCancellationTooLate):
		response.Error(c, http.StatusUnprocessableEntity, "CANCELLATION_TOO_LATE", "Reservations require two hours of cancellation notice")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS_TRANSITION", "The reservation cannot move to that status")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not manage this reservation")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process reservation")
	}
}
