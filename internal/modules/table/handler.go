package table

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

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	tables := admin.Group("/tables")
	{
		tables.GET("", h.List)
		tables.POST("", h.Create)
		tables.GET("/:id", h.Get)
		tables.PUT("/:id", h.Update)
		tables.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	tables, err := h.service.List(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tables": tables})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tbl, err := h.service.Create(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"table": tbl})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	tbl, err := h.service.Get(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"table": tbl})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tbl, err := h.service.Update(c.Request.Context(), middleware.CurrentActor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"table": tbl})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentActor(c), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid table ID")
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Table not found")
	case errors.Is(err, ErrNoRestaurant):
		response.Error(c, http.StatusNotFound, "NO_RESTAURANT", "You do not own a restaurant")
	case errors.Is(err, ErrDuplicateNumber):
		response.Error(c, http.StatusConflict, "DUPLICATE_NUMBER", "A table with this number already exists")
	case errors.Is(err, ErrHasActiveReservations):
		response.Error(c, http.StatusUnprocessableEntity, "HAS_ACTIVE_RESERVATIONS", "The table has upcoming reservations")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid table data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process table request")
	}
}
