package restaurant

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

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/restaurants", h.List)
	v1.GET("/restaurants/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	purchase := protected.Group("/service")
	{
		purchase.GET("/purchase-restaurant", h.Eligibility)
		purchase.POST("/purchase-restaurant", middleware.ClientOnly(), h.Purchase)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/restaurant", h.GetMine)
	admin.PUT("/restaurant", h.UpdateMine)
	admin.GET("/restaurant/stats", h.Stats)
}

func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	restaurants, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list restaurants")
		return
	}

	response.Paginated(c, http.StatusOK, "restaurants", restaurants, total)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid restaurant ID")
		return
	}

	restaurant, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"restaurant": restaurant})
}

func (h *Handler) GetMine(c *gin.Context) {
	restaurant, err := h.service.GetMine(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"restaurant": restaurant})
}

func (h *Handler) UpdateMine(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	restaurant, err := h.service.UpdateMine(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"restaurant": restaurant})
}

func (h *Handler) Eligibility(c *gin.Context) {
	eligibility, err := h.service.CheckEligibility(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check eligibility")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"eligibility": eligibility})
}

func (h *Handler) Purchase(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	restaurant, err := h.service.Purchase(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"restaurant": restaurant})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Restaurant not found")
	case errors.Is(err, ErrNoRestaurant):
		response.Error(c, http.StatusNotFound, "NO_RESTAURANT", "You do not own a restaurant")
	case errors.Is(err, ErrAlreadyOwner):
		response.Error(c, http.StatusConflict, "ALREADY_OWNER", "You already own a restaurant")
	case errors.Is(err, ErrNotEligible):
		response.Error(c, http.StatusForbidden, "NOT_ELIGIBLE", "Only client accounts can purchase a restaurant")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid restaurant data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process restaurant request")
	}
}
