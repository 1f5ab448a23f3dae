package blockbooking

import (
	"errors"
	"net/http"
	"strconv"

	"ptstudio/internal/api"
	"ptstudio/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary      Create a block booking
// @Description  Weekly recurring session for a client
// @Tags         admin,block-bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body blockbooking.CreateRuleRequest true "Rule"
// @Success      201 {object} blockbooking.Rule
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/block-bookings [post]
func (h *Handler) Create(c *gin.Context) {
	adminID, _ := auth.GetUserID(c)

	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	rule, err := h.service.CreateRule(c.Request.Context(), adminID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidRule) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "start_time must be HH:MM and starts_on YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create block booking"})
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// List godoc
// @Summary      List block bookings
// @Tags         admin,block-bookings
// @Produce      json
// @Security     BearerAuth
// @Param        active query bool false "Only active rules"
// @Success      200 {array} blockbooking.Rule
// @Router       /admin/block-bookings [get]
func (h *Handler) List(c *gin.Context) {
	rules, err := h.service.ListRules(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load block bookings"})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// Generate godoc
// @Summary      Book the sessions of a block booking
// @Description  Finds or creates a slot for every future occurrence and books it for the client
// @Tags         admin,block-bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Rule ID"
// @Success      200 {object} blockbooking.GenerateResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/block-bookings/{id}/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid block booking ID"})
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Block booking not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate bookings"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deactivate godoc
// @Summary      Stop a block booking
// @Description  Existing bookings are kept
// @Tags         admin,block-bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Rule ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/block-bookings/{id} [delete]
func (h *Handler) Deactivate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid block booking ID"})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Block booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to deactivate block booking"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Block booking deactivated"})
}
