package waitlist

import (
	"errors"
	"net/http"
	"strconv"

	"ptstudio/internal/api"
	"ptstudio/internal/auth"
	"ptstudio/internal/slot"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Join godoc
// @Summary      Join the waitlist of a full slot
// @Tags         waitlist
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Slot ID"
// @Success      201 {object} waitlist.Entry
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /slots/{id}/waitlist [post]
func (h *Handler) Join(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	slotID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	e, err := h.service.Join(c.Request.Context(), userID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Slot not found"})
		case errors.Is(err, ErrSlotAvailable), errors.Is(err, ErrAlreadyWaiting), errors.Is(err, ErrSlotStarted):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to join waitlist"})
		}
		return
	}
	c.JSON(http.StatusCreated, e)
}

// Leave godoc
// @Summary      Leave the waitlist of a slot
// @Tags         waitlist
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Slot ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /slots/{id}/waitlist [delete]
func (h *Handler) Leave(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	slotID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	if err := h.service.Leave(c.Request.Context(), userID, slotID); err != nil {
		if errors.Is(err, ErrNotOnWaitlist) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to leave waitlist"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Left the waitlist"})
}

// ListMine godoc
// @Summary      List my waitlist entries
// @Tags         waitlist
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} waitlist.EntryWithSlot
// @Router       /waitlist [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	entries, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load waitlist"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
