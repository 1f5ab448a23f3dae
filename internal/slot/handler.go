package slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ptstudio/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	var from, to time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return from, to, err
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return from, to, err
		}
		to = t
	}
	return from, to, nil
}

// @Summary      List slots
// @Description  Slots starting in [from, to), each with its remaining places and the action a client can take
// @Tags         slots
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "RFC3339 start, defaults to now"
// @Param        to   query string false "RFC3339 end, defaults to two weeks after from"
// @Success      200 {array} slot.SlotView
// @Failure      400 {object} api.ErrorResponse
// @Router       /slots [get]
func (h *Handler) List(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "from and to must be RFC3339 timestamps"})
		return
	}

	slots, err := h.service.ListSlots(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, ErrSlotInvalid) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "to must be after from"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load slots"})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// @Summary      Get a slot
// @Tags         slots
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Slot ID"
// @Success      200 {object} slot.SlotView
// @Failure      404 {object} api.ErrorResponse
// @Router       /slots/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	s, err := h.service.GetSlot(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Slot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load slot"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary      Create a slot
// @Tags         admin,slots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body slot.CreateSlotRequest true "Slot"
// @Success      201 {object} slot.Slot
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/slots [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	s, err := h.service.CreateSlot(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSlotInvalid) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Slot times must be RFC3339 and end after start"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create slot"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// @Summary      Update a slot
// @Tags         admin,slots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                    true "Slot ID"
// @Param        request body slot.UpdateSlotRequest true "Changes"
// @Success      200 {object} slot.Slot
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/slots/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	s, err := h.service.UpdateSlot(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Slot not found"})
		case errors.Is(err, ErrCapacityBelowBooked):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update slot"})
		}
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary      Delete a slot
// @Description  Only slots without bookings can be deleted
// @Tags         admin,slots
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Slot ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/slots/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	if err := h.service.DeleteSlot(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Slot not found"})
		case errors.Is(err, ErrSlotHasBookings):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Slot has bookings"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete slot"})
		}
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Slot deleted"})
}
