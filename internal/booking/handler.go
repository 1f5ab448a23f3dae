package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ptstudio/internal/api"
	"ptstudio/internal/auth"
	"ptstudio/internal/credits"
	"ptstudio/internal/slot"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// FullResponse tells the client to join the waitlist instead.
type FullResponse struct {
	Error  string `json:"error" example:"slot is full, join the waitlist instead"`
	Action string `json:"action" example:"waitlist"`
}

// BookSlot godoc
// @Summary      Book a slot
// @Description  Deducts the slot's credit cost and takes a place on the slot
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Slot ID"
// @Success      201 {object} booking.BookResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      402 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} booking.FullResponse
// @Router       /slots/{id}/book [post]
func (h *Handler) BookSlot(c *gin.Context) {
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

	resp, err := h.service.BookSlot(c.Request.Context(), userID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Slot not found"})
		case errors.Is(err, ErrSlotInPast):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrSlotFull):
			c.JSON(http.StatusConflict, FullResponse{Error: err.Error(), Action: slot.ActionWaitlist})
		case errors.Is(err, ErrAlreadyBooked):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, credits.ErrInsufficientCredits):
			c.JSON(http.StatusPaymentRequired, api.ErrorResponse{Error: "Not enough credits, buy a pack to book"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to book slot"})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Description  Refunds the credit when cancelled at least 48 hours before the session, otherwise the credit is forfeited
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Booking ID"
// @Success      200 {object} booking.CancelResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /bookings/{id}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	resp, err := h.service.CancelBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		h.cancelError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) cancelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
	case errors.Is(err, ErrNotOwner):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrNotActive):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking"})
	}
}

// ListMine godoc
// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        upcoming query bool false "Only active bookings that have not started"
// @Success      200 {array} booking.BookingWithDetails
// @Router       /bookings [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookings, err := h.service.ListMine(c.Request.Context(), userID, c.Query("upcoming") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListBySlot godoc
// @Summary      List bookings of a slot
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Slot ID"
// @Success      200 {array} booking.BookingWithDetails
// @Router       /admin/slots/{id}/bookings [get]
func (h *Handler) ListBySlot(c *gin.Context) {
	slotID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	bookings, err := h.service.ListBySlot(c.Request.Context(), slotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateStatus godoc
// @Summary      Mark attendance
// @Tags         admin,bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                         true "Booking ID"
// @Param        request body booking.UpdateStatusRequest true "completed or no_show"
// @Success      200 {object} booking.Booking
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/bookings/{id}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	b, err := h.service.MarkStatus(c.Request.Context(), bookingID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrNotActive):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update booking"})
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

// AdminCancel godoc
// @Summary      Cancel a client's booking
// @Description  Cancels on behalf of the client and always refunds the credit
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Booking ID"
// @Success      200 {object} booking.CancelResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/bookings/{id}/cancel [post]
func (h *Handler) AdminCancel(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	resp, err := h.service.AdminCancel(c.Request.Context(), bookingID)
	if err != nil {
		h.cancelError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseDay(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

// Stats godoc
// @Summary      Bookings per day
// @Tags         admin,analytics
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "YYYY-MM-DD or RFC3339, defaults to 30 days before to"
// @Param        to   query string false "YYYY-MM-DD or RFC3339, defaults to now"
// @Success      200 {array} booking.DayStat
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/bookings/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	from, err := parseDay(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid from date"})
		return
	}
	to, err := parseDay(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid to date"})
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load booking stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
