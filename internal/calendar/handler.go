package calendar

import (
	"net/http"
	"strconv"
	"time"

	"ptstudio/internal/api"
	"ptstudio/internal/slot"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	slots slot.Service
	loc   *time.Location
	now   func() time.Time
}

func NewHandler(slots slot.Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{slots: slots, loc: loc, now: time.Now}
}

// @Summary      Month calendar
// @Description  Every day of the month with its slots, availability and bookable action
// @Tags         slots
// @Produce      json
// @Security     BearerAuth
// @Param        year  query int false "Year, defaults to the current year"
// @Param        month query int false "Month 1-12, defaults to the current month"
// @Success      200 {object} calendar.Month
// @Failure      400 {object} api.ErrorResponse
// @Router       /calendar [get]
func (h *Handler) Month(c *gin.Context) {
	now := h.now()
	year, month := now.In(h.loc).Year(), int(now.In(h.loc).Month())

	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1970 || y > 9999 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid year"})
			return
		}
		year = y
	}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid month"})
			return
		}
		month = m
	}

	from, to := MonthBounds(year, time.Month(month), h.loc)
	slots, err := h.slots.ListRaw(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load calendar"})
		return
	}

	c.JSON(http.StatusOK, MonthView(year, time.Month(month), slots, now, h.loc))
}
