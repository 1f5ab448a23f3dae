package analytics

import (
	"net/http"
	"strings"

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

// Progress godoc
// @Summary      Strength progress per exercise
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        window query string false "1M, 3M, 6M or ALL" default(3M)
// @Success      200 {array} analytics.Progress
// @Failure      400 {object} api.ErrorResponse
// @Router       /analytics/progress [get]
func (h *Handler) Progress(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	window, err := ParseWindow(c.Query("window"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	progress, err := h.service.Progress(c.Request.Context(), userID, window)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load progress"})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// Weekly godoc
// @Summary      Best weight per week for one exercise
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        exercise query string true  "Exercise name"
// @Param        window   query string false "1M, 3M, 6M or ALL" default(3M)
// @Success      200 {array} analytics.WeekPoint
// @Failure      400 {object} api.ErrorResponse
// @Router       /analytics/weekly [get]
func (h *Handler) Weekly(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	exercise := strings.TrimSpace(c.Query("exercise"))
	if exercise == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "exercise is required"})
		return
	}
	window, err := ParseWindow(c.Query("window"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	series, err := h.service.Weekly(c.Request.Context(), userID, exercise, window)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load weekly series"})
		return
	}
	c.JSON(http.StatusOK, series)
}
