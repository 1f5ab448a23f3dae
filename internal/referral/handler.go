package referral

import (
	"net/http"

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

// @Summary      My referrals
// @Description  Returns the caller's referral code and the clients who signed up with it
// @Tags         referrals
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} referral.Summary
// @Failure      401 {object} api.ErrorResponse
// @Router       /referrals [get]
func (h *Handler) List(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	sum, err := h.service.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load referrals"})
		return
	}
	c.JSON(http.StatusOK, sum)
}
