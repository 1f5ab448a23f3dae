package credits

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

// @Summary      Get credit balance
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} credits.Balance
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /credits [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	b, err := h.service.GetBalance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load balance"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      List credit transactions
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Offset"
// @Success      200 {array} credits.Transaction
// @Failure      401 {object} api.ErrorResponse
// @Router       /credits/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var page api.Page
	_ = c.ShouldBindQuery(&page)

	txs, err := h.service.ListTransactions(c.Request.Context(), userID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, txs)
}

// @Summary      Adjust a client's credits
// @Description  Admin-only: add or remove credits with a reason
// @Tags         admin,credits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                    true "Client ID"
// @Param        request body credits.AdjustRequest  true "Adjustment"
// @Success      201 {object} credits.Transaction
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/clients/{id}/credits [post]
func (h *Handler) Adjust(c *gin.Context) {
	adminID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid client ID"})
		return
	}

	var req AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	t, err := h.service.Adjust(c.Request.Context(), adminID, clientID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrZeroAdjustment):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrInsufficientCredits):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Adjustment would make the balance negative"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to adjust credits"})
		}
		return
	}
	c.JSON(http.StatusCreated, t)
}
