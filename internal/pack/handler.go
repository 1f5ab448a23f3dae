package pack

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

// @Summary      List credit packs
// @Tags         packs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} pack.Pack
// @Router       /packs [get]
func (h *Handler) List(c *gin.Context) {
	s, _ := auth.SessionFrom(c)
	includeInactive := s.IsAdmin() && c.Query("all") == "true"

	packs, err := h.service.ListPacks(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load packs"})
		return
	}
	c.JSON(http.StatusOK, packs)
}

// @Summary      Buy a credit pack
// @Description  Records the payment and adds credits plus bonus credits to the balance
// @Tags         packs
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Pack ID"
// @Success      201 {object} pack.PurchaseResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /packs/{id}/purchase [post]
func (h *Handler) Purchase(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	packID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid pack ID"})
		return
	}

	resp, err := h.service.Purchase(c.Request.Context(), userID, packID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPackNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Pack not found"})
		case errors.Is(err, ErrPackInactive):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to complete purchase"})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary      List my payments
// @Tags         packs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} pack.Payment
// @Router       /payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	payments, err := h.service.ListPayments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// @Summary      Create a credit pack
// @Tags         admin,packs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body pack.CreatePackRequest true "Pack"
// @Success      201 {object} pack.Pack
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/packs [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.CreatePack(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create pack"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Update a credit pack
// @Tags         admin,packs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                     true "Pack ID"
// @Param        request body pack.UpdatePackRequest  true "Changes"
// @Success      200 {object} pack.Pack
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/packs/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid pack ID"})
		return
	}

	var req UpdatePackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.UpdatePack(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrPackNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Pack not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update pack"})
		return
	}
	c.JSON(http.StatusOK, p)
}
