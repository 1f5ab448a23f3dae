package programme

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
// @Summary      Create a training programme
// @Tags         admin,programmes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body programme.CreateProgrammeRequest true "Programme"
// @Success      201 {object} programme.Programme
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/programmes [post]
func (h *Handler) Create(c *gin.Context) {
	adminID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateProgrammeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.CreateProgramme(c.Request.Context(), adminID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidProgramme), errors.Is(err, ErrUnknownReference):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create programme"})
		}
		return
	}
	c.JSON(http.StatusCreated, p)
}

// List godoc
// @Summary      List all programmes
// @Tags         admin,programmes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} programme.Programme
// @Router       /admin/programmes [get]
func (h *Handler) List(c *gin.Context) {
	programmes, err := h.service.ListProgrammes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load programmes"})
		return
	}
	c.JSON(http.StatusOK, programmes)
}

// Get godoc
// @Summary      Get a programme
// @Tags         admin,programmes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Programme ID"
// @Success      200 {object} programme.Programme
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/programmes/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid programme ID"})
		return
	}

	p, err := h.service.GetProgramme(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProgrammeNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Programme not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load programme"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Assign godoc
// @Summary      Assign a programme to a client
// @Tags         admin,programmes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                      true "Programme ID"
// @Param        request body programme.AssignRequest  true "Assignment"
// @Success      200 {object} programme.Assignment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/programmes/{id}/assign [post]
func (h *Handler) Assign(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid programme ID"})
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	a, err := h.service.Assign(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProgrammeNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Programme not found"})
		case errors.Is(err, ErrInvalidProgramme):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "starts_on must be YYYY-MM-DD"})
		case errors.Is(err, ErrUnknownReference):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown client"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to assign programme"})
		}
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListMine godoc
// @Summary      List programmes assigned to me
// @Tags         programmes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} programme.AssignedProgramme
// @Router       /programmes [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	assigned, err := h.service.ListAssigned(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load programmes"})
		return
	}
	c.JSON(http.StatusOK, assigned)
}
