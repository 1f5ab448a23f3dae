package user

import (
	"errors"
	"net/http"
	"strconv"

	"ptstudio/internal/api"
	"ptstudio/internal/auth"

	"github.com/gin-gonic/gin"
)

const maxAvatarBytes = 8 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary      Register a client
// @Description  Creates a client profile with an empty credit balance and returns access & refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body user.RegisterRequest true "Registration data"
// @Success      201 {object} user.AuthResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create account"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body user.LoginRequest true "Credentials"
// @Success      200 {object} user.AuthResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to sign in"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body user.RefreshRequest true "Refresh token"
// @Success      200 {object} user.RefreshResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "refresh_token is required"})
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid or expired refresh token"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOut godoc
// @Summary      Sign out
// @Description  Revokes the current access token and, if supplied, the refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body user.SignOutRequest false "Refresh token to revoke"
// @Success      200 {object} api.MessageResponse
// @Router       /auth/sign-out [post]
func (h *Handler) SignOut(c *gin.Context) {
	session, ok := auth.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req SignOutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.service.SignOut(c.Request.Context(), session, req.RefreshToken); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Signed out"})
}

// Session godoc
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} auth.Session
// @Failure      401 {object} api.ErrorResponse
// @Router       /auth/session [get]
func (h *Handler) Session(c *gin.Context) {
	session, ok := auth.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetMe godoc
// @Summary      Get my profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} user.Profile
// @Failure      404 {object} api.ErrorResponse
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	p, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateMe godoc
// @Summary      Update my profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body user.UpdateProfileRequest true "Fields to change"
// @Success      200 {object} user.Profile
// @Failure      400 {object} api.ErrorResponse
// @Router       /me [put]
func (h *Handler) UpdateMe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetClientProfile godoc
// @Summary      Get my client profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} user.ClientProfile
// @Router       /me/client-profile [get]
func (h *Handler) GetClientProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	cp, err := h.service.GetClientProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load client profile"})
		return
	}
	c.JSON(http.StatusOK, cp)
}

// UpdateClientProfile godoc
// @Summary      Update my client profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body user.UpdateClientProfileRequest true "Fields to change"
// @Success      200 {object} user.ClientProfile
// @Failure      400 {object} api.ErrorResponse
// @Router       /me/client-profile [put]
func (h *Handler) UpdateClientProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req UpdateClientProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	cp, err := h.service.UpdateClientProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update client profile"})
		return
	}
	c.JSON(http.StatusOK, cp)
}

// UploadAvatar godoc
// @Summary      Upload my profile picture
// @Description  Accepts JPEG, PNG, GIF, TIFF or BMP. The image is resized to fit 512x512 and stored as JPEG.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Image file"
// @Success      200 {object} user.Profile
// @Failure      400 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /me/avatar [post]
func (h *Handler) UploadAvatar(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarBytes)
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "avatar file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "avatar file could not be read"})
		return
	}
	defer file.Close()

	p, err := h.service.UploadAvatar(c.Request.Context(), userID, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidImage):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrAvatarUnavailable):
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to upload avatar"})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListClients godoc
// @Summary      List clients
// @Tags         admin,clients
// @Produce      json
// @Security     BearerAuth
// @Param        q      query string false "Name or email contains"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Offset"
// @Success      200 {array} user.ClientSummary
// @Router       /admin/clients [get]
func (h *Handler) ListClients(c *gin.Context) {
	var page api.Page
	_ = c.ShouldBindQuery(&page)

	clients, err := h.service.ListClients(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient godoc
// @Summary      Client detail
// @Tags         admin,clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Client ID"
// @Success      200 {object} user.ClientDetail
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/clients/{id} [get]
func (h *Handler) GetClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid client ID"})
		return
	}

	detail, err := h.service.GetClientDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load client"})
		return
	}
	c.JSON(http.StatusOK, detail)
}
