package message

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"ptstudio/internal/api"
	"ptstudio/internal/auth"
	"ptstudio/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service   Service
	heartbeat time.Duration
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, heartbeat: 25 * time.Second}
}

// Send godoc
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body message.SendRequest true "Message"
// @Success      201 {object} message.Message
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /messages [post]
func (h *Handler) Send(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	m, err := h.service.Send(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage), errors.Is(err, ErrSelfMessage):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrRecipientNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Recipient not found"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to send message"})
		}
		return
	}
	c.JSON(http.StatusCreated, m)
}

// Threads godoc
// @Summary      List my conversations
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} message.Thread
// @Router       /messages/threads [get]
func (h *Handler) Threads(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	threads, err := h.service.Threads(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load conversations"})
		return
	}
	c.JSON(http.StatusOK, threads)
}

func peerParam(c *gin.Context) (int, bool) {
	peerID, err := strconv.Atoi(c.Param("peer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid peer ID"})
		return 0, false
	}
	return peerID, true
}

// Conversation godoc
// @Summary      Messages exchanged with one peer, oldest first
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        peer_id path  int true  "Peer user ID"
// @Param        limit   query int false "Page size"
// @Param        offset  query int false "Offset from the newest message"
// @Success      200 {array} message.Message
// @Router       /messages/conversations/{peer_id} [get]
func (h *Handler) Conversation(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}
	peerID, ok := peerParam(c)
	if !ok {
		return
	}

	var page api.Page
	_ = c.ShouldBindQuery(&page)

	messages, err := h.service.Conversation(c.Request.Context(), userID, peerID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MarkRead godoc
// @Summary      Mark a conversation read
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        peer_id path int true "Peer user ID"
// @Success      200 {object} message.MarkReadResponse
// @Router       /messages/conversations/{peer_id}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}
	peerID, ok := peerParam(c)
	if !ok {
		return
	}

	n, err := h.service.MarkRead(c.Request.Context(), userID, peerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to mark messages read"})
		return
	}
	c.JSON(http.StatusOK, MarkReadResponse{Updated: n})
}

// Unread godoc
// @Summary      Count my unread messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} message.UnreadResponse
// @Router       /messages/unread [get]
func (h *Handler) Unread(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	n, err := h.service.Unread(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to count messages"})
		return
	}
	c.JSON(http.StatusOK, UnreadResponse{Unread: n})
}

// Stream godoc
// @Summary      Server-sent events for new messages
// @Description  Emits a "message" event for every message sent or received and a "ping" event as keep-alive.
// @Tags         messages
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200
// @Failure      503 {object} api.ErrorResponse
// @Router       /messages/stream [get]
func (h *Handler) Stream(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	ctx := c.Request.Context()
	messages, closeSub, err := h.service.Subscribe(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrStreamUnavailable) {
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to open stream"})
		return
	}
	defer closeSub()

	metrics.MessageStreams.Inc()
	defer metrics.MessageStreams.Dec()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case m, ok := <-messages:
			if !ok {
				return false
			}
			c.SSEvent("message", m)
			return true
		case t := <-ticker.C:
			c.SSEvent("ping", t.Unix())
			return true
		}
	})
}
