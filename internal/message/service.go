package message

import (
	"context"
	"errors"
	"strings"

	"ptstudio/internal/api"
	"ptstudio/internal/logger"
	"ptstudio/internal/metrics"
	"ptstudio/internal/notification"
)

var (
	ErrEmptyMessage      = errors.New("message body is empty")
	ErrSelfMessage       = errors.New("cannot message yourself")
	ErrStreamUnavailable = errors.New("live updates are not configured")
)

const previewLength = 80

type Notifier interface {
	Notify(ctx context.Context, userID int, kind, title, body string) error
}

type Service interface {
	Send(ctx context.Context, senderID int, req SendRequest) (*Message, error)
	Conversation(ctx context.Context, userID, peerID int, page api.Page) ([]Message, error)
	Threads(ctx context.Context, userID int) ([]Thread, error)
	MarkRead(ctx context.Context, userID, peerID int) (int64, error)
	Unread(ctx context.Context, userID int) (int, error)
	Subscribe(ctx context.Context, userID int) (<-chan Message, func() error, error)
}

type service struct {
	repo     Repository
	broker   Broker
	notifier Notifier
}

// NewService builds the messaging service. broker may be nil, which disables
// live streams.
func NewService(repo Repository, broker Broker, notifier Notifier) Service {
	return &service{repo: repo, broker: broker, notifier: notifier}
}

func preview(body string) string {
	runes := []rune(body)
	if len(runes) <= previewLength {
		return body
	}
	return string(runes[:previewLength-1]) + "…"
}

func (s *service) Send(ctx context.Context, senderID int, req SendRequest) (*Message, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	if req.RecipientID == senderID {
		return nil, ErrSelfMessage
	}

	m, err := s.repo.Create(ctx, senderID, req.RecipientID, body)
	if err != nil {
		return nil, err
	}
	metrics.RecordMessage()

	if s.broker != nil {
		for _, userID := range []int{m.SenderID, m.RecipientID} {
			if err := s.broker.Publish(ctx, userID, *m); err != nil {
				logger.Warn("failed to publish message", "message_id", m.ID, "user_id", userID, "error", err)
			}
		}
	}
	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, m.RecipientID, notification.KindMessage, "New message", preview(body)); err != nil {
			logger.Error("failed to notify message recipient", "message_id", m.ID, "error", err)
		}
	}
	return m, nil
}

func (s *service) Conversation(ctx context.Context, userID, peerID int, page api.Page) ([]Message, error) {
	return s.repo.ListConversation(ctx, userID, peerID, page)
}

func (s *service) Threads(ctx context.Context, userID int) ([]Thread, error) {
	return s.repo.ListThreads(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, userID, peerID int) (int64, error) {
	return s.repo.MarkRead(ctx, userID, peerID)
}

func (s *service) Unread(ctx context.Context, userID int) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *service) Subscribe(ctx context.Context, userID int) (<-chan Message, func() error, error) {
	if s.broker == nil {
		return nil, nil, ErrStreamUnavailable
	}
	ch, closeFn := s.broker.Subscribe(ctx, userID)
	return ch, closeFn, nil
}
