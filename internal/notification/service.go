package notification

import (
	"context"

	"ptstudio/internal/api"
	"ptstudio/internal/logger"
)

type Service interface {
	Notify(ctx context.Context, userID int, kind, title, body string) error
	List(ctx context.Context, userID int, page api.Page) (*ListResponse, error)
	MarkRead(ctx context.Context, userID, id int) error
	MarkAllRead(ctx context.Context, userID int) (int64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, userID int, kind, title, body string) error {
	if _, err := s.repo.Create(ctx, userID, kind, title, body); err != nil {
		logger.Error("failed to store notification", "user_id", userID, "kind", kind, "error", err)
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, userID int, page api.Page) (*ListResponse, error) {
	page = page.Normalize()
	items, err := s.repo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ListResponse{Items: items, Unread: unread}, nil
}

func (s *service) MarkRead(ctx context.Context, userID, id int) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *service) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}
