package notification

import "context"

type Repository interface {
	Create(ctx context.Context, userID int, kind, title, body string) (*Notification, error)
	ListByUser(ctx context.Context, userID, limit, offset int) ([]Notification, error)
	CountUnread(ctx context.Context, userID int) (int, error)
	MarkRead(ctx context.Context, userID, id int) error
	MarkAllRead(ctx context.Context, userID int) (int64, error)
}
