package message

import (
	"context"
	"errors"

	"ptstudio/internal/api"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrRecipientNotFound = errors.New("recipient not found")

const messageColumns = `id, sender_id, recipient_id, body, read_at, created_at`

type Repository interface {
	Create(ctx context.Context, senderID, recipientID int, body string) (*Message, error)
	ListConversation(ctx context.Context, userID, peerID int, page api.Page) ([]Message, error)
	ListThreads(ctx context.Context, userID int) ([]Thread, error)
	MarkRead(ctx context.Context, userID, peerID int) (int64, error)
	CountUnread(ctx context.Context, userID int) (int, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, senderID, recipientID int, body string) (*Message, error) {
	var m Message
	err := r.db.GetContext(ctx, &m, `
		INSERT INTO messages (sender_id, recipient_id, body)
		VALUES ($1, $2, $3)
		RETURNING `+messageColumns,
		senderID, recipientID, body)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return nil, ErrRecipientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListConversation pages back from the newest message and returns the page
// oldest first.
func (r *repository) ListConversation(ctx context.Context, userID, peerID int, page api.Page) ([]Message, error) {
	page = page.Normalize()
	messages := []Message{}
	err := r.db.SelectContext(ctx, &messages, `
		SELECT `+messageColumns+` FROM (
			SELECT `+messageColumns+`
			FROM messages
			WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
			ORDER BY created_at DESC, id DESC
			LIMIT $3 OFFSET $4
		) recent
		ORDER BY created_at ASC, id ASC
	`, userID, peerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *repository) ListThreads(ctx context.Context, userID int) ([]Thread, error) {
	threads := []Thread{}
	err := r.db.SelectContext(ctx, &threads, `
		SELECT * FROM (
			SELECT DISTINCT ON (m.peer_id)
			       m.peer_id, p.full_name AS peer_name, m.body AS last_body, m.created_at AS last_at,
			       (SELECT COUNT(*) FROM messages u
			        WHERE u.sender_id = m.peer_id AND u.recipient_id = $1 AND u.read_at IS NULL) AS unread
			FROM (
				SELECT body, created_at, id,
				       CASE WHEN sender_id = $1 THEN recipient_id ELSE sender_id END AS peer_id
				FROM messages
				WHERE sender_id = $1 OR recipient_id = $1
			) m
			JOIN profiles p ON p.id = m.peer_id
			ORDER BY m.peer_id, m.created_at DESC, m.id DESC
		) threads
		ORDER BY last_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *repository) MarkRead(ctx context.Context, userID, peerID int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE messages SET read_at = NOW()
		WHERE recipient_id = $1 AND sender_id = $2 AND read_at IS NULL
	`, userID, peerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) CountUnread(ctx context.Context, userID int) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND read_at IS NULL`, userID)
	return n, err
}
