package message

import "time"

type Message struct {
	ID          int        `db:"id" json:"id"`
	SenderID    int        `db:"sender_id" json:"sender_id"`
	RecipientID int        `db:"recipient_id" json:"recipient_id"`
	Body        string     `db:"body" json:"body"`
	ReadAt      *time.Time `db:"read_at" json:"read_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// Thread is the latest message exchanged with one peer.
type Thread struct {
	PeerID   int       `db:"peer_id" json:"peer_id"`
	PeerName string    `db:"peer_name" json:"peer_name"`
	LastBody string    `db:"last_body" json:"last_body"`
	LastAt   time.Time `db:"last_at" json:"last_at"`
	Unread   int       `db:"unread" json:"unread"`
}

type SendRequest struct {
	RecipientID int    `json:"recipient_id" binding:"required"`
	Body        string `json:"body" binding:"required,max=4000"`
}

type UnreadResponse struct {
	Unread int `json:"unread"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
