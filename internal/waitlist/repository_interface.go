package waitlist

import "context"

type Repository interface {
	Create(ctx context.Context, userID, slotID int) (*Entry, error)
	Leave(ctx context.Context, userID, slotID int) error
	ListByUser(ctx context.Context, userID int) ([]EntryWithSlot, error)
	// PromoteFirst marks the oldest waiting entry of the slot as notified.
	PromoteFirst(ctx context.Context, slotID int) (*Promoted, error)
}
