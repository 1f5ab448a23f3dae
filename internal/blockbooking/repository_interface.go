package blockbooking

import "context"

type Repository interface {
	Create(ctx context.Context, r Rule) (*Rule, error)
	GetByID(ctx context.Context, id int) (*Rule, error)
	List(ctx context.Context, activeOnly bool) ([]Rule, error)
	SetActive(ctx context.Context, id int, active bool) error
	// OccurrenceStatus is the status of the latest booking the rule made on
	// the slot, or "" when it never booked it.
	OccurrenceStatus(ctx context.Context, ruleID, slotID int) (string, error)
}
