package pack

import (
	"context"

	"ptstudio/internal/credits"
)

type Repository interface {
	Create(ctx context.Context, p Pack) (*Pack, error)
	Update(ctx context.Context, p Pack) (*Pack, error)
	GetByID(ctx context.Context, id int) (*Pack, error)
	List(ctx context.Context, activeOnly bool) ([]Pack, error)
	// Purchase records a succeeded payment and credits the buyer in one transaction.
	Purchase(ctx context.Context, userID int, p Pack, reference string) (*Payment, *credits.Transaction, error)
	ListPayments(ctx context.Context, userID int) ([]Payment, error)
}
