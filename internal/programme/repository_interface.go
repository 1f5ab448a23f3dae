package programme

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p Programme) (*Programme, error)
	GetByID(ctx context.Context, id int) (*Programme, error)
	List(ctx context.Context) ([]Programme, error)
	Assign(ctx context.Context, programmeID, userID int, startsOn time.Time) (*Assignment, error)
	ListAssigned(ctx context.Context, userID int) ([]AssignedProgramme, error)
}
