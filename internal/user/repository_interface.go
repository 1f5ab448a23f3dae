package user

import (
	"context"

	"ptstudio/internal/api"
)

type Repository interface {
	Create(ctx context.Context, p Profile) (*Profile, error)
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	FindByID(ctx context.Context, id int) (*Profile, error)
	UpdateProfile(ctx context.Context, id int, fullName, phone *string) (*Profile, error)
	// SetAvatar stores url and returns the previous avatar url, if any.
	SetAvatar(ctx context.Context, id int, url string) (string, error)
	GetClientProfile(ctx context.Context, userID int) (*ClientProfile, error)
	UpsertClientProfile(ctx context.Context, cp ClientProfile) (*ClientProfile, error)
	ListClients(ctx context.Context, query string, page api.Page) ([]ClientSummary, error)
	GetBalance(ctx context.Context, userID int) (int, error)
}
