package user

import (
	"context"
)

// ListFilter scopes user listings. Roles is always set by the service, never by the client.
type ListFilter struct {
	Roles []Role
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]User, error)
	GetPositionForUpdate(ctx context.Context, id string) (*string, error)
	UpdatePosition(ctx context.Context, id string, position string) error
	UpdatePassword(ctx context.Context, id, passwordHash string, mustReset bool) error
}
