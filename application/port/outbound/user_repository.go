package outbound

import (
	"context"
	"errors"

	"github.com/seastock/seastock/domain/entity"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository provides access to identity records. Lookups only ever
// return active users; deactivated accounts behave as absent.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
