package inbound

import (
	"context"

	"github.com/seastock/seastock/domain/entity"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// AuthUseCase authenticates users and exposes their public profile.
type AuthUseCase interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Profile(ctx context.Context, userID string) (*entity.User, error)
}
