package usecase

import (
	"context"
	"errors"

	"github.com/seastock/seastock/application/port/inbound"
	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/domain/entity"
	"github.com/seastock/seastock/infrastructure/service/logger"
	"github.com/seastock/seastock/pkg/apperror"
)

type AuthUseCase struct {
	userRepo     outbound.UserRepository
	tokenService outbound.TokenService
	verifier     outbound.PasswordVerifier
	logger       logger.Logger
}

func NewAuthUseCase(
	userRepo outbound.UserRepository,
	tokenService outbound.TokenService,
	verifier outbound.PasswordVerifier,
	log logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
		verifier:     verifier,
		logger:       log,
	}
}

// Login authenticates a username/password pair and issues a bearer token.
// "user not found" and "wrong password" collapse into the same response so
// usernames cannot be enumerated.
func (uc *AuthUseCase) Login(ctx context.Context, req inbound.LoginRequest) (*inbound.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperror.NewValidation("username and password are required")
	}

	user, err := uc.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			uc.logger.Warn(ctx, "login failed: unknown username", map[string]interface{}{
				"username": req.Username,
			})
			return nil, apperror.NewUnauthorized("Invalid username or password")
		}
		uc.logger.Error(ctx, "login failed: user lookup", err, nil)
		return nil, apperror.ErrInternalServer
	}

	ok, err := uc.verifier.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		uc.logger.Error(ctx, "login failed: password verification", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, apperror.ErrInternalServer
	}
	if !ok {
		uc.logger.Warn(ctx, "login failed: wrong password", map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, apperror.NewUnauthorized("Invalid username or password")
	}

	token, err := uc.tokenService.GenerateToken(outbound.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		uc.logger.Error(ctx, "login failed: token issuance", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, apperror.ErrInternalServer
	}

	uc.logger.Info(ctx, "user logged in", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})

	return &inbound.LoginResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// Profile returns the active user's public fields. A user deactivated after
// token issuance resolves to NotFound.
func (uc *AuthUseCase) Profile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return nil, apperror.NewNotFound("User not found")
		}
		uc.logger.Error(ctx, "profile lookup failed", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, apperror.ErrInternalServer
	}
	return user.Public(), nil
}

var _ inbound.AuthUseCase = (*AuthUseCase)(nil)
