package jwt

import (
	"testing"
	"time"

	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/domain/entity"
)

func TestJWTService(t *testing.T) {
	service, err := NewJWTService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("Failed to create JWT service: %v", err)
	}

	claims := outbound.TokenClaims{
		UserID:   "user-123",
		Username: "ahmed",
		Role:     entity.RoleChef,
	}

	t.Run("GenerateToken", func(t *testing.T) {
		token, err := service.GenerateToken(claims)
		if err != nil {
			t.Errorf("Failed to generate token: %v", err)
		}
		if token == "" {
			t.Error("Token should not be empty")
		}
	})

	t.Run("ValidateToken", func(t *testing.T) {
		tokenString, err := service.GenerateToken(claims)
		if err != nil {
			t.Fatalf("Failed to generate token: %v", err)
		}

		got, err := service.ValidateToken(tokenString)
		if err != nil {
			t.Fatalf("Failed to validate token: %v", err)
		}
		if got.UserID != "user-123" {
			t.Errorf("Expected user ID 'user-123', got '%s'", got.UserID)
		}
		if got.Username != "ahmed" {
			t.Errorf("Expected username 'ahmed', got '%s'", got.Username)
		}
		if got.Role != entity.RoleChef {
			t.Errorf("Expected role %s, got %s", entity.RoleChef, got.Role)
		}
	})

	t.Run("ValidateInvalidToken", func(t *testing.T) {
		_, err := service.ValidateToken("invalid-token")
		if err == nil {
			t.Error("Should fail to validate invalid token")
		}
	})

	t.Run("ValidateTamperedSecret", func(t *testing.T) {
		other, err := NewJWTService("other-secret", time.Hour)
		if err != nil {
			t.Fatalf("Failed to create JWT service: %v", err)
		}
		token, err := other.GenerateToken(claims)
		if err != nil {
			t.Fatalf("Failed to generate token: %v", err)
		}

		if _, err := service.ValidateToken(token); err == nil {
			t.Error("Should fail to validate token signed with a different secret")
		}
	})

	t.Run("ValidateExpiredToken", func(t *testing.T) {
		shortService, err := NewJWTService("test-secret", -time.Minute)
		if err != nil {
			t.Fatalf("Failed to create JWT service: %v", err)
		}

		token, err := shortService.GenerateToken(claims)
		if err != nil {
			t.Fatalf("Failed to generate token: %v", err)
		}

		_, err = shortService.ValidateToken(token)
		if err == nil {
			t.Error("Should fail to validate expired token")
		}
		if err != ErrTokenExpired {
			t.Errorf("Expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("ValidateUnknownRole", func(t *testing.T) {
		token, err := service.GenerateToken(outbound.TokenClaims{
			UserID:   "user-123",
			Username: "ahmed",
			Role:     entity.Role("pirate"),
		})
		if err != nil {
			t.Fatalf("Failed to generate token: %v", err)
		}

		if _, err := service.ValidateToken(token); err == nil {
			t.Error("Should fail to validate token carrying an unknown role")
		}
	})
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	if _, err := NewJWTService("", time.Hour); err == nil {
		t.Error("Expected error when creating service without a secret")
	}
}
