package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/domain/entity"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// JWTService issues HS256 tokens carrying {id, username, role}. The signing
// secret is injected from configuration; there is no fallback default.
type JWTService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewJWTService(secret string, tokenTTL time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &JWTService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}, nil
}

func (s *JWTService) GenerateToken(claims outbound.TokenClaims) (string, error) {
	now := time.Now()
	tokenClaims := jwt.MapClaims{
		"id":       claims.UserID,
		"username": claims.Username,
		"role":     string(claims.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*outbound.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	roleStr, ok := claims["role"].(string)
	if !ok || !entity.ValidRole(entity.Role(roleStr)) {
		return nil, ErrInvalidToken
	}

	return &outbound.TokenClaims{
		UserID:   userID,
		Username: username,
		Role:     entity.Role(roleStr),
	}, nil
}

var _ outbound.TokenService = (*JWTService)(nil)
