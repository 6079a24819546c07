package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/domain/entity"
	"github.com/seastock/seastock/infrastructure/http/response"
)

type claimsContextKey struct{}

// AuthMiddleware is the two-stage gate applied to every protected route:
// RequireAuth validates the bearer credential, RequireRoles enforces the
// route's declarative role set. Handlers and use cases never re-check roles.
type AuthMiddleware struct {
	tokenService outbound.TokenService
}

func NewAuthMiddleware(tokenService outbound.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "No token, authorization denied")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.tokenService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Token is not valid")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireRoles wraps RequireAuth and rejects callers whose role is outside
// the allowed set.
func (m *AuthMiddleware) RequireRoles(roles []entity.Role, next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserClaims(r.Context())
		if claims == nil {
			response.Unauthorized(w, "Authentication required")
			return
		}
		if !roleAllowed(claims.Role, roles) {
			response.Forbidden(w, "Access denied. Insufficient permissions.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func roleAllowed(role entity.Role, allowed []entity.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// GetUserClaims retrieves the authenticated caller's claims from context.
func GetUserClaims(ctx context.Context) *outbound.TokenClaims {
	if claims, ok := ctx.Value(claimsContextKey{}).(*outbound.TokenClaims); ok {
		return claims
	}
	return nil
}
