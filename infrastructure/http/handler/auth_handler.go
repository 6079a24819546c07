package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/seastock/seastock/application/port/inbound"
	"github.com/seastock/seastock/domain/entity"
	"github.com/seastock/seastock/infrastructure/http/middleware"
	"github.com/seastock/seastock/infrastructure/http/response"
)

type AuthHandler struct {
	authUseCase    inbound.AuthUseCase
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
}

func NewAuthHandler(
	authUseCase inbound.AuthUseCase,
	authMiddleware *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
) *AuthHandler {
	return &AuthHandler{
		authUseCase:    authUseCase,
		authMiddleware: authMiddleware,
		rateLimit:      rateLimit,
	}
}

func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/login", h.rateLimit.RateLimit(h.Login)).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/profile", h.authMiddleware.RequireAuth(h.Profile)).Methods(http.MethodGet)
}

type loginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *entity.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req inbound.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	res, err := h.authUseCase.Login(r.Context(), req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Token:   res.Token,
		User:    res.User,
	})
}

type profileResponse struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	user, err := h.authUseCase.Profile(r.Context(), claims.UserID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, profileResponse{
		Success: true,
		User:    user,
	})
}
