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

type CatalogHandler struct {
	catalogUseCase inbound.CatalogUseCase
	authMiddleware *middleware.AuthMiddleware
}

func NewCatalogHandler(catalogUseCase inbound.CatalogUseCase, authMiddleware *middleware.AuthMiddleware) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		authMiddleware: authMiddleware,
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	auth := h.authMiddleware

	router.HandleFunc("/api/items", auth.RequireAuth(h.ListItems)).Methods(http.MethodGet)
	router.HandleFunc("/api/items/search", auth.RequireAuth(h.SearchItems)).Methods(http.MethodGet)
	router.HandleFunc("/api/items/role/{role}", auth.RequireAuth(h.ListItemsByRole)).Methods(http.MethodGet)
	router.HandleFunc("/api/items/category/{category}", auth.RequireAuth(h.ListItemsByCategory)).Methods(http.MethodGet)
	router.HandleFunc("/api/items", auth.RequireRoles(entity.ReviewerRoles, h.AddItem)).Methods(http.MethodPost)
}

type itemsResponse struct {
	Success bool                  `json:"success"`
	Items   []*entity.CatalogItem `json:"items"`
}

func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogUseCase.List(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, itemsResponse{Success: true, Items: items})
}

func (h *CatalogHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogUseCase.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, itemsResponse{Success: true, Items: items})
}

func (h *CatalogHandler) ListItemsByRole(w http.ResponseWriter, r *http.Request) {
	role := mux.Vars(r)["role"]
	items, err := h.catalogUseCase.ListByRoleCategory(r.Context(), role)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, itemsResponse{Success: true, Items: items})
}

func (h *CatalogHandler) ListItemsByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	items, err := h.catalogUseCase.ListByCategory(r.Context(), category)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, itemsResponse{Success: true, Items: items})
}

type addItemResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ItemID  int64  `json:"itemId"`
}

func (h *CatalogHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req inbound.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	id, err := h.catalogUseCase.Create(r.Context(), req, claims.UserID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, addItemResponse{
		Success: true,
		Message: "Item added successfully",
		ItemID:  id,
	})
}
