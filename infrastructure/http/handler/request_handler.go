package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/seastock/seastock/application/port/inbound"
	"github.com/seastock/seastock/domain/entity"
	"github.com/seastock/seastock/infrastructure/http/middleware"
	"github.com/seastock/seastock/infrastructure/http/response"
)

type RequestHandler struct {
	requestUseCase inbound.RequestUseCase
	authMiddleware *middleware.AuthMiddleware
}

func NewRequestHandler(requestUseCase inbound.RequestUseCase, authMiddleware *middleware.AuthMiddleware) *RequestHandler {
	return &RequestHandler{
		requestUseCase: requestUseCase,
		authMiddleware: authMiddleware,
	}
}

func (h *RequestHandler) RegisterRoutes(router *mux.Router) {
	auth := h.authMiddleware

	router.HandleFunc("/api/requests/submit", auth.RequireRoles(entity.SubmitterRoles, h.SubmitRequest)).Methods(http.MethodPost)
	router.HandleFunc("/api/requests/my", auth.RequireAuth(h.MyRequests)).Methods(http.MethodGet)
	router.HandleFunc("/api/requests/{id:[0-9]+}", auth.RequireAuth(h.GetRequest)).Methods(http.MethodGet)
	router.HandleFunc("/api/requests", auth.RequireRoles(entity.ReviewerRoles, h.AllRequests)).Methods(http.MethodGet)
	router.HandleFunc("/api/requests/{id:[0-9]+}/status", auth.RequireRoles(entity.ReviewerRoles, h.UpdateRequestStatus)).Methods(http.MethodPut)
}

type submitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID int64  `json:"requestId"`
}

func (h *RequestHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var input inbound.SubmitRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	// The requester is always the authenticated caller; a user_id in the
	// body is ignored so nobody can submit on someone else's behalf.
	id, err := h.requestUseCase.Submit(r.Context(), claims.UserID, input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, submitResponse{
		Success:   true,
		Message:   "Request submitted successfully",
		RequestID: id,
	})
}

type requestsResponse struct {
	Success  bool              `json:"success"`
	Requests []*entity.Request `json:"requests"`
}

func (h *RequestHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	reqs, err := h.requestUseCase.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, requestsResponse{Success: true, Requests: reqs})
}

func (h *RequestHandler) AllRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.requestUseCase.ListAll(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, requestsResponse{Success: true, Requests: reqs})
}

type requestResponse struct {
	Success bool            `json:"success"`
	Request *entity.Request `json:"request"`
}

func (h *RequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid request ID")
		return
	}

	req, err := h.requestUseCase.GetByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, requestResponse{Success: true, Request: req})
}

type updateStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *RequestHandler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid request ID")
		return
	}

	var input inbound.ReviewRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.requestUseCase.Review(r.Context(), id, claims.UserID, input); err != nil {
		response.FromError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, updateStatusResponse{
		Success: true,
		Message: "Request " + string(input.Status) + " successfully",
	})
}
