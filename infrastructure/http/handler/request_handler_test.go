package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/seastock/seastock/application/port/inbound"
	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/domain/entity"
	"github.com/seastock/seastock/infrastructure/http/middleware"
	"github.com/seastock/seastock/infrastructure/service/jwt"
	"github.com/seastock/seastock/pkg/apperror"
)

type MockRequestUseCase struct {
	mock.Mock
}

func (m *MockRequestUseCase) Submit(ctx context.Context, requesterID string, input inbound.SubmitRequestInput) (int64, error) {
	args := m.Called(ctx, requesterID, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestUseCase) Review(ctx context.Context, requestID int64, reviewerID string, input inbound.ReviewRequestInput) error {
	args := m.Called(ctx, requestID, reviewerID, input)
	return args.Error(0)
}

func (m *MockRequestUseCase) GetByID(ctx context.Context, requestID int64) (*entity.Request, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Request), args.Error(1)
}

func (m *MockRequestUseCase) ListAll(ctx context.Context) ([]*entity.Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Request), args.Error(1)
}

func (m *MockRequestUseCase) ListForUser(ctx context.Context, userID string) ([]*entity.Request, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Request), args.Error(1)
}

func setupRequestRouter(t *testing.T) (*mux.Router, *MockRequestUseCase, *jwt.JWTService) {
	t.Helper()
	tokenService, err := jwt.NewJWTService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("Failed to create JWT service: %v", err)
	}

	uc := new(MockRequestUseCase)
	router := mux.NewRouter()
	NewRequestHandler(uc, middleware.NewAuthMiddleware(tokenService)).RegisterRoutes(router)
	return router, uc, tokenService
}

func bearerFor(t *testing.T, service *jwt.JWTService, userID string, role entity.Role) string {
	t.Helper()
	token, err := service.GenerateToken(outbound.TokenClaims{UserID: userID, Username: "tester", Role: role})
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return "Bearer " + token
}

func TestRequestHandler_Submit(t *testing.T) {
	router, uc, tokenService := setupRequestRouter(t)

	body := `{"trip_id":4,"general_comment":"restock","items":[{"item_id":1,"quantity":3,"unit":"kg"}]}`
	tripID := int64(4)
	uc.On("Submit", mock.Anything, "chef-1", inbound.SubmitRequestInput{
		TripID:         &tripID,
		GeneralComment: "restock",
		Items:          []inbound.SubmitItemInput{{ItemID: 1, Quantity: 3, Unit: "kg"}},
	}).Return(int64(42), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/requests/submit", bytes.NewBufferString(body))
	req.Header.Set("Authorization", bearerFor(t, tokenService, "chef-1", entity.RoleChef))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp submitResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(42), resp.RequestID)
	uc.AssertExpectations(t)
}

func TestRequestHandler_Submit_ManagerForbidden(t *testing.T) {
	router, uc, tokenService := setupRequestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/requests/submit", bytes.NewBufferString(`{}`))
	req.Header.Set("Authorization", bearerFor(t, tokenService, "manager-1", entity.RoleManager))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestHandler_Submit_InvalidBody(t *testing.T) {
	router, uc, tokenService := setupRequestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/requests/submit", bytes.NewBufferString(`{not json`))
	req.Header.Set("Authorization", bearerFor(t, tokenService, "chef-1", entity.RoleChef))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestHandler_MyRequests(t *testing.T) {
	router, uc, tokenService := setupRequestRouter(t)

	uc.On("ListForUser", mock.Anything, "chef-1").Return([]*entity.Request{
		{ID: 1, UserID: "chef-1", Status: entity.RequestStatusPending},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/requests/my", nil)
	req.Header.Set("Authorization", bearerFor(t, tokenService, "chef-1", entity.RoleChef))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp requestsResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Requests, 1)
}

func TestRequestHandler_AllRequests_RoleGate(t *testing.T) {
	router, uc, tokenService := setupRequestRouter(t)

	uc.On("ListAll", mock.Anything).Return([]*entity.Request{}, nil)

	// Manager can list everything.
	req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	req.Header.Set("Authorization", bearerFor(t, tokenService, "manager-1", entity.RoleManager))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Crew cannot.
	req = httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	req.Header.Set("Authorization", bearerFor(t, tokenService, "chef-1", entity.RoleChef))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Anonymous callers get 401.
	req = httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestHandler_GetRequest_NotFound(t *testing.T) {
	router, uc, tokenService := setupRequestRouter(t)

	uc.On("GetByID", mock.Anything, int64(99)).Return(nil, apperror.NewNotFound("Request not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/requests/99", nil)
	req.Header.Set("Authorization", bearerFor(t, tokenService, "chef-1", entity.RoleChef))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestHandler_UpdateStatus(t *testing.T) {
	router, uc, tokenService := setupRequestRouter(t)

	uc.On("Review", mock.Anything, int64(42), "manager-1", inbound.ReviewRequestInput{
		Status:         entity.RequestStatusApproved,
		ManagerComment: "go ahead",
	}).Return(nil)

	body := `{"status":"approved","manager_comment":"go ahead"}`
	req := httptest.NewRequest(http.MethodPut, "/api/requests/42/status", bytes.NewBufferString(body))
	req.Header.Set("Authorization", bearerFor(t, tokenService, "manager-1", entity.RoleManager))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp updateStatusResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Request approved successfully", resp.Message)
	uc.AssertExpectations(t)
}

func TestRequestHandler_UpdateStatus_Conflict(t *testing.T) {
	router, uc, tokenService := setupRequestRouter(t)

	uc.On("Review", mock.Anything, int64(42), "manager-1", mock.Anything).
		Return(apperror.NewConflict("Request has already been reviewed"))

	body := `{"status":"denied"}`
	req := httptest.NewRequest(http.MethodPut, "/api/requests/42/status", bytes.NewBufferString(body))
	req.Header.Set("Authorization", bearerFor(t, tokenService, "manager-1", entity.RoleManager))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Request has already been reviewed", envelope.Message)
}

func TestRequestHandler_UpdateStatus_CrewForbidden(t *testing.T) {
	router, uc, tokenService := setupRequestRouter(t)

	body := `{"status":"approved"}`
	req := httptest.NewRequest(http.MethodPut, "/api/requests/42/status", bytes.NewBufferString(body))
	req.Header.Set("Authorization", bearerFor(t, tokenService, "chef-1", entity.RoleChef))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	uc.AssertNotCalled(t, "Review", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
