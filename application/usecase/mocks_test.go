package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/domain/entity"
	"github.com/seastock/seastock/infrastructure/service/logger"
)

// Mock implementations shared by the use case tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(claims outbound.TokenClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(token string) (*outbound.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.TokenClaims), args.Error(1)
}

type MockPasswordVerifier struct {
	mock.Mock
}

func (m *MockPasswordVerifier) VerifyPassword(password, hash string) (bool, error) {
	args := m.Called(password, hash)
	return args.Bool(0), args.Error(1)
}

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) CreateWithItems(ctx context.Context, req *entity.Request, log *entity.AuditLogEntry) (int64, error) {
	args := m.Called(ctx, req, log)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestRepository) Review(ctx context.Context, req *entity.Request, log *entity.AuditLogEntry) error {
	args := m.Called(ctx, req, log)
	return args.Error(0)
}

func (m *MockRequestRepository) FindByID(ctx context.Context, id int64) (*entity.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Request), args.Error(1)
}

func (m *MockRequestRepository) FindAll(ctx context.Context) ([]*entity.Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Request), args.Error(1)
}

func (m *MockRequestRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Request, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Request), args.Error(1)
}

func (m *MockRequestRepository) FindLogs(ctx context.Context, requestID int64) ([]*entity.AuditLogEntry, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AuditLogEntry), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindAll(ctx context.Context) ([]*entity.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) FindByRoleCategory(ctx context.Context, role string) ([]*entity.CatalogItem, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) FindByCategory(ctx context.Context, category string) ([]*entity.CatalogItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) FindByID(ctx context.Context, id int64) (*entity.CatalogItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) SearchByName(ctx context.Context, term string) ([]*entity.CatalogItem, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) Create(ctx context.Context, item *entity.CatalogItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

// nopLogger discards everything; the use case tests assert behavior, not logs.
type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, message string, fields map[string]interface{})  {}
func (nopLogger) Warn(ctx context.Context, message string, fields map[string]interface{})  {}
func (nopLogger) Debug(ctx context.Context, message string, fields map[string]interface{}) {}
func (nopLogger) Error(ctx context.Context, message string, err error, fields map[string]interface{}) {
}
func (n nopLogger) WithFields(fields map[string]interface{}) logger.Logger { return n }
