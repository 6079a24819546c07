package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/seastock/seastock/application/port/inbound"
	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/domain/entity"
	"github.com/seastock/seastock/pkg/apperror"
)

func TestRequestUseCase_Submit_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	tripID := int64(4)
	input := inbound.SubmitRequestInput{
		TripID:         &tripID,
		GeneralComment: "restock before departure",
		Items: []inbound.SubmitItemInput{
			{ItemID: 1, Quantity: 3, Unit: "kg"},
			{ItemID: 2, Quantity: 1, Unit: "bottle", ItemNotes: "the good one"},
		},
	}

	repo.On("CreateWithItems", ctx,
		mock.MatchedBy(func(req *entity.Request) bool {
			return req.UserID == "user-123" &&
				req.Status == entity.RequestStatusPending &&
				len(req.Items) == 2 &&
				req.Items[1].ItemNotes == "the good one"
		}),
		mock.MatchedBy(func(log *entity.AuditLogEntry) bool {
			return log.Action == entity.AuditActionSubmitted && log.PerformedBy == "user-123"
		}),
	).Return(int64(42), nil)

	id, err := uc.Submit(ctx, "user-123", input)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	repo.AssertExpectations(t)
}

func TestRequestUseCase_Submit_NoItems(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	id, err := uc.Submit(ctx, "user-123", inbound.SubmitRequestInput{})

	assert.Error(t, err)
	assert.Zero(t, id)
	assert.True(t, apperror.IsStatus(err, http.StatusBadRequest))
	assert.Equal(t, "At least one item is required", apperror.MapError(err).Message)
	repo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestUseCase_Submit_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	input := inbound.SubmitRequestInput{
		Items: []inbound.SubmitItemInput{{ItemID: 1, Quantity: 0, Unit: "kg"}},
	}

	id, err := uc.Submit(ctx, "user-123", input)

	assert.Error(t, err)
	assert.Zero(t, id)
	assert.True(t, apperror.IsStatus(err, http.StatusBadRequest))
	assert.Equal(t, "Quantity must be a positive integer", apperror.MapError(err).Message)
	repo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestUseCase_Submit_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	input := inbound.SubmitRequestInput{
		Items: []inbound.SubmitItemInput{{ItemID: 1, Quantity: 1, Unit: "kg"}},
	}
	repo.On("CreateWithItems", ctx, mock.Anything, mock.Anything).Return(int64(0), errors.New("tx failed"))

	id, err := uc.Submit(ctx, "user-123", input)

	assert.Error(t, err)
	assert.Zero(t, id)
	assert.True(t, apperror.IsStatus(err, http.StatusInternalServerError))
	assert.NotContains(t, apperror.MapError(err).Message, "tx failed")
}

func pendingRequest(id int64) *entity.Request {
	return &entity.Request{
		ID:     id,
		UserID: "user-123",
		Status: entity.RequestStatusPending,
		Items:  []entity.RequestLineItem{{ItemID: 1, Quantity: 1, Unit: "kg"}},
	}
}

func TestRequestUseCase_Review_Approve(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	repo.On("FindByID", ctx, int64(42)).Return(pendingRequest(42), nil)
	repo.On("Review", ctx,
		mock.MatchedBy(func(req *entity.Request) bool {
			return req.ID == 42 &&
				req.Status == entity.RequestStatusApproved &&
				req.ReviewedBy != nil && *req.ReviewedBy == "manager-1" &&
				req.ManagerComment != nil && *req.ManagerComment == "approved for charter"
		}),
		mock.MatchedBy(func(log *entity.AuditLogEntry) bool {
			return log.RequestID == 42 &&
				log.Action == entity.AuditActionApproved &&
				log.PerformedBy == "manager-1"
		}),
	).Return(nil)

	err := uc.Review(ctx, 42, "manager-1", inbound.ReviewRequestInput{
		Status:         entity.RequestStatusApproved,
		ManagerComment: "approved for charter",
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRequestUseCase_Review_Deny(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	repo.On("FindByID", ctx, int64(7)).Return(pendingRequest(7), nil)
	repo.On("Review", ctx, mock.Anything,
		mock.MatchedBy(func(log *entity.AuditLogEntry) bool {
			return log.Action == entity.AuditActionDenied
		}),
	).Return(nil)

	err := uc.Review(ctx, 7, "manager-1", inbound.ReviewRequestInput{
		Status:         entity.RequestStatusDenied,
		ManagerComment: "over budget",
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRequestUseCase_Review_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	for _, status := range []entity.RequestStatus{entity.RequestStatusPending, "cancelled", ""} {
		err := uc.Review(ctx, 42, "manager-1", inbound.ReviewRequestInput{Status: status})
		assert.Error(t, err)
		assert.True(t, apperror.IsStatus(err, http.StatusBadRequest))
	}
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestRequestUseCase_Review_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	repo.On("FindByID", ctx, int64(99)).Return(nil, outbound.ErrRequestNotFound)

	err := uc.Review(ctx, 99, "manager-1", inbound.ReviewRequestInput{Status: entity.RequestStatusApproved})

	assert.Error(t, err)
	assert.True(t, apperror.IsStatus(err, http.StatusNotFound))
}

func TestRequestUseCase_Review_AlreadyReviewed(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	reviewed := pendingRequest(42)
	reviewer := "manager-0"
	reviewed.Status = entity.RequestStatusApproved
	reviewed.ReviewedBy = &reviewer
	repo.On("FindByID", ctx, int64(42)).Return(reviewed, nil)

	err := uc.Review(ctx, 42, "manager-1", inbound.ReviewRequestInput{Status: entity.RequestStatusDenied})

	assert.Error(t, err)
	assert.True(t, apperror.IsStatus(err, http.StatusConflict))
	assert.Equal(t, "Request has already been reviewed", apperror.MapError(err).Message)
	repo.AssertNotCalled(t, "Review", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestUseCase_Review_LostRace(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	// The read sees pending but another reviewer commits first; the guarded
	// update reports not-pending and the caller gets a Conflict.
	repo.On("FindByID", ctx, int64(42)).Return(pendingRequest(42), nil)
	repo.On("Review", ctx, mock.Anything, mock.Anything).Return(outbound.ErrRequestNotPending)

	err := uc.Review(ctx, 42, "manager-1", inbound.ReviewRequestInput{Status: entity.RequestStatusApproved})

	assert.Error(t, err)
	assert.True(t, apperror.IsStatus(err, http.StatusConflict))
	repo.AssertExpectations(t)
}

func TestRequestUseCase_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	repo.On("FindByID", ctx, int64(5)).Return(pendingRequest(5), nil)

	req, err := uc.GetByID(ctx, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), req.ID)
}

func TestRequestUseCase_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	repo.On("FindByID", ctx, int64(5)).Return(nil, outbound.ErrRequestNotFound)

	req, err := uc.GetByID(ctx, 5)

	assert.Error(t, err)
	assert.Nil(t, req)
	assert.True(t, apperror.IsStatus(err, http.StatusNotFound))
}

func TestRequestUseCase_ListForUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	repo.On("FindByUser", ctx, "user-123").Return([]*entity.Request{pendingRequest(1), pendingRequest(2)}, nil)

	reqs, err := uc.ListForUser(ctx, "user-123")

	assert.NoError(t, err)
	assert.Len(t, reqs, 2)
}

func TestRequestUseCase_ListAll_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepository)
	uc := NewRequestUseCase(repo, nopLogger{})

	repo.On("FindAll", ctx).Return(nil, errors.New("db down"))

	reqs, err := uc.ListAll(ctx)

	assert.Error(t, err)
	assert.Nil(t, reqs)
	assert.True(t, apperror.IsStatus(err, http.StatusInternalServerError))
}
