package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/seastock/seastock/application/port/inbound"
	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/domain/entity"
	"github.com/seastock/seastock/infrastructure/service/logger"
	"github.com/seastock/seastock/pkg/apperror"
)

// RequestUseCase implements the request lifecycle. Role checks live in the
// HTTP middleware; by the time a call lands here the caller is already
// authorized for the operation.
type RequestUseCase struct {
	requestRepo outbound.RequestRepository
	logger      logger.Logger
}

func NewRequestUseCase(requestRepo outbound.RequestRepository, log logger.Logger) *RequestUseCase {
	return &RequestUseCase{
		requestRepo: requestRepo,
		logger:      log,
	}
}

// Submit creates a pending request with its line items and the "submitted"
// audit entry. The repository performs the three writes in one transaction;
// a request never persists without at least one line item and its audit row.
func (uc *RequestUseCase) Submit(ctx context.Context, requesterID string, input inbound.SubmitRequestInput) (int64, error) {
	items := make([]entity.RequestLineItem, 0, len(input.Items))
	for _, in := range input.Items {
		items = append(items, entity.RequestLineItem{
			ItemID:    in.ItemID,
			Quantity:  in.Quantity,
			Unit:      in.Unit,
			ItemNotes: in.ItemNotes,
		})
	}

	req, err := entity.NewRequest(requesterID, input.TripID, input.GeneralComment, items)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNoLineItems):
			return 0, apperror.NewValidation("At least one item is required")
		case errors.Is(err, entity.ErrInvalidQuantity):
			return 0, apperror.NewValidation("Quantity must be a positive integer")
		default:
			return 0, apperror.NewValidation(err.Error())
		}
	}

	log := entity.NewAuditLogEntry(0, entity.AuditActionSubmitted, requesterID, "Request submitted")

	id, err := uc.requestRepo.CreateWithItems(ctx, req, log)
	if err != nil {
		uc.logger.Error(ctx, "request submit failed", err, map[string]interface{}{
			"requester_id": requesterID,
			"item_count":   len(items),
		})
		return 0, apperror.ErrInternalServer
	}

	uc.logger.Info(ctx, "request submitted", map[string]interface{}{
		"request_id":   id,
		"requester_id": requesterID,
		"item_count":   len(items),
	})
	return id, nil
}

// Review transitions a pending request to approved or denied and appends the
// decision audit entry in the same transaction. Reviewing an already-decided
// request fails with Conflict; two concurrent reviews resolve
// first-committer-wins via the pending-status guard in the repository.
func (uc *RequestUseCase) Review(ctx context.Context, requestID int64, reviewerID string, input inbound.ReviewRequestInput) error {
	if !entity.ReviewDecision(input.Status) {
		return apperror.NewValidation("Invalid status")
	}

	req, err := uc.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, outbound.ErrRequestNotFound) {
			return apperror.NewNotFound("Request not found")
		}
		uc.logger.Error(ctx, "request lookup for review failed", err, map[string]interface{}{
			"request_id": requestID,
		})
		return apperror.ErrInternalServer
	}

	if err := req.Review(input.Status, reviewerID, input.ManagerComment); err != nil {
		if errors.Is(err, entity.ErrRequestReviewed) {
			return apperror.NewConflict("Request has already been reviewed")
		}
		return apperror.NewValidation("Invalid status")
	}

	log := entity.NewAuditLogEntry(
		requestID,
		entity.AuditAction(input.Status),
		reviewerID,
		fmt.Sprintf("Request %s by manager", input.Status),
	)

	if err := uc.requestRepo.Review(ctx, req, log); err != nil {
		switch {
		case errors.Is(err, outbound.ErrRequestNotFound):
			return apperror.NewNotFound("Request not found")
		case errors.Is(err, outbound.ErrRequestNotPending):
			// Lost the race against another reviewer.
			return apperror.NewConflict("Request has already been reviewed")
		default:
			uc.logger.Error(ctx, "request review failed", err, map[string]interface{}{
				"request_id":  requestID,
				"reviewer_id": reviewerID,
				"decision":    input.Status,
			})
			return apperror.ErrInternalServer
		}
	}

	uc.logger.Info(ctx, "request reviewed", map[string]interface{}{
		"request_id":  requestID,
		"reviewer_id": reviewerID,
		"decision":    input.Status,
	})
	return nil
}

func (uc *RequestUseCase) GetByID(ctx context.Context, requestID int64) (*entity.Request, error) {
	req, err := uc.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, outbound.ErrRequestNotFound) {
			return nil, apperror.NewNotFound("Request not found")
		}
		uc.logger.Error(ctx, "request lookup failed", err, map[string]interface{}{
			"request_id": requestID,
		})
		return nil, apperror.ErrInternalServer
	}
	return req, nil
}

func (uc *RequestUseCase) ListAll(ctx context.Context) ([]*entity.Request, error) {
	reqs, err := uc.requestRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Error(ctx, "request list failed", err, nil)
		return nil, apperror.ErrInternalServer
	}
	return reqs, nil
}

func (uc *RequestUseCase) ListForUser(ctx context.Context, userID string) ([]*entity.Request, error) {
	reqs, err := uc.requestRepo.FindByUser(ctx, userID)
	if err != nil {
		uc.logger.Error(ctx, "request list for user failed", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, apperror.ErrInternalServer
	}
	return reqs, nil
}

var _ inbound.RequestUseCase = (*RequestUseCase)(nil)
