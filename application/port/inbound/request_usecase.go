package inbound

import (
	"context"

	"github.com/seastock/seastock/domain/entity"
)

type SubmitItemInput struct {
	ItemID    int64  `json:"item_id"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
	ItemNotes string `json:"item_notes"`
}

type SubmitRequestInput struct {
	TripID         *int64            `json:"trip_id,omitempty"`
	Items          []SubmitItemInput `json:"items"`
	GeneralComment string            `json:"general_comment"`
}

type ReviewRequestInput struct {
	Status         entity.RequestStatus `json:"status"`
	ManagerComment string               `json:"manager_comment"`
}

// RequestUseCase drives the request lifecycle: submission, review and the
// read projections used for display. Role gating happens upstream in the
// HTTP middleware; these operations trust the caller has been authorized.
type RequestUseCase interface {
	Submit(ctx context.Context, requesterID string, input SubmitRequestInput) (int64, error)
	Review(ctx context.Context, requestID int64, reviewerID string, input ReviewRequestInput) error
	GetByID(ctx context.Context, requestID int64) (*entity.Request, error)
	ListAll(ctx context.Context) ([]*entity.Request, error)
	ListForUser(ctx context.Context, userID string) ([]*entity.Request, error)
}
