package outbound

import (
	"context"
	"errors"

	"github.com/seastock/seastock/domain/entity"
)

var (
	ErrRequestNotFound = errors.New("request not found")

	// ErrRequestNotPending is returned when a review targets a request that
	// exists but has already left the pending state. The status guard in the
	// review transaction makes the concurrent-review race first-committer-wins.
	ErrRequestNotPending = errors.New("request is not pending")
)

// RequestRepository persists requests, their line items and the audit trail.
// CreateWithItems and Review each execute as a single transaction: all rows
// land or none do.
type RequestRepository interface {
	// CreateWithItems inserts the request header, its line items and the
	// "submitted" audit entry atomically, returning the new request ID.
	CreateWithItems(ctx context.Context, req *entity.Request, log *entity.AuditLogEntry) (int64, error)

	// Review applies the reviewed fields and appends the decision audit entry
	// atomically. The update is guarded by status = pending.
	Review(ctx context.Context, req *entity.Request, log *entity.AuditLogEntry) error

	// FindByID returns the request with joined display fields, line items
	// and its audit trail.
	FindByID(ctx context.Context, id int64) (*entity.Request, error)

	// FindAll returns every request newest first with joined display fields.
	FindAll(ctx context.Context) ([]*entity.Request, error)

	// FindByUser returns the user's requests newest first with trip fields.
	FindByUser(ctx context.Context, userID string) ([]*entity.Request, error)

	// FindLogs returns the audit trail for a request, oldest first.
	FindLogs(ctx context.Context, requestID int64) ([]*entity.AuditLogEntry, error)
}
