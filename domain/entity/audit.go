package entity

import "time"

// AuditAction labels one lifecycle transition in a request's audit trail.
type AuditAction string

const (
	AuditActionSubmitted AuditAction = "submitted"
	AuditActionApproved  AuditAction = "approved"
	AuditActionDenied    AuditAction = "denied"
)

// AuditLogEntry is an append-only record of a lifecycle transition. Entries
// are never updated or deleted.
type AuditLogEntry struct {
	ID          int64       `json:"id"`
	RequestID   int64       `json:"request_id"`
	Action      AuditAction `json:"action"`
	PerformedBy string      `json:"performed_by"`
	Notes       string      `json:"notes"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewAuditLogEntry builds an audit entry for a transition on a request.
func NewAuditLogEntry(requestID int64, action AuditAction, performedBy, notes string) *AuditLogEntry {
	return &AuditLogEntry{
		RequestID:   requestID,
		Action:      action,
		PerformedBy: performedBy,
		Notes:       notes,
		CreatedAt:   time.Now(),
	}
}
