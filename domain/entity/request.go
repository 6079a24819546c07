package entity

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle status of a supply request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDenied   RequestStatus = "denied"
)

// ReviewDecision reports whether s is a status a reviewer may set. pending is
// deliberately not a decision: re-affirming pending is rejected as invalid
// input rather than treated as a no-op.
func ReviewDecision(s RequestStatus) bool {
	return s == RequestStatusApproved || s == RequestStatusDenied
}

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrRequestReviewed = errors.New("request has already been reviewed")
	ErrInvalidDecision = errors.New("invalid status")
	ErrNoLineItems     = errors.New("at least one item is required")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// Request is the central aggregate: one header row plus at least one line
// item, with an append-only audit trail alongside.
type Request struct {
	ID             int64         `json:"id"`
	UserID         string        `json:"user_id"`
	TripID         *int64        `json:"trip_id,omitempty"`
	Status         RequestStatus `json:"status"`
	GeneralComment string        `json:"general_comment"`
	ManagerComment *string       `json:"manager_comment,omitempty"`
	ReviewedBy     *string       `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time    `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`

	Items []RequestLineItem `json:"items,omitempty"`
	Logs  []*AuditLogEntry  `json:"logs,omitempty"`

	// Joined display fields, populated by the read projections only.
	RequesterName     string     `json:"requester_name,omitempty"`
	RequesterRole     Role       `json:"requester_role,omitempty"`
	RequesterUsername string     `json:"requester_username,omitempty"`
	TripName          string     `json:"trip_name,omitempty"`
	Destination       string     `json:"destination,omitempty"`
	DepartureDate     *time.Time `json:"departure_date,omitempty"`
	ReturnDate        *time.Time `json:"return_date,omitempty"`
	ReviewerName      string     `json:"reviewer_name,omitempty"`
}

// RequestLineItem is one (catalog item, quantity, unit, note) entry. Unit is
// copied from the catalog at submission time so later catalog edits do not
// rewrite history.
type RequestLineItem struct {
	ID        int64  `json:"id"`
	RequestID int64  `json:"request_id"`
	ItemID    int64  `json:"item_id"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
	ItemNotes string `json:"item_notes"`

	// Joined display fields.
	ItemName     string `json:"item_name,omitempty"`
	Category     string `json:"category,omitempty"`
	RoleCategory string `json:"role_category,omitempty"`
}

// NewRequest builds a pending request with its line items. The ID is assigned
// by the store on insert.
func NewRequest(userID string, tripID *int64, generalComment string, items []RequestLineItem) (*Request, error) {
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	return &Request{
		UserID:         userID,
		TripID:         tripID,
		Status:         RequestStatusPending,
		GeneralComment: generalComment,
		Items:          items,
		CreatedAt:      time.Now(),
	}, nil
}

// Review transitions the request out of pending. Reviewer, timestamp and
// manager comment are set together and are immutable afterwards.
func (r *Request) Review(decision RequestStatus, reviewerID, managerComment string) error {
	if !ReviewDecision(decision) {
		return ErrInvalidDecision
	}
	if r.Status != RequestStatusPending {
		return ErrRequestReviewed
	}
	now := time.Now()
	r.Status = decision
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &now
	r.ManagerComment = &managerComment
	return nil
}
