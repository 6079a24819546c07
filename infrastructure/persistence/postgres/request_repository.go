package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/domain/entity"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) outbound.RequestRepository {
	return &requestRepository{db: db}
}

// CreateWithItems writes the request header, every line item and the
// "submitted" audit entry in one transaction. A failure anywhere rolls the
// whole submission back; a request can never persist without line items or
// without its audit row.
func (r *requestRepository) CreateWithItems(ctx context.Context, req *entity.Request, log *entity.AuditLogEntry) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var requestID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO requests (user_id, trip_id, status, general_comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, req.UserID, req.TripID, req.Status, req.GeneralComment, req.CreatedAt).Scan(&requestID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert request: %w", err)
	}

	itemStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO request_items (request_id, item_id, quantity, unit, item_notes)
		VALUES ($1, $2, $3, $4, $5)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare line item insert: %w", err)
	}
	defer itemStmt.Close()

	for _, item := range req.Items {
		if _, err := itemStmt.ExecContext(ctx, requestID, item.ItemID, item.Quantity, item.Unit, item.ItemNotes); err != nil {
			return 0, fmt.Errorf("failed to insert line item: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO request_logs (request_id, action, performed_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, requestID, log.Action, log.PerformedBy, log.Notes, log.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert audit log entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit submission: %w", err)
	}

	req.ID = requestID
	return requestID, nil
}

// Review applies the reviewed fields and appends the decision audit entry in
// one transaction. The UPDATE is guarded by status = 'pending': when zero
// rows match, the request either does not exist (NotFound) or has already
// been decided (NotPending). Two concurrent reviews therefore resolve
// first-committer-wins.
func (r *requestRepository) Review(ctx context.Context, req *entity.Request, log *entity.AuditLogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, manager_comment = $5
		WHERE id = $1 AND status = 'pending'
	`, req.ID, req.Status, req.ReviewedBy, req.ReviewedAt, req.ManagerComment)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM requests WHERE id = $1)`, req.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check request existence: %w", err)
		}
		if !exists {
			return outbound.ErrRequestNotFound
		}
		return outbound.ErrRequestNotPending
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO request_logs (request_id, action, performed_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, req.ID, log.Action, log.PerformedBy, log.Notes, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert audit log entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit review: %w", err)
	}
	return nil
}

// FindByID composes the detail projection: request joined with requester,
// trip and reviewer, plus line items joined with their catalog entries and
// the audit trail.
func (r *requestRepository) FindByID(ctx context.Context, id int64) (*entity.Request, error) {
	query := `
		SELECT r.id, r.user_id, r.trip_id, r.status, r.general_comment, r.manager_comment,
		       r.reviewed_by, r.reviewed_at, r.created_at,
		       COALESCE(u.name, ''), COALESCE(u.role, ''), COALESCE(u.username, ''),
		       COALESCE(t.trip_name, ''), COALESCE(t.destination, ''), t.departure_date, t.return_date,
		       COALESCE(rev.name, '')
		FROM requests r
		LEFT JOIN users u ON r.user_id = u.id
		LEFT JOIN trips t ON r.trip_id = t.id
		LEFT JOIN users rev ON r.reviewed_by = rev.id
		WHERE r.id = $1
	`

	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	items, err := r.findLineItems(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Items = items

	logs, err := r.FindLogs(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Logs = logs

	return req, nil
}

func (r *requestRepository) findLineItems(ctx context.Context, requestID int64) ([]entity.RequestLineItem, error) {
	query := `
		SELECT ri.id, ri.request_id, ri.item_id, ri.quantity, ri.unit, ri.item_notes,
		       COALESCE(ic.item_name, ''), COALESCE(ic.category, ''), COALESCE(ic.role_category, '')
		FROM request_items ri
		LEFT JOIN item_catalog ic ON ri.item_id = ic.id
		WHERE ri.request_id = $1
		ORDER BY ri.id
	`

	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	var items []entity.RequestLineItem
	for rows.Next() {
		var item entity.RequestLineItem
		err := rows.Scan(
			&item.ID,
			&item.RequestID,
			&item.ItemID,
			&item.Quantity,
			&item.Unit,
			&item.ItemNotes,
			&item.ItemName,
			&item.Category,
			&item.RoleCategory,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line items: %w", err)
	}
	return items, nil
}

// FindAll returns every request newest first with the reviewer-facing joined
// fields. Line items are not embedded in the list projection.
func (r *requestRepository) FindAll(ctx context.Context) ([]*entity.Request, error) {
	query := `
		SELECT r.id, r.user_id, r.trip_id, r.status, r.general_comment, r.manager_comment,
		       r.reviewed_by, r.reviewed_at, r.created_at,
		       COALESCE(u.name, ''), COALESCE(u.role, ''), COALESCE(u.username, ''),
		       COALESCE(t.trip_name, ''), COALESCE(t.destination, ''), t.departure_date, t.return_date,
		       COALESCE(rev.name, '')
		FROM requests r
		LEFT JOIN users u ON r.user_id = u.id
		LEFT JOIN trips t ON r.trip_id = t.id
		LEFT JOIN users rev ON r.reviewed_by = rev.id
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	var reqs []*entity.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating requests: %w", err)
	}
	return reqs, nil
}

// FindByUser returns the user's own requests newest first with trip fields.
func (r *requestRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Request, error) {
	query := `
		SELECT r.id, r.user_id, r.trip_id, r.status, r.general_comment, r.manager_comment,
		       r.reviewed_by, r.reviewed_at, r.created_at,
		       COALESCE(t.trip_name, ''), COALESCE(t.destination, ''), t.departure_date, t.return_date
		FROM requests r
		LEFT JOIN trips t ON r.trip_id = t.id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user requests: %w", err)
	}
	defer rows.Close()

	var reqs []*entity.Request
	for rows.Next() {
		var req entity.Request
		var tripID sql.NullInt64
		var managerComment, reviewedBy sql.NullString
		var reviewedAt, departureDate, returnDate sql.NullTime

		err := rows.Scan(
			&req.ID,
			&req.UserID,
			&tripID,
			&req.Status,
			&req.GeneralComment,
			&managerComment,
			&reviewedBy,
			&reviewedAt,
			&req.CreatedAt,
			&req.TripName,
			&req.Destination,
			&departureDate,
			&returnDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}

		applyNullables(&req, tripID, managerComment, reviewedBy, reviewedAt, departureDate, returnDate)
		reqs = append(reqs, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating requests: %w", err)
	}
	return reqs, nil
}

func (r *requestRepository) FindLogs(ctx context.Context, requestID int64) ([]*entity.AuditLogEntry, error) {
	query := `
		SELECT id, request_id, action, performed_by, notes, created_at
		FROM request_logs
		WHERE request_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var logs []*entity.AuditLogEntry
	for rows.Next() {
		var log entity.AuditLogEntry
		err := rows.Scan(&log.ID, &log.RequestID, &log.Action, &log.PerformedBy, &log.Notes, &log.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}
		logs = append(logs, &log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}
	return logs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*entity.Request, error) {
	var req entity.Request
	var tripID sql.NullInt64
	var managerComment, reviewedBy sql.NullString
	var reviewedAt, departureDate, returnDate sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.UserID,
		&tripID,
		&req.Status,
		&req.GeneralComment,
		&managerComment,
		&reviewedBy,
		&reviewedAt,
		&req.CreatedAt,
		&req.RequesterName,
		&req.RequesterRole,
		&req.RequesterUsername,
		&req.TripName,
		&req.Destination,
		&departureDate,
		&returnDate,
		&req.ReviewerName,
	)
	if err != nil {
		return nil, err
	}

	applyNullables(&req, tripID, managerComment, reviewedBy, reviewedAt, departureDate, returnDate)
	return &req, nil
}

func applyNullables(req *entity.Request, tripID sql.NullInt64, managerComment, reviewedBy sql.NullString, reviewedAt, departureDate, returnDate sql.NullTime) {
	if tripID.Valid {
		req.TripID = &tripID.Int64
	}
	if managerComment.Valid {
		req.ManagerComment = &managerComment.String
	}
	if reviewedBy.Valid {
		req.ReviewedBy = &reviewedBy.String
	}
	if reviewedAt.Valid {
		req.ReviewedAt = &reviewedAt.Time
	}
	if departureDate.Valid {
		req.DepartureDate = &departureDate.Time
	}
	if returnDate.Valid {
		req.ReturnDate = &returnDate.Time
	}
}
