package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fieldopshq/fieldops/internal/domain"
)

// ListRequests returns all cached requests in insertion order.
func (s *Store) ListRequests(ctx context.Context) ([]domain.Request, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_name, title, description, status, preferred_at, created_at
		FROM requests ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list requests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var requests []domain.Request
	for rows.Next() {
		var (
			r           domain.Request
			status      string
			description sql.NullString
			preferredAt sql.NullString
			createdAt   string
		)
		if err := rows.Scan(&r.ID, &r.ClientName, &r.Title, &description, &status, &preferredAt, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan request: %w", err)
		}
		r.Status = domain.RequestStatus(status)
		r.Description = decodeStringPtr(description)
		if r.PreferredAt, err = decodeTimePtr(preferredAt); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list requests: %w", err)
	}
	return requests, nil
}

// InsertRequest validates and stores a request, returning its ID.
func (s *Store) InsertRequest(ctx context.Context, r *domain.Request) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = utcNow()
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO requests (client_name, title, description, status, preferred_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ClientName, r.Title, encodeStringPtr(r.Description), r.Status.String(),
		encodeTimePtr(r.PreferredAt), encodeTime(r.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert request: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert request: last insert id: %w", err)
	}
	r.ID = id
	return id, nil
}

// UpdateRequestStatus transitions a request to the given status.
func (s *Store) UpdateRequestStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid request status: %s", status)
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE requests SET status = ? WHERE id = ?`, status.String(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: update request status: %w", err)
	}
	return requireRow(result, "update request status")
}

// DeleteRequest removes a request from the cache.
func (s *Store) DeleteRequest(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM requests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: delete request: %w", err)
	}
	return requireRow(result, "delete request")
}
