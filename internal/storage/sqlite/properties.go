package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fieldopshq/fieldops/internal/domain"
)

// ListProperties returns all cached properties in insertion order.
func (s *Store) ListProperties(ctx context.Context) ([]domain.Property, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_id, address, city, nickname, status, created_at
		FROM properties ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list properties: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var properties []domain.Property
	for rows.Next() {
		var (
			p         domain.Property
			status    string
			nickname  sql.NullString
			createdAt string
		)
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Address, &p.City, &nickname, &status, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan property: %w", err)
		}
		p.Status = domain.PropertyStatus(status)
		p.Nickname = decodeStringPtr(nickname)
		if p.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list properties: %w", err)
	}
	return properties, nil
}

// InsertProperty validates and stores a property, returning its ID.
func (s *Store) InsertProperty(ctx context.Context, p *domain.Property) (int64, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = utcNow()
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO properties (client_id, address, city, nickname, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ClientID, p.Address, p.City, encodeStringPtr(p.Nickname),
		p.Status.String(), encodeTime(p.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert property: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert property: last insert id: %w", err)
	}
	p.ID = id
	return id, nil
}

// UpdatePropertyStatus transitions a property to the given status.
func (s *Store) UpdatePropertyStatus(ctx context.Context, id int64, status domain.PropertyStatus) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid property status: %s", status)
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE properties SET status = ? WHERE id = ?`, status.String(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: update property status: %w", err)
	}
	return requireRow(result, "update property status")
}

// DeleteProperty removes a property from the cache.
func (s *Store) DeleteProperty(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: delete property: %w", err)
	}
	return requireRow(result, "delete property")
}
