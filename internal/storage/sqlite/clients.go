package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fieldopshq/fieldops/internal/domain"
)

// ListClients returns all cached clients in insertion order.
func (s *Store) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, phone, address, status, created_at
		FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list clients: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var clients []domain.Client
	for rows.Next() {
		var (
			c                     domain.Client
			status                string
			email, phone, address sql.NullString
			createdAt             string
		)
		if err := rows.Scan(&c.ID, &c.Name, &email, &phone, &address, &status, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan client: %w", err)
		}
		c.Status = domain.ClientStatus(status)
		c.Email = decodeStringPtr(email)
		c.Phone = decodeStringPtr(phone)
		c.Address = decodeStringPtr(address)
		if c.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list clients: %w", err)
	}
	return clients, nil
}

// GetClientByID retrieves one client.
func (s *Store) GetClientByID(ctx context.Context, id int64) (*domain.Client, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, address, status, created_at
		FROM clients WHERE id = ?`, id)

	var (
		c                     domain.Client
		status                string
		email, phone, address sql.NullString
		createdAt             string
	)
	err := row.Scan(&c.ID, &c.Name, &email, &phone, &address, &status, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: get client: %w", err)
	}
	c.Status = domain.ClientStatus(status)
	c.Email = decodeStringPtr(email)
	c.Phone = decodeStringPtr(phone)
	c.Address = decodeStringPtr(address)
	if c.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// InsertClient validates and stores a client, returning its ID.
func (s *Store) InsertClient(ctx context.Context, c *domain.Client) (int64, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = utcNow()
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO clients (name, email, phone, address, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, encodeStringPtr(c.Email), encodeStringPtr(c.Phone),
		encodeStringPtr(c.Address), c.Status.String(), encodeTime(c.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert client: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert client: last insert id: %w", err)
	}
	c.ID = id
	return id, nil
}

// UpdateClientStatus transitions a client to the given status.
func (s *Store) UpdateClientStatus(ctx context.Context, id int64, status domain.ClientStatus) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid client status: %s", status)
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE clients SET status = ? WHERE id = ?`, status.String(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: update client status: %w", err)
	}
	return requireRow(result, "update client status")
}

// DeleteClient removes a client from the cache.
func (s *Store) DeleteClient(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: delete client: %w", err)
	}
	return requireRow(result, "delete client")
}
