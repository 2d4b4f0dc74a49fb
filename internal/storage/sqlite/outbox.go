package sqlite

import (
	"context"
	"fmt"

	"github.com/fieldopshq/fieldops/internal/outbox"
)

// Enqueue persists a pending mutation.
func (s *Store) Enqueue(ctx context.Context, m outbox.Mutation) error {
	if m.ID == "" {
		return ErrInvalidID
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO outbox (id, entity, op, payload, queued_at, attempts)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Entity, m.Op, string(m.Payload), encodeTime(m.QueuedAt), m.Attempts)
	if err != nil {
		return fmt.Errorf("sqlite storage: enqueue mutation: %w", err)
	}
	return nil
}

// Pending returns unapplied mutations oldest first.
func (s *Store) Pending(ctx context.Context) ([]outbox.Mutation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entity, op, payload, queued_at, attempts
		FROM outbox WHERE applied_at IS NULL ORDER BY queued_at, id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list pending mutations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var pending []outbox.Mutation
	for rows.Next() {
		var (
			m        outbox.Mutation
			payload  string
			queuedAt string
		)
		if err := rows.Scan(&m.ID, &m.Entity, &m.Op, &payload, &queuedAt, &m.Attempts); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan mutation: %w", err)
		}
		m.Payload = []byte(payload)
		if m.QueuedAt, err = decodeTime(queuedAt); err != nil {
			return nil, err
		}
		pending = append(pending, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list pending mutations: %w", err)
	}
	return pending, nil
}

// MarkApplied stamps a mutation as replayed.
func (s *Store) MarkApplied(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE outbox SET applied_at = ? WHERE id = ? AND applied_at IS NULL`,
		encodeTime(utcNow()), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: mark mutation applied: %w", err)
	}
	return requireRow(result, "mark mutation applied")
}

// RecordAttempt increments the attempt counter after a failed apply.
func (s *Store) RecordAttempt(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE outbox SET attempts = attempts + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: record mutation attempt: %w", err)
	}
	return requireRow(result, "record mutation attempt")
}
