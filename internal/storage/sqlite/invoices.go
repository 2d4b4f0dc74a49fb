package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fieldopshq/fieldops/internal/domain"
)

// ListInvoices returns all cached invoices in insertion order.
func (s *Store) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_name, number, status, total_cents, issued_at, due_at, created_at
		FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list invoices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var invoices []domain.Invoice
	for rows.Next() {
		var (
			inv       domain.Invoice
			status    string
			issuedAt  string
			dueAt     sql.NullString
			createdAt string
		)
		if err := rows.Scan(&inv.ID, &inv.ClientName, &inv.Number, &status, &inv.TotalCents, &issuedAt, &dueAt, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan invoice: %w", err)
		}
		inv.Status = domain.InvoiceStatus(status)
		if inv.IssuedAt, err = decodeTime(issuedAt); err != nil {
			return nil, err
		}
		if inv.DueAt, err = decodeTimePtr(dueAt); err != nil {
			return nil, err
		}
		if inv.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list invoices: %w", err)
	}
	return invoices, nil
}

// InsertInvoice validates and stores an invoice, returning its ID.
func (s *Store) InsertInvoice(ctx context.Context, inv *domain.Invoice) (int64, error) {
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = utcNow()
	}
	if inv.IssuedAt.IsZero() {
		inv.IssuedAt = inv.CreatedAt
	}
	if err := inv.Validate(); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO invoices (client_name, number, status, total_cents, issued_at, due_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ClientName, inv.Number, inv.Status.String(), inv.TotalCents,
		encodeTime(inv.IssuedAt), encodeTimePtr(inv.DueAt), encodeTime(inv.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert invoice: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert invoice: last insert id: %w", err)
	}
	inv.ID = id
	return id, nil
}

// UpdateInvoiceStatus transitions an invoice to the given status.
func (s *Store) UpdateInvoiceStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid invoice status: %s", status)
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE invoices SET status = ? WHERE id = ?`, status.String(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: update invoice status: %w", err)
	}
	return requireRow(result, "update invoice status")
}

// DeleteInvoice removes an invoice from the cache.
func (s *Store) DeleteInvoice(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: delete invoice: %w", err)
	}
	return requireRow(result, "delete invoice")
}
