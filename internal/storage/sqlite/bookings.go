package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fieldopshq/fieldops/internal/domain"
)

// ListBookings returns all cached bookings in insertion order.
func (s *Store) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_name, service_type, notes, status, scheduled_at, created_at
		FROM bookings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list bookings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var bookings []domain.Booking
	for rows.Next() {
		var (
			b           domain.Booking
			status      string
			notes       sql.NullString
			scheduledAt sql.NullString
			createdAt   string
		)
		if err := rows.Scan(&b.ID, &b.ClientName, &b.ServiceType, &notes, &status, &scheduledAt, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan booking: %w", err)
		}
		b.Status = domain.BookingStatus(status)
		b.Notes = decodeStringPtr(notes)
		if b.ScheduledAt, err = decodeTimePtr(scheduledAt); err != nil {
			return nil, err
		}
		if b.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list bookings: %w", err)
	}
	return bookings, nil
}

// InsertBooking validates and stores a booking, returning its ID.
func (s *Store) InsertBooking(ctx context.Context, b *domain.Booking) (int64, error) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = utcNow()
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO bookings (client_name, service_type, notes, status, scheduled_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.ClientName, b.ServiceType, encodeStringPtr(b.Notes), b.Status.String(),
		encodeTimePtr(b.ScheduledAt), encodeTime(b.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert booking: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert booking: last insert id: %w", err)
	}
	b.ID = id
	return id, nil
}

// UpdateBookingStatus transitions a booking to the given status.
func (s *Store) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid booking status: %s", status)
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE bookings SET status = ? WHERE id = ?`, status.String(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: update booking status: %w", err)
	}
	return requireRow(result, "update booking status")
}

// DeleteBooking removes a booking from the cache.
func (s *Store) DeleteBooking(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: delete booking: %w", err)
	}
	return requireRow(result, "delete booking")
}
