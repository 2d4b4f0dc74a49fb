package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fieldopshq/fieldops/internal/domain"
)

// ListNotices returns all cached notices in insertion order.
func (s *Store) ListNotices(ctx context.Context) ([]domain.Notice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, body, kind, read_at, created_at
		FROM notices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list notices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notices []domain.Notice
	for rows.Next() {
		var (
			n         domain.Notice
			kind      string
			readAt    sql.NullString
			createdAt string
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &kind, &readAt, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan notice: %w", err)
		}
		n.Kind = domain.NoticeKind(kind)
		if n.ReadAt, err = decodeTimePtr(readAt); err != nil {
			return nil, err
		}
		if n.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list notices: %w", err)
	}
	return notices, nil
}

// InsertNotice validates and stores a notice, returning its ID.
func (s *Store) InsertNotice(ctx context.Context, n *domain.Notice) (int64, error) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = utcNow()
	}
	if err := n.Validate(); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO notices (title, body, kind, read_at, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		n.Title, n.Body, n.Kind.String(), encodeTimePtr(n.ReadAt), encodeTime(n.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert notice: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert notice: last insert id: %w", err)
	}
	n.ID = id
	return id, nil
}

// MarkNoticeRead sets the read timestamp on a notice. Already-read
// notices keep their original timestamp.
func (s *Store) MarkNoticeRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE notices SET read_at = ? WHERE id = ? AND read_at IS NULL`,
		encodeTime(utcNow()), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: mark notice read: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite storage: mark notice read: rows affected: %w", err)
	}
	if affected == 0 {
		// Distinguish missing from already read.
		var exists int
		row := s.db.QueryRowContext(ctx, `SELECT 1 FROM notices WHERE id = ?`, id)
		if scanErr := row.Scan(&exists); scanErr == sql.ErrNoRows {
			return ErrNotFound
		} else if scanErr != nil {
			return fmt.Errorf("sqlite storage: mark notice read: %w", scanErr)
		}
	}
	return nil
}

// DeleteNotice removes a notice from the cache.
func (s *Store) DeleteNotice(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM notices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: delete notice: %w", err)
	}
	return requireRow(result, "delete notice")
}
