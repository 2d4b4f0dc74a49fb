package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fieldopshq/fieldops/internal/domain"
)

// ListProjects returns all cached projects in insertion order.
func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_id, name, summary, status, starts_at, created_at
		FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []domain.Project
	for rows.Next() {
		var (
			p         domain.Project
			status    string
			summary   sql.NullString
			startsAt  sql.NullString
			createdAt string
		)
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Name, &summary, &status, &startsAt, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan project: %w", err)
		}
		p.Status = domain.ProjectStatus(status)
		p.Summary = decodeStringPtr(summary)
		if p.StartsAt, err = decodeTimePtr(startsAt); err != nil {
			return nil, err
		}
		if p.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list projects: %w", err)
	}
	return projects, nil
}

// InsertProject validates and stores a project, returning its ID.
func (s *Store) InsertProject(ctx context.Context, p *domain.Project) (int64, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = utcNow()
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (client_id, name, summary, status, starts_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ClientID, p.Name, encodeStringPtr(p.Summary), p.Status.String(),
		encodeTimePtr(p.StartsAt), encodeTime(p.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert project: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert project: last insert id: %w", err)
	}
	p.ID = id
	return id, nil
}

// UpdateProjectStatus transitions a project to the given status.
func (s *Store) UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid project status: %s", status)
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE projects SET status = ? WHERE id = ?`, status.String(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: update project status: %w", err)
	}
	return requireRow(result, "update project status")
}

// DeleteProject removes a project from the cache.
func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: delete project: %w", err)
	}
	return requireRow(result, "delete project")
}
