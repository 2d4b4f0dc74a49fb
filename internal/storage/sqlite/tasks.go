package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fieldopshq/fieldops/internal/domain"
)

// ListTasks returns all cached tasks in insertion order.
func (s *Store) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, title, details, status, priority, due_at, created_at
		FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []domain.Task
	for rows.Next() {
		var (
			t         domain.Task
			projectID sql.NullInt64
			details   sql.NullString
			status    string
			priority  string
			dueAt     sql.NullString
			createdAt string
		)
		if err := rows.Scan(&t.ID, &projectID, &t.Title, &details, &status, &priority, &dueAt, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan task: %w", err)
		}
		if projectID.Valid {
			id := projectID.Int64
			t.ProjectID = &id
		}
		t.Details = decodeStringPtr(details)
		t.Status = domain.TaskStatus(status)
		t.Priority = domain.TaskPriority(priority)
		if t.DueAt, err = decodeTimePtr(dueAt); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list tasks: %w", err)
	}
	return tasks, nil
}

// InsertTask validates and stores a task, returning its ID.
func (s *Store) InsertTask(ctx context.Context, t *domain.Task) (int64, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = utcNow()
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if err := t.Validate(); err != nil {
		return 0, err
	}

	var projectID sql.NullInt64
	if t.ProjectID != nil {
		projectID = sql.NullInt64{Int64: *t.ProjectID, Valid: true}
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (project_id, title, details, status, priority, due_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		projectID, t.Title, encodeStringPtr(t.Details), t.Status.String(),
		t.Priority.String(), encodeTimePtr(t.DueAt), encodeTime(t.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert task: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: insert task: last insert id: %w", err)
	}
	t.ID = id
	return id, nil
}

// UpdateTaskStatus transitions a task to the given status.
func (s *Store) UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid task status: %s", status)
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET status = ? WHERE id = ?`, status.String(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: update task status: %w", err)
	}
	return requireRow(result, "update task status")
}

// CompleteTask marks a task completed.
func (s *Store) CompleteTask(ctx context.Context, id int64) error {
	return s.UpdateTaskStatus(ctx, id, domain.TaskCompleted)
}

// DeleteTask removes a task from the cache.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: delete task: %w", err)
	}
	return requireRow(result, "delete task")
}
