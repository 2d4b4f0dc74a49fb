package app

import (
	"context"
	"fmt"
	"io"

	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/outbox"
)

// TaskCompleter defines the storage dependency for completing tasks.
type TaskCompleter interface {
	CompleteTask(ctx context.Context, id int64) error
}

// CompleteTaskUseCase marks a task completed, or queues the change
// when running offline.
type CompleteTaskUseCase struct {
	client  TaskCompleter
	queue   outbox.Queue
	offline bool
}

// NewCompleteTaskUseCase creates a complete-task use-case.
func NewCompleteTaskUseCase(client TaskCompleter, queue outbox.Queue, offline bool) *CompleteTaskUseCase {
	if client == nil {
		panic("NewCompleteTaskUseCase: client dependency cannot be nil")
	}
	return &CompleteTaskUseCase{client: client, queue: queue, offline: offline}
}

// Execute completes the task or queues the completion.
func (u *CompleteTaskUseCase) Execute(ctx context.Context, id int64, w io.Writer) error {
	if u.offline {
		if u.queue == nil {
			return fmt.Errorf("complete: offline mode without an outbox")
		}
		m, err := outbox.New(EntityTask, outbox.OpUpdate, statusChange{ID: id, Status: domain.TaskCompleted.String()})
		if err != nil {
			return fmt.Errorf("complete: %w", err)
		}
		if err := u.queue.Enqueue(ctx, m); err != nil {
			return fmt.Errorf("complete: queue change: %w", err)
		}
		_, _ = fmt.Fprintf(w, "queued: task %d -> completed (run `fieldops sync` to apply)\n", id)
		return nil
	}

	if err := u.client.CompleteTask(ctx, id); err != nil {
		return fmt.Errorf("complete: %w", err)
	}
	_, _ = fmt.Fprintf(w, "task %d completed\n", id)
	return nil
}
