package app

import (
	"context"
	"fmt"
	"io"

	"github.com/fieldopshq/fieldops/internal/outbox"
)

// AddUseCase inserts one new record, or queues the insert in the
// outbox when running offline.
type AddUseCase[T any] struct {
	entity  string
	insert  func(ctx context.Context, record *T) (int64, error)
	queue   outbox.Queue
	offline bool
}

// NewAddUseCase creates an add use-case for one entity.
func NewAddUseCase[T any](entity string, insert func(context.Context, *T) (int64, error), queue outbox.Queue, offline bool) *AddUseCase[T] {
	if insert == nil {
		panic("NewAddUseCase: insert dependency cannot be nil")
	}
	return &AddUseCase[T]{entity: entity, insert: insert, queue: queue, offline: offline}
}

// Execute inserts or queues the record.
func (u *AddUseCase[T]) Execute(ctx context.Context, record *T, w io.Writer) error {
	if u.offline {
		if u.queue == nil {
			return fmt.Errorf("add: offline mode without an outbox")
		}
		m, err := outbox.New(u.entity, outbox.OpInsert, record)
		if err != nil {
			return fmt.Errorf("add: %w", err)
		}
		if err := u.queue.Enqueue(ctx, m); err != nil {
			return fmt.Errorf("add: queue insert: %w", err)
		}
		_, _ = fmt.Fprintf(w, "queued: new %s (run `fieldops sync` to apply)\n", u.entity)
		return nil
	}

	id, err := u.insert(ctx, record)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	_, _ = fmt.Fprintf(w, "added %s %d\n", u.entity, id)
	return nil
}
