package app

import (
	"context"
	"fmt"
	"io"

	"github.com/fieldopshq/fieldops/internal/outbox"
)

// Entity names used for queued mutations.
const (
	EntityRequest  = "request"
	EntityBooking  = "booking"
	EntityClient   = "client"
	EntityProperty = "property"
	EntityProject  = "project"
	EntityTask     = "task"
	EntityInvoice  = "invoice"
	EntityNotice   = "notice"
)

// statusChange is the wire payload for queued status updates.
type statusChange struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// noticeRead is the wire payload for queued notice reads.
type noticeRead struct {
	ID int64 `json:"id"`
}

// SetStatusUseCase moves one record to a new status. When running
// offline the change is queued in the outbox instead of being applied.
type SetStatusUseCase struct {
	entity   string
	validate func(status string) error
	apply    func(ctx context.Context, id int64, status string) error
	queue    outbox.Queue
	offline  bool
}

// NewSetStatusUseCase creates a set-status use-case for one entity.
func NewSetStatusUseCase(entity string, validate func(string) error, apply func(context.Context, int64, string) error, queue outbox.Queue, offline bool) *SetStatusUseCase {
	if validate == nil {
		panic("NewSetStatusUseCase: validate dependency cannot be nil")
	}
	if apply == nil {
		panic("NewSetStatusUseCase: apply dependency cannot be nil")
	}
	return &SetStatusUseCase{entity: entity, validate: validate, apply: apply, queue: queue, offline: offline}
}

// Execute applies or queues the status change.
func (u *SetStatusUseCase) Execute(ctx context.Context, id int64, status string, w io.Writer) error {
	if err := u.validate(status); err != nil {
		return fmt.Errorf("set-status: %w", err)
	}

	if u.offline {
		return u.enqueue(ctx, id, status, w)
	}

	if err := u.apply(ctx, id, status); err != nil {
		return fmt.Errorf("set-status: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s %d is now %s\n", u.entity, id, status)
	return nil
}

func (u *SetStatusUseCase) enqueue(ctx context.Context, id int64, status string, w io.Writer) error {
	if u.queue == nil {
		return fmt.Errorf("set-status: offline mode without an outbox")
	}
	m, err := outbox.New(u.entity, outbox.OpUpdate, statusChange{ID: id, Status: status})
	if err != nil {
		return fmt.Errorf("set-status: %w", err)
	}
	if err := u.queue.Enqueue(ctx, m); err != nil {
		return fmt.Errorf("set-status: queue change: %w", err)
	}
	_, _ = fmt.Fprintf(w, "queued: %s %d -> %s (run `fieldops sync` to apply)\n", u.entity, id, status)
	return nil
}
