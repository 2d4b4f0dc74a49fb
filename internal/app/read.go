package app

import (
	"context"
	"fmt"
	"io"

	"github.com/fieldopshq/fieldops/internal/outbox"
)

// NoticeReader defines the storage dependency for reading notices.
type NoticeReader interface {
	MarkNoticeRead(ctx context.Context, id int64) error
}

// MarkNoticeReadUseCase marks a notice read, or queues the change when
// running offline. Re-reading an already read notice is a no-op.
type MarkNoticeReadUseCase struct {
	client  NoticeReader
	queue   outbox.Queue
	offline bool
}

// NewMarkNoticeReadUseCase creates a mark-read use-case.
func NewMarkNoticeReadUseCase(client NoticeReader, queue outbox.Queue, offline bool) *MarkNoticeReadUseCase {
	if client == nil {
		panic("NewMarkNoticeReadUseCase: client dependency cannot be nil")
	}
	return &MarkNoticeReadUseCase{client: client, queue: queue, offline: offline}
}

// Execute marks the notice read or queues the change.
func (u *MarkNoticeReadUseCase) Execute(ctx context.Context, id int64, w io.Writer) error {
	if u.offline {
		if u.queue == nil {
			return fmt.Errorf("read: offline mode without an outbox")
		}
		m, err := outbox.New(EntityNotice, outbox.OpUpdate, noticeRead{ID: id})
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		if err := u.queue.Enqueue(ctx, m); err != nil {
			return fmt.Errorf("read: queue change: %w", err)
		}
		_, _ = fmt.Fprintf(w, "queued: notice %d read (run `fieldops sync` to apply)\n", id)
		return nil
	}

	if err := u.client.MarkNoticeRead(ctx, id); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	_, _ = fmt.Fprintf(w, "notice %d read\n", id)
	return nil
}
