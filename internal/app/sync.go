package app

import (
	"context"
	"fmt"
	"io"

	"github.com/fieldopshq/fieldops/internal/logging"
	"github.com/fieldopshq/fieldops/internal/outbox"
)

// SyncUseCase drains the outbox into local storage.
type SyncUseCase struct {
	flusher *outbox.Flusher
	logger  logging.Logger
}

// NewSyncUseCase creates a sync use-case.
func NewSyncUseCase(queue outbox.Queue, applier outbox.Applier, logger logging.Logger) *SyncUseCase {
	if queue == nil {
		panic("NewSyncUseCase: queue dependency cannot be nil")
	}
	if applier == nil {
		panic("NewSyncUseCase: applier dependency cannot be nil")
	}
	if logger == nil {
		logger = logging.Noop()
	}
	return &SyncUseCase{flusher: outbox.NewFlusher(queue, applier), logger: logger}
}

// Execute flushes pending mutations oldest first and reports how many
// were applied. A failure leaves the failing mutation and everything
// queued after it in place.
func (u *SyncUseCase) Execute(ctx context.Context, w io.Writer) error {
	applied, err := u.flusher.Flush(ctx)
	if err != nil {
		u.logger.Error("sync failed", "applied", applied, "error", err)
		if applied > 0 {
			_, _ = fmt.Fprintf(w, "applied %d queued change(s) before failing\n", applied)
		}
		return fmt.Errorf("sync: %w", err)
	}

	u.logger.Info("sync finished", "applied", applied)
	if applied == 0 {
		_, _ = fmt.Fprintln(w, "nothing to sync")
		return nil
	}
	_, _ = fmt.Fprintf(w, "applied %d queued change(s)\n", applied)
	return nil
}
