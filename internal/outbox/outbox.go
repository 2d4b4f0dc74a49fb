// Package outbox queues local mutations while the hosted backend is
// unreachable and replays them in order once a sync runs. It only
// defines the queue contract and the flush discipline; persistence is
// supplied by the storage layer.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Ops recognized by the queue.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Mutation is one pending write, serialized for replay.
type Mutation struct {
	ID       string
	Entity   string
	Op       string
	Payload  json.RawMessage
	QueuedAt time.Time
	Attempts int
}

// New builds a mutation with a fresh client-generated ID.
func New(entity, op string, payload any) (Mutation, error) {
	if entity == "" {
		return Mutation{}, fmt.Errorf("outbox: entity cannot be empty")
	}
	switch op {
	case OpInsert, OpUpdate, OpDelete:
	default:
		return Mutation{}, fmt.Errorf("outbox: invalid op: %s", op)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Mutation{}, fmt.Errorf("outbox: encode payload: %w", err)
	}

	return Mutation{
		ID:       uuid.NewString(),
		Entity:   entity,
		Op:       op,
		Payload:  raw,
		QueuedAt: time.Now().UTC(),
	}, nil
}

// Queue persists pending mutations in arrival order.
type Queue interface {
	Enqueue(ctx context.Context, m Mutation) error
	Pending(ctx context.Context) ([]Mutation, error)
	MarkApplied(ctx context.Context, id string) error
	RecordAttempt(ctx context.Context, id string) error
}

// Applier applies one mutation to its destination.
type Applier interface {
	Apply(ctx context.Context, m Mutation) error
}

// Flusher drains a queue against an applier.
type Flusher struct {
	queue   Queue
	applier Applier
}

// NewFlusher creates a flusher over the given queue and applier.
func NewFlusher(queue Queue, applier Applier) *Flusher {
	return &Flusher{queue: queue, applier: applier}
}

// Flush applies pending mutations oldest first and returns how many were
// applied. It stops at the first failure so later mutations never
// overtake an earlier one.
func (f *Flusher) Flush(ctx context.Context) (int, error) {
	pending, err := f.queue.Pending(ctx)
	if err != nil {
		return 0, fmt.Errorf("outbox: load pending: %w", err)
	}

	applied := 0
	for _, m := range pending {
		if err := f.applier.Apply(ctx, m); err != nil {
			if recordErr := f.queue.RecordAttempt(ctx, m.ID); recordErr != nil {
				return applied, fmt.Errorf("outbox: record attempt for %s: %w", m.ID, recordErr)
			}
			return applied, fmt.Errorf("outbox: apply %s %s: %w", m.Op, m.Entity, err)
		}
		if err := f.queue.MarkApplied(ctx, m.ID); err != nil {
			return applied, fmt.Errorf("outbox: mark applied %s: %w", m.ID, err)
		}
		applied++
	}
	return applied, nil
}
