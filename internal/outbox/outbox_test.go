package outbox

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	pending  []Mutation
	applied  []string
	attempts map[string]int
}

func newFakeQueue(pending ...Mutation) *fakeQueue {
	return &fakeQueue{pending: pending, attempts: make(map[string]int)}
}

func (q *fakeQueue) Enqueue(_ context.Context, m Mutation) error {
	q.pending = append(q.pending, m)
	return nil
}

func (q *fakeQueue) Pending(_ context.Context) ([]Mutation, error) {
	return q.pending, nil
}

func (q *fakeQueue) MarkApplied(_ context.Context, id string) error {
	q.applied = append(q.applied, id)
	return nil
}

func (q *fakeQueue) RecordAttempt(_ context.Context, id string) error {
	q.attempts[id]++
	return nil
}

type fakeApplier struct {
	failOn string
	seen   []string
}

func (a *fakeApplier) Apply(_ context.Context, m Mutation) error {
	if a.failOn == m.ID {
		return errors.New("backend unavailable")
	}
	a.seen = append(a.seen, m.ID)
	return nil
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entity  string
		op      string
		wantErr bool
	}{
		{"insert", "tasks", OpInsert, false},
		{"update", "requests", OpUpdate, false},
		{"delete", "bookings", OpDelete, false},
		{"empty entity", "", OpInsert, true},
		{"bad op", "tasks", "upsert", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.entity, tt.op, map[string]int{"id": 1})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, m.ID)
			assert.False(t, m.QueuedAt.IsZero())
			assert.JSONEq(t, `{"id":1}`, string(m.Payload))
		})
	}
}

func TestFlusher_AppliesInOrder(t *testing.T) {
	first, err := New("tasks", OpInsert, nil)
	require.NoError(t, err)
	second, err := New("tasks", OpUpdate, nil)
	require.NoError(t, err)

	queue := newFakeQueue(first, second)
	applier := &fakeApplier{}

	applied, err := NewFlusher(queue, applier).Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Equal(t, []string{first.ID, second.ID}, applier.seen)
	assert.Equal(t, []string{first.ID, second.ID}, queue.applied)
}

func TestFlusher_StopsAtFirstFailure(t *testing.T) {
	first, err := New("tasks", OpInsert, nil)
	require.NoError(t, err)
	second, err := New("tasks", OpUpdate, nil)
	require.NoError(t, err)
	third, err := New("tasks", OpDelete, nil)
	require.NoError(t, err)

	queue := newFakeQueue(first, second, third)
	applier := &fakeApplier{failOn: second.ID}

	applied, err := NewFlusher(queue, applier).Flush(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, applied)
	// The failed mutation gets an attempt; the one behind it is untouched.
	assert.Equal(t, 1, queue.attempts[second.ID])
	assert.Zero(t, queue.attempts[third.ID])
	assert.Equal(t, []string{first.ID}, queue.applied)
}

func TestFlusher_EmptyQueue(t *testing.T) {
	applied, err := NewFlusher(newFakeQueue(), &fakeApplier{}).Flush(context.Background())
	require.NoError(t, err)
	assert.Zero(t, applied)
}
