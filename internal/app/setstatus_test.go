package app

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/outbox"
)

type memQueue struct {
	mutations []outbox.Mutation
}

func (q *memQueue) Enqueue(_ context.Context, m outbox.Mutation) error {
	q.mutations = append(q.mutations, m)
	return nil
}

func (q *memQueue) Pending(context.Context) ([]outbox.Mutation, error) {
	return q.mutations, nil
}

func (q *memQueue) MarkApplied(_ context.Context, id string) error {
	kept := q.mutations[:0]
	for _, m := range q.mutations {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	q.mutations = kept
	return nil
}

func (q *memQueue) RecordAttempt(context.Context, string) error { return nil }

func validateRequestStatus(status string) error {
	_, err := domain.ParseRequestStatus(status)
	return err
}

func TestSetStatusUseCase_Online(t *testing.T) {
	var buf bytes.Buffer
	var gotID int64
	var gotStatus string
	apply := func(_ context.Context, id int64, status string) error {
		gotID, gotStatus = id, status
		return nil
	}
	u := NewSetStatusUseCase(EntityRequest, validateRequestStatus, apply, nil, false)

	err := u.Execute(context.Background(), 7, "accepted", &buf)

	require.NoError(t, err)
	assert.Equal(t, int64(7), gotID)
	assert.Equal(t, "accepted", gotStatus)
	assert.Contains(t, buf.String(), "request 7 is now accepted")
}

func TestSetStatusUseCase_InvalidStatus(t *testing.T) {
	apply := func(context.Context, int64, string) error {
		t.Fatal("apply should not run for an invalid status")
		return nil
	}
	u := NewSetStatusUseCase(EntityRequest, validateRequestStatus, apply, nil, false)

	err := u.Execute(context.Background(), 7, "bogus", &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "set-status")
}

func TestSetStatusUseCase_OfflineQueues(t *testing.T) {
	var buf bytes.Buffer
	queue := &memQueue{}
	apply := func(context.Context, int64, string) error {
		t.Fatal("apply should not run offline")
		return nil
	}
	u := NewSetStatusUseCase(EntityRequest, validateRequestStatus, apply, queue, true)

	err := u.Execute(context.Background(), 7, "accepted", &buf)

	require.NoError(t, err)
	require.Len(t, queue.mutations, 1)
	assert.Equal(t, EntityRequest, queue.mutations[0].Entity)
	assert.Equal(t, outbox.OpUpdate, queue.mutations[0].Op)
	assert.JSONEq(t, `{"id":7,"status":"accepted"}`, string(queue.mutations[0].Payload))
	assert.Contains(t, buf.String(), "queued")
}

func TestSetStatusUseCase_OfflineWithoutQueue(t *testing.T) {
	apply := func(context.Context, int64, string) error { return nil }
	u := NewSetStatusUseCase(EntityRequest, validateRequestStatus, apply, nil, true)

	err := u.Execute(context.Background(), 7, "accepted", &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline")
}

func TestSetStatusUseCase_ApplyError(t *testing.T) {
	apply := func(context.Context, int64, string) error {
		return fmt.Errorf("no such request")
	}
	u := NewSetStatusUseCase(EntityRequest, validateRequestStatus, apply, nil, false)

	err := u.Execute(context.Background(), 7, "accepted", &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such request")
}
