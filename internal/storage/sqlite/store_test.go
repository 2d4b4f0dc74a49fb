package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/outbox"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "fieldops.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestRequests_Roundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	description := "broken gate latch"
	preferred := time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC)
	id, err := store.InsertRequest(ctx, &domain.Request{
		ClientName:  "Amy Santos",
		Title:       "Gate repair",
		Description: &description,
		Status:      domain.RequestNew,
		PreferredAt: &preferred,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = store.InsertRequest(ctx, &domain.Request{
		ClientName: "Bob Lee",
		Title:      "Lawn quote",
		Status:     domain.RequestReviewing,
	})
	require.NoError(t, err)

	requests, err := store.ListRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	first := requests[0]
	assert.Equal(t, "Amy Santos", first.ClientName)
	require.NotNil(t, first.Description)
	assert.Equal(t, description, *first.Description)
	require.NotNil(t, first.PreferredAt)
	assert.True(t, preferred.Equal(*first.PreferredAt))
	assert.False(t, first.CreatedAt.IsZero())

	second := requests[1]
	assert.Nil(t, second.Description)
	assert.Nil(t, second.PreferredAt)
}

func TestRequests_InvalidRecordRejected(t *testing.T) {
	store := newTestStore(t)

	_, err := store.InsertRequest(context.Background(), &domain.Request{
		Title:  "No client",
		Status: domain.RequestNew,
	})
	assert.Error(t, err)
}

func TestUpdateRequestStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.InsertRequest(ctx, &domain.Request{
		ClientName: "Amy", Title: "t", Status: domain.RequestNew,
	})
	require.NoError(t, err)

	require.NoError(t, store.UpdateRequestStatus(ctx, id, domain.RequestAccepted))

	requests, err := store.ListRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestAccepted, requests[0].Status)

	assert.ErrorIs(t, store.UpdateRequestStatus(ctx, 9999, domain.RequestDeclined), ErrNotFound)
	assert.ErrorIs(t, store.UpdateRequestStatus(ctx, 0, domain.RequestDeclined), ErrInvalidID)
	assert.Error(t, store.UpdateRequestStatus(ctx, id, "bogus"))
}

func TestDeleteRequest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.InsertRequest(ctx, &domain.Request{
		ClientName: "Amy", Title: "t", Status: domain.RequestNew,
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteRequest(ctx, id))
	assert.ErrorIs(t, store.DeleteRequest(ctx, id), ErrNotFound)

	requests, err := store.ListRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestTasks_NullableDueDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	due := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	_, err := store.InsertTask(ctx, &domain.Task{Title: "with due", Status: domain.TaskPending, Priority: domain.PriorityHigh, DueAt: &due})
	require.NoError(t, err)
	_, err = store.InsertTask(ctx, &domain.Task{Title: "without due", Status: domain.TaskBacklog, Priority: domain.PriorityLow})
	require.NoError(t, err)

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	require.NotNil(t, tasks[0].DueAt)
	assert.True(t, due.Equal(*tasks[0].DueAt))
	assert.Nil(t, tasks[1].DueAt)
}

func TestTasks_DefaultPriority(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.InsertTask(ctx, &domain.Task{Title: "t", Status: domain.TaskBacklog})
	require.NoError(t, err)

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, tasks[0].Priority)
}

func TestCompleteTask(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.InsertTask(ctx, &domain.Task{Title: "t", Status: domain.TaskInProgress, Priority: domain.PriorityLow})
	require.NoError(t, err)

	require.NoError(t, store.CompleteTask(ctx, id))

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, tasks[0].Status)
}

func TestClients_Roundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	email := "amy@example.com"
	id, err := store.InsertClient(ctx, &domain.Client{Name: "Amy", Email: &email, Status: domain.ClientLead})
	require.NoError(t, err)

	client, err := store.GetClientByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Amy", client.Name)
	require.NotNil(t, client.Email)
	assert.Equal(t, email, *client.Email)
	assert.Nil(t, client.Phone)

	_, err = store.GetClientByID(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkNoticeRead(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.InsertNotice(ctx, &domain.Notice{Title: "Payment received", Kind: domain.NoticePayment})
	require.NoError(t, err)

	require.NoError(t, store.MarkNoticeRead(ctx, id))

	notices, err := store.ListNotices(ctx)
	require.NoError(t, err)
	require.NotNil(t, notices[0].ReadAt)
	firstRead := *notices[0].ReadAt

	// Marking again is a no-op, not an error.
	require.NoError(t, store.MarkNoticeRead(ctx, id))
	notices, err = store.ListNotices(ctx)
	require.NoError(t, err)
	assert.Equal(t, firstRead, *notices[0].ReadAt)

	assert.ErrorIs(t, store.MarkNoticeRead(ctx, 9999), ErrNotFound)
}

func TestOutbox_Queue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := outbox.New("tasks", outbox.OpInsert, map[string]string{"title": "a"})
	require.NoError(t, err)
	second, err := outbox.New("tasks", outbox.OpUpdate, map[string]string{"status": "completed"})
	require.NoError(t, err)
	second.QueuedAt = first.QueuedAt.Add(time.Second)

	require.NoError(t, store.Enqueue(ctx, first))
	require.NoError(t, store.Enqueue(ctx, second))

	pending, err := store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.JSONEq(t, `{"title":"a"}`, string(pending[0].Payload))

	require.NoError(t, store.MarkApplied(ctx, first.ID))
	assert.ErrorIs(t, store.MarkApplied(ctx, first.ID), ErrNotFound)

	pending, err = store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	require.NoError(t, store.RecordAttempt(ctx, second.ID))
	pending, err = store.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending[0].Attempts)
}
