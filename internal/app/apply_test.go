package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/outbox"
)

// recordingStore captures the calls the applier makes.
type recordingStore struct {
	inserted []string
	updated  []string
	readIDs  []int64
	fail     error
}

func (s *recordingStore) InsertRequest(_ context.Context, r *domain.Request) (int64, error) {
	s.inserted = append(s.inserted, "request:"+r.Title)
	return 1, s.fail
}

func (s *recordingStore) InsertBooking(context.Context, *domain.Booking) (int64, error) {
	s.inserted = append(s.inserted, "booking")
	return 1, s.fail
}

func (s *recordingStore) InsertClient(context.Context, *domain.Client) (int64, error) {
	s.inserted = append(s.inserted, "client")
	return 1, s.fail
}

func (s *recordingStore) InsertProperty(context.Context, *domain.Property) (int64, error) {
	s.inserted = append(s.inserted, "property")
	return 1, s.fail
}

func (s *recordingStore) InsertProject(context.Context, *domain.Project) (int64, error) {
	s.inserted = append(s.inserted, "project")
	return 1, s.fail
}

func (s *recordingStore) InsertTask(context.Context, *domain.Task) (int64, error) {
	s.inserted = append(s.inserted, "task")
	return 1, s.fail
}

func (s *recordingStore) InsertInvoice(context.Context, *domain.Invoice) (int64, error) {
	s.inserted = append(s.inserted, "invoice")
	return 1, s.fail
}

func (s *recordingStore) InsertNotice(context.Context, *domain.Notice) (int64, error) {
	s.inserted = append(s.inserted, "notice")
	return 1, s.fail
}

func (s *recordingStore) UpdateRequestStatus(_ context.Context, id int64, status domain.RequestStatus) error {
	s.updated = append(s.updated, "request:"+status.String())
	return s.fail
}

func (s *recordingStore) UpdateBookingStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	s.updated = append(s.updated, "booking:"+status.String())
	return s.fail
}

func (s *recordingStore) UpdateClientStatus(_ context.Context, _ int64, status domain.ClientStatus) error {
	s.updated = append(s.updated, "client:"+status.String())
	return s.fail
}

func (s *recordingStore) UpdatePropertyStatus(_ context.Context, _ int64, status domain.PropertyStatus) error {
	s.updated = append(s.updated, "property:"+status.String())
	return s.fail
}

func (s *recordingStore) UpdateProjectStatus(_ context.Context, _ int64, status domain.ProjectStatus) error {
	s.updated = append(s.updated, "project:"+status.String())
	return s.fail
}

func (s *recordingStore) UpdateTaskStatus(_ context.Context, _ int64, status domain.TaskStatus) error {
	s.updated = append(s.updated, "task:"+status.String())
	return s.fail
}

func (s *recordingStore) UpdateInvoiceStatus(_ context.Context, _ int64, status domain.InvoiceStatus) error {
	s.updated = append(s.updated, "invoice:"+status.String())
	return s.fail
}

func (s *recordingStore) MarkNoticeRead(_ context.Context, id int64) error {
	s.readIDs = append(s.readIDs, id)
	return s.fail
}

func mustMutation(t *testing.T, entity, op string, payload any) outbox.Mutation {
	t.Helper()
	m, err := outbox.New(entity, op, payload)
	require.NoError(t, err)
	return m
}

func TestStoreApplier_StatusUpdate(t *testing.T) {
	store := &recordingStore{}
	applier := NewStoreApplier(store)
	m := mustMutation(t, EntityRequest, outbox.OpUpdate, statusChange{ID: 4, Status: "accepted"})

	err := applier.Apply(context.Background(), m)

	require.NoError(t, err)
	assert.Equal(t, []string{"request:accepted"}, store.updated)
}

func TestStoreApplier_NoticeRead(t *testing.T) {
	store := &recordingStore{}
	applier := NewStoreApplier(store)
	m := mustMutation(t, EntityNotice, outbox.OpUpdate, noticeRead{ID: 9})

	err := applier.Apply(context.Background(), m)

	require.NoError(t, err)
	assert.Equal(t, []int64{9}, store.readIDs)
}

func TestStoreApplier_Insert(t *testing.T) {
	store := &recordingStore{}
	applier := NewStoreApplier(store)
	m := mustMutation(t, EntityRequest, outbox.OpInsert, domain.Request{Title: "Hedge trim", Status: domain.RequestNew})

	err := applier.Apply(context.Background(), m)

	require.NoError(t, err)
	assert.Equal(t, []string{"request:Hedge trim"}, store.inserted)
}

func TestStoreApplier_InvalidQueuedStatus(t *testing.T) {
	store := &recordingStore{}
	applier := NewStoreApplier(store)
	m := mustMutation(t, EntityTask, outbox.OpUpdate, statusChange{ID: 1, Status: "bogus"})

	err := applier.Apply(context.Background(), m)

	require.Error(t, err)
	assert.Empty(t, store.updated)
}

func TestStoreApplier_UnknownEntity(t *testing.T) {
	applier := NewStoreApplier(&recordingStore{})
	m := mustMutation(t, "widget", outbox.OpUpdate, statusChange{ID: 1, Status: "x"})

	err := applier.Apply(context.Background(), m)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity")
}

func TestStoreApplier_UnsupportedOp(t *testing.T) {
	applier := NewStoreApplier(&recordingStore{})
	m := mustMutation(t, EntityRequest, outbox.OpDelete, statusChange{ID: 1})

	err := applier.Apply(context.Background(), m)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported op")
}

func TestSyncUseCase_FlushesQueue(t *testing.T) {
	var buf bytes.Buffer
	store := &recordingStore{}
	queue := &memQueue{}
	require.NoError(t, queue.Enqueue(context.Background(), mustMutation(t, EntityRequest, outbox.OpUpdate, statusChange{ID: 1, Status: "accepted"})))
	require.NoError(t, queue.Enqueue(context.Background(), mustMutation(t, EntityNotice, outbox.OpUpdate, noticeRead{ID: 2})))
	u := NewSyncUseCase(queue, NewStoreApplier(store), nil)

	err := u.Execute(context.Background(), &buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "applied 2 queued change(s)")
	assert.Empty(t, queue.mutations)
	assert.Equal(t, []string{"request:accepted"}, store.updated)
	assert.Equal(t, []int64{2}, store.readIDs)
}

func TestSyncUseCase_StopsAtFirstFailure(t *testing.T) {
	var buf bytes.Buffer
	store := &recordingStore{fail: errors.New("row missing")}
	queue := &memQueue{}
	require.NoError(t, queue.Enqueue(context.Background(), mustMutation(t, EntityRequest, outbox.OpUpdate, statusChange{ID: 1, Status: "accepted"})))
	require.NoError(t, queue.Enqueue(context.Background(), mustMutation(t, EntityRequest, outbox.OpUpdate, statusChange{ID: 2, Status: "declined"})))
	u := NewSyncUseCase(queue, NewStoreApplier(store), nil)

	err := u.Execute(context.Background(), &buf)

	require.Error(t, err)
	assert.Len(t, queue.mutations, 2)
}

func TestSyncUseCase_EmptyQueue(t *testing.T) {
	var buf bytes.Buffer
	u := NewSyncUseCase(&memQueue{}, NewStoreApplier(&recordingStore{}), nil)

	err := u.Execute(context.Background(), &buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "nothing to sync")
}

func TestMutationPayloadRoundTrip(t *testing.T) {
	m := mustMutation(t, EntityBooking, outbox.OpUpdate, statusChange{ID: 3, Status: "confirmed"})

	var decoded statusChange
	require.NoError(t, json.Unmarshal(m.Payload, &decoded))
	assert.Equal(t, int64(3), decoded.ID)
	assert.Equal(t, "confirmed", decoded.Status)
}
