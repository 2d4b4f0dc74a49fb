package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/outbox"
)

// MutationStore is the storage surface queued mutations replay against.
type MutationStore interface {
	InsertRequest(ctx context.Context, r *domain.Request) (int64, error)
	InsertBooking(ctx context.Context, b *domain.Booking) (int64, error)
	InsertClient(ctx context.Context, c *domain.Client) (int64, error)
	InsertProperty(ctx context.Context, p *domain.Property) (int64, error)
	InsertProject(ctx context.Context, p *domain.Project) (int64, error)
	InsertTask(ctx context.Context, t *domain.Task) (int64, error)
	InsertInvoice(ctx context.Context, inv *domain.Invoice) (int64, error)
	InsertNotice(ctx context.Context, n *domain.Notice) (int64, error)

	UpdateRequestStatus(ctx context.Context, id int64, status domain.RequestStatus) error
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdateClientStatus(ctx context.Context, id int64, status domain.ClientStatus) error
	UpdatePropertyStatus(ctx context.Context, id int64, status domain.PropertyStatus) error
	UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) error
	UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) error
	UpdateInvoiceStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
	MarkNoticeRead(ctx context.Context, id int64) error
}

// StoreApplier replays queued mutations against local storage.
type StoreApplier struct {
	store MutationStore
}

// NewStoreApplier creates an applier over the given store.
func NewStoreApplier(store MutationStore) *StoreApplier {
	if store == nil {
		panic("NewStoreApplier: store dependency cannot be nil")
	}
	return &StoreApplier{store: store}
}

// Apply replays one mutation.
func (a *StoreApplier) Apply(ctx context.Context, m outbox.Mutation) error {
	switch m.Op {
	case outbox.OpInsert:
		return a.applyInsert(ctx, m)
	case outbox.OpUpdate:
		return a.applyUpdate(ctx, m)
	default:
		return fmt.Errorf("apply: unsupported op %q for %s", m.Op, m.Entity)
	}
}

func (a *StoreApplier) applyInsert(ctx context.Context, m outbox.Mutation) error {
	var err error
	switch m.Entity {
	case EntityRequest:
		var r domain.Request
		if err = json.Unmarshal(m.Payload, &r); err == nil {
			_, err = a.store.InsertRequest(ctx, &r)
		}
	case EntityBooking:
		var b domain.Booking
		if err = json.Unmarshal(m.Payload, &b); err == nil {
			_, err = a.store.InsertBooking(ctx, &b)
		}
	case EntityClient:
		var c domain.Client
		if err = json.Unmarshal(m.Payload, &c); err == nil {
			_, err = a.store.InsertClient(ctx, &c)
		}
	case EntityProperty:
		var p domain.Property
		if err = json.Unmarshal(m.Payload, &p); err == nil {
			_, err = a.store.InsertProperty(ctx, &p)
		}
	case EntityProject:
		var p domain.Project
		if err = json.Unmarshal(m.Payload, &p); err == nil {
			_, err = a.store.InsertProject(ctx, &p)
		}
	case EntityTask:
		var t domain.Task
		if err = json.Unmarshal(m.Payload, &t); err == nil {
			_, err = a.store.InsertTask(ctx, &t)
		}
	case EntityInvoice:
		var inv domain.Invoice
		if err = json.Unmarshal(m.Payload, &inv); err == nil {
			_, err = a.store.InsertInvoice(ctx, &inv)
		}
	case EntityNotice:
		var n domain.Notice
		if err = json.Unmarshal(m.Payload, &n); err == nil {
			_, err = a.store.InsertNotice(ctx, &n)
		}
	default:
		return fmt.Errorf("apply: unknown entity %q", m.Entity)
	}
	if err != nil {
		return fmt.Errorf("apply: insert %s: %w", m.Entity, err)
	}
	return nil
}

func (a *StoreApplier) applyUpdate(ctx context.Context, m outbox.Mutation) error {
	if m.Entity == EntityNotice {
		var change noticeRead
		if err := json.Unmarshal(m.Payload, &change); err != nil {
			return fmt.Errorf("apply: decode notice update: %w", err)
		}
		if err := a.store.MarkNoticeRead(ctx, change.ID); err != nil {
			return fmt.Errorf("apply: mark notice read: %w", err)
		}
		return nil
	}

	var change statusChange
	if err := json.Unmarshal(m.Payload, &change); err != nil {
		return fmt.Errorf("apply: decode %s update: %w", m.Entity, err)
	}

	var err error
	switch m.Entity {
	case EntityRequest:
		var status domain.RequestStatus
		if status, err = domain.ParseRequestStatus(change.Status); err == nil {
			err = a.store.UpdateRequestStatus(ctx, change.ID, status)
		}
	case EntityBooking:
		var status domain.BookingStatus
		if status, err = domain.ParseBookingStatus(change.Status); err == nil {
			err = a.store.UpdateBookingStatus(ctx, change.ID, status)
		}
	case EntityClient:
		var status domain.ClientStatus
		if status, err = domain.ParseClientStatus(change.Status); err == nil {
			err = a.store.UpdateClientStatus(ctx, change.ID, status)
		}
	case EntityProperty:
		var status domain.PropertyStatus
		if status, err = domain.ParsePropertyStatus(change.Status); err == nil {
			err = a.store.UpdatePropertyStatus(ctx, change.ID, status)
		}
	case EntityProject:
		var status domain.ProjectStatus
		if status, err = domain.ParseProjectStatus(change.Status); err == nil {
			err = a.store.UpdateProjectStatus(ctx, change.ID, status)
		}
	case EntityTask:
		var status domain.TaskStatus
		if status, err = domain.ParseTaskStatus(change.Status); err == nil {
			err = a.store.UpdateTaskStatus(ctx, change.ID, status)
		}
	case EntityInvoice:
		var status domain.InvoiceStatus
		if status, err = domain.ParseInvoiceStatus(change.Status); err == nil {
			err = a.store.UpdateInvoiceStatus(ctx, change.ID, status)
		}
	default:
		return fmt.Errorf("apply: unknown entity %q", m.Entity)
	}
	if err != nil {
		return fmt.Errorf("apply: update %s %d: %w", m.Entity, change.ID, err)
	}
	return nil
}
