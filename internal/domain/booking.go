package domain

import (
	"fmt"
	"time"

	"github.com/fieldopshq/fieldops/internal/collection"
)

// Booking is a scheduled service visit for a client.
type Booking struct {
	ID          int64
	ClientName  string
	ServiceType string
	Notes       *string
	Status      BookingStatus
	ScheduledAt *time.Time
	CreatedAt   time.Time
}

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// IsValid checks if the booking status is valid.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus parses a string into a BookingStatus.
func ParseBookingStatus(status string) (BookingStatus, error) {
	bs := BookingStatus(status)
	if !bs.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", status)
	}
	return bs, nil
}

// BookingStatuses returns all booking statuses in display order.
func BookingStatuses() []string {
	return []string{
		BookingPending.String(),
		BookingConfirmed.String(),
		BookingCompleted.String(),
		BookingCancelled.String(),
	}
}

// Sort keys supported by booking collections. Soonest and latest order by
// the scheduled visit; bookings without a schedule date sort last under
// both.
const (
	BookingSortSoonest collection.SortKey = "soonest"
	BookingSortLatest  collection.SortKey = "latest"
	BookingSortNewest  collection.SortKey = "newest"
)

// BookingSortKeys returns the booking sort keys in cycle order.
func BookingSortKeys() []collection.SortKey {
	return []collection.SortKey{BookingSortSoonest, BookingSortLatest, BookingSortNewest}
}

// Validate validates the booking and returns an error if invalid.
func (b *Booking) Validate() error {
	if b.ClientName == "" {
		return fmt.Errorf("booking client name cannot be empty")
	}
	if b.ServiceType == "" {
		return fmt.Errorf("booking service type cannot be empty")
	}
	if !b.Status.IsValid() {
		return fmt.Errorf("invalid booking status: %s", b.Status)
	}
	if b.CreatedAt.IsZero() {
		return fmt.Errorf("booking creation time cannot be zero")
	}
	return nil
}

// BookingAccessors binds Booking to the collection view engine.
func BookingAccessors() collection.Accessors[Booking] {
	scheduled := func(b Booking) collection.SortValue {
		if b.ScheduledAt == nil {
			return collection.NoValue()
		}
		return collection.TimeValue(*b.ScheduledAt)
	}
	return collection.Accessors[Booking]{
		Status: func(b Booking) string { return b.Status.String() },
		SearchText: func(b Booking) []string {
			notes := ""
			if b.Notes != nil {
				notes = *b.Notes
			}
			return []string{b.ClientName, b.ServiceType, notes}
		},
		Sorts: map[collection.SortKey]collection.SortRule[Booking]{
			BookingSortSoonest: {Direction: collection.Ascending, Value: scheduled},
			BookingSortLatest:  {Direction: collection.Descending, Value: scheduled},
			BookingSortNewest: {Direction: collection.Descending, Value: func(b Booking) collection.SortValue {
				return collection.TimeValue(b.CreatedAt)
			}},
		},
	}
}
