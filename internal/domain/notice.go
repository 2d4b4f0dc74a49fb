package domain

import (
	"fmt"
	"time"

	"github.com/fieldopshq/fieldops/internal/collection"
)

// Notice is an in-app notification shown to the operator.
type Notice struct {
	ID        int64
	Title     string
	Body      string
	Kind      NoticeKind
	ReadAt    *time.Time
	CreatedAt time.Time
}

// NoticeKind categorizes a notice for filtering and display.
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeBooking NoticeKind = "booking"
	NoticePayment NoticeKind = "payment"
	NoticeSystem  NoticeKind = "system"
)

// IsValid checks if the notice kind is valid.
func (k NoticeKind) IsValid() bool {
	switch k {
	case NoticeInfo, NoticeBooking, NoticePayment, NoticeSystem:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k NoticeKind) String() string {
	return string(k)
}

// ParseNoticeKind parses a string into a NoticeKind.
func ParseNoticeKind(kind string) (NoticeKind, error) {
	nk := NoticeKind(kind)
	if !nk.IsValid() {
		return "", fmt.Errorf("invalid notice kind: %s", kind)
	}
	return nk, nil
}

// NoticeKinds returns all notice kinds in display order.
func NoticeKinds() []string {
	return []string{
		NoticeInfo.String(),
		NoticeBooking.String(),
		NoticePayment.String(),
		NoticeSystem.String(),
	}
}

// IsRead reports whether the notice has been read.
func (n *Notice) IsRead() bool {
	return n.ReadAt != nil
}

// MarkRead sets the read timestamp if not already set.
func (n *Notice) MarkRead(now time.Time) {
	if n.ReadAt == nil {
		n.ReadAt = &now
	}
}

// Sort keys supported by notice collections.
const (
	NoticeSortNewest      collection.SortKey = "newest"
	NoticeSortOldest      collection.SortKey = "oldest"
	NoticeSortUnreadFirst collection.SortKey = "unread_first"
)

// NoticeSortKeys returns the notice sort keys in cycle order.
func NoticeSortKeys() []collection.SortKey {
	return []collection.SortKey{NoticeSortNewest, NoticeSortOldest, NoticeSortUnreadFirst}
}

// Validate validates the notice and returns an error if invalid.
func (n *Notice) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("notice title cannot be empty")
	}
	if !n.Kind.IsValid() {
		return fmt.Errorf("invalid notice kind: %s", n.Kind)
	}
	if n.CreatedAt.IsZero() {
		return fmt.Errorf("notice creation time cannot be zero")
	}
	return nil
}

// NoticeAccessors binds Notice to the collection view engine. Notices
// filter on kind rather than a workflow status.
func NoticeAccessors() collection.Accessors[Notice] {
	return collection.Accessors[Notice]{
		Status: func(n Notice) string { return n.Kind.String() },
		SearchText: func(n Notice) []string {
			return []string{n.Title, n.Body}
		},
		Sorts: map[collection.SortKey]collection.SortRule[Notice]{
			NoticeSortNewest: {Direction: collection.Descending, Value: func(n Notice) collection.SortValue {
				return collection.TimeValue(n.CreatedAt)
			}},
			NoticeSortOldest: {Direction: collection.Ascending, Value: func(n Notice) collection.SortValue {
				return collection.TimeValue(n.CreatedAt)
			}},
			NoticeSortUnreadFirst: {Direction: collection.Ascending, Value: func(n Notice) collection.SortValue {
				if n.ReadAt == nil {
					return collection.NumberValue(0)
				}
				return collection.NumberValue(1)
			}},
		},
	}
}
