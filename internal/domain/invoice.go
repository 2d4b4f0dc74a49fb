package domain

import (
	"fmt"
	"time"

	"github.com/fieldopshq/fieldops/internal/collection"
)

// Invoice is a bill issued to a client. Amounts are kept in cents to
// avoid floating-point money.
type Invoice struct {
	ID         int64
	ClientName string
	Number     string
	Status     InvoiceStatus
	TotalCents int64
	IssuedAt   time.Time
	DueAt      *time.Time
	CreatedAt  time.Time
}

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
	InvoiceVoid    InvoiceStatus = "void"
)

// IsValid checks if the invoice status is valid.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceVoid:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s InvoiceStatus) String() string {
	return string(s)
}

// ParseInvoiceStatus parses a string into an InvoiceStatus.
func ParseInvoiceStatus(status string) (InvoiceStatus, error) {
	is := InvoiceStatus(status)
	if !is.IsValid() {
		return "", fmt.Errorf("invalid invoice status: %s", status)
	}
	return is, nil
}

// InvoiceStatuses returns all invoice statuses in display order.
func InvoiceStatuses() []string {
	return []string{
		InvoiceDraft.String(),
		InvoiceSent.String(),
		InvoicePaid.String(),
		InvoiceOverdue.String(),
		InvoiceVoid.String(),
	}
}

// Sort keys supported by invoice collections.
const (
	InvoiceSortNewest     collection.SortKey = "newest"
	InvoiceSortDueSoon    collection.SortKey = "due_soon"
	InvoiceSortAmountHigh collection.SortKey = "amount_high"
)

// InvoiceSortKeys returns the invoice sort keys in cycle order.
func InvoiceSortKeys() []collection.SortKey {
	return []collection.SortKey{InvoiceSortNewest, InvoiceSortDueSoon, InvoiceSortAmountHigh}
}

// Validate validates the invoice and returns an error if invalid.
func (i *Invoice) Validate() error {
	if i.ClientName == "" {
		return fmt.Errorf("invoice client name cannot be empty")
	}
	if i.Number == "" {
		return fmt.Errorf("invoice number cannot be empty")
	}
	if !i.Status.IsValid() {
		return fmt.Errorf("invalid invoice status: %s", i.Status)
	}
	if i.TotalCents < 0 {
		return fmt.Errorf("invoice total cannot be negative: %d", i.TotalCents)
	}
	if i.IssuedAt.IsZero() {
		return fmt.Errorf("invoice issue time cannot be zero")
	}
	return nil
}

// InvoiceAccessors binds Invoice to the collection view engine.
func InvoiceAccessors() collection.Accessors[Invoice] {
	return collection.Accessors[Invoice]{
		Status: func(i Invoice) string { return i.Status.String() },
		SearchText: func(i Invoice) []string {
			return []string{i.ClientName, i.Number}
		},
		Sorts: map[collection.SortKey]collection.SortRule[Invoice]{
			InvoiceSortNewest: {Direction: collection.Descending, Value: func(i Invoice) collection.SortValue {
				return collection.TimeValue(i.CreatedAt)
			}},
			InvoiceSortDueSoon: {Direction: collection.Ascending, Value: func(i Invoice) collection.SortValue {
				if i.DueAt == nil {
					return collection.NoValue()
				}
				return collection.TimeValue(*i.DueAt)
			}},
			InvoiceSortAmountHigh: {Direction: collection.Descending, Value: func(i Invoice) collection.SortValue {
				return collection.NumberValue(float64(i.TotalCents))
			}},
		},
	}
}
