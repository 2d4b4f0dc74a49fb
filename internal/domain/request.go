// Package domain provides the domain layer for field-service records.
// It contains the record types, their status enumerations, and the
// accessor sets that bind each record type to the collection view engine.
package domain

import (
	"fmt"
	"time"

	"github.com/fieldopshq/fieldops/internal/collection"
)

// Request is an inbound service request from a prospective or existing
// client, awaiting triage.
type Request struct {
	ID          int64
	ClientName  string
	Title       string
	Description *string
	Status      RequestStatus
	PreferredAt *time.Time
	CreatedAt   time.Time
}

// RequestStatus represents the triage state of a request.
type RequestStatus string

const (
	RequestNew       RequestStatus = "new"
	RequestReviewing RequestStatus = "reviewing"
	RequestAccepted  RequestStatus = "accepted"
	RequestDeclined  RequestStatus = "declined"
	RequestArchived  RequestStatus = "archived"
)

// IsValid checks if the request status is valid.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestNew, RequestReviewing, RequestAccepted, RequestDeclined, RequestArchived:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s RequestStatus) String() string {
	return string(s)
}

// ParseRequestStatus parses a string into a RequestStatus.
func ParseRequestStatus(status string) (RequestStatus, error) {
	rs := RequestStatus(status)
	if !rs.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", status)
	}
	return rs, nil
}

// RequestStatuses returns all request statuses in display order.
func RequestStatuses() []string {
	return []string{
		RequestNew.String(),
		RequestReviewing.String(),
		RequestAccepted.String(),
		RequestDeclined.String(),
		RequestArchived.String(),
	}
}

// Sort keys supported by request collections.
const (
	RequestSortNewest collection.SortKey = "newest"
	RequestSortOldest collection.SortKey = "oldest"
	RequestSortNameAZ collection.SortKey = "name_az"
	RequestSortNameZA collection.SortKey = "name_za"
)

// RequestSortKeys returns the request sort keys in cycle order.
func RequestSortKeys() []collection.SortKey {
	return []collection.SortKey{RequestSortNewest, RequestSortOldest, RequestSortNameAZ, RequestSortNameZA}
}

// Validate validates the request and returns an error if invalid.
func (r *Request) Validate() error {
	if r.ClientName == "" {
		return fmt.Errorf("request client name cannot be empty")
	}
	if r.Title == "" {
		return fmt.Errorf("request title cannot be empty")
	}
	if !r.Status.IsValid() {
		return fmt.Errorf("invalid request status: %s", r.Status)
	}
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("request creation time cannot be zero")
	}
	return nil
}

// RequestAccessors binds Request to the collection view engine.
func RequestAccessors() collection.Accessors[Request] {
	return collection.Accessors[Request]{
		Status: func(r Request) string { return r.Status.String() },
		SearchText: func(r Request) []string {
			description := ""
			if r.Description != nil {
				description = *r.Description
			}
			return []string{r.ClientName, r.Title, description}
		},
		Sorts: map[collection.SortKey]collection.SortRule[Request]{
			RequestSortNewest: {Direction: collection.Descending, Value: func(r Request) collection.SortValue {
				return collection.TimeValue(r.CreatedAt)
			}},
			RequestSortOldest: {Direction: collection.Ascending, Value: func(r Request) collection.SortValue {
				return collection.TimeValue(r.CreatedAt)
			}},
			RequestSortNameAZ: {Direction: collection.Ascending, Value: func(r Request) collection.SortValue {
				return collection.StringValue(r.ClientName)
			}},
			RequestSortNameZA: {Direction: collection.Descending, Value: func(r Request) collection.SortValue {
				return collection.StringValue(r.ClientName)
			}},
		},
	}
}
