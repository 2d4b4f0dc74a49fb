package domain

import (
	"fmt"
	"time"

	"github.com/fieldopshq/fieldops/internal/collection"
)

// Client is a customer of the business.
type Client struct {
	ID        int64
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	Status    ClientStatus
	CreatedAt time.Time
}

// ClientStatus represents the relationship state of a client.
type ClientStatus string

const (
	ClientLead     ClientStatus = "lead"
	ClientActive   ClientStatus = "active"
	ClientArchived ClientStatus = "archived"
)

// IsValid checks if the client status is valid.
func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientLead, ClientActive, ClientArchived:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s ClientStatus) String() string {
	return string(s)
}

// ParseClientStatus parses a string into a ClientStatus.
func ParseClientStatus(status string) (ClientStatus, error) {
	cs := ClientStatus(status)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid client status: %s", status)
	}
	return cs, nil
}

// ClientStatuses returns all client statuses in display order.
func ClientStatuses() []string {
	return []string{ClientLead.String(), ClientActive.String(), ClientArchived.String()}
}

// Sort keys supported by client collections.
const (
	ClientSortNameAZ collection.SortKey = "name_az"
	ClientSortNameZA collection.SortKey = "name_za"
	ClientSortNewest collection.SortKey = "newest"
)

// ClientSortKeys returns the client sort keys in cycle order.
func ClientSortKeys() []collection.SortKey {
	return []collection.SortKey{ClientSortNameAZ, ClientSortNameZA, ClientSortNewest}
}

// Validate validates the client and returns an error if invalid.
func (c *Client) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("client name cannot be empty")
	}
	if !c.Status.IsValid() {
		return fmt.Errorf("invalid client status: %s", c.Status)
	}
	if c.CreatedAt.IsZero() {
		return fmt.Errorf("client creation time cannot be zero")
	}
	return nil
}

// ClientAccessors binds Client to the collection view engine.
func ClientAccessors() collection.Accessors[Client] {
	return collection.Accessors[Client]{
		Status: func(c Client) string { return c.Status.String() },
		SearchText: func(c Client) []string {
			fields := []string{c.Name}
			for _, opt := range []*string{c.Email, c.Phone, c.Address} {
				if opt != nil {
					fields = append(fields, *opt)
				}
			}
			return fields
		},
		Sorts: map[collection.SortKey]collection.SortRule[Client]{
			ClientSortNameAZ: {Direction: collection.Ascending, Value: func(c Client) collection.SortValue {
				return collection.StringValue(c.Name)
			}},
			ClientSortNameZA: {Direction: collection.Descending, Value: func(c Client) collection.SortValue {
				return collection.StringValue(c.Name)
			}},
			ClientSortNewest: {Direction: collection.Descending, Value: func(c Client) collection.SortValue {
				return collection.TimeValue(c.CreatedAt)
			}},
		},
	}
}
