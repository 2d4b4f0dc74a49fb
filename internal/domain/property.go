package domain

import (
	"fmt"
	"time"

	"github.com/fieldopshq/fieldops/internal/collection"
)

// Property is a serviced location belonging to a client.
type Property struct {
	ID        int64
	ClientID  int64
	Address   string
	City      string
	Nickname  *string
	Status    PropertyStatus
	CreatedAt time.Time
}

// PropertyStatus represents whether a property is still serviced.
type PropertyStatus string

const (
	PropertyActive   PropertyStatus = "active"
	PropertyArchived PropertyStatus = "archived"
)

// IsValid checks if the property status is valid.
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyActive, PropertyArchived:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s PropertyStatus) String() string {
	return string(s)
}

// ParsePropertyStatus parses a string into a PropertyStatus.
func ParsePropertyStatus(status string) (PropertyStatus, error) {
	ps := PropertyStatus(status)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid property status: %s", status)
	}
	return ps, nil
}

// PropertyStatuses returns all property statuses in display order.
func PropertyStatuses() []string {
	return []string{PropertyActive.String(), PropertyArchived.String()}
}

// Sort keys supported by property collections.
const (
	PropertySortAddressAZ collection.SortKey = "address_az"
	PropertySortNewest    collection.SortKey = "newest"
)

// PropertySortKeys returns the property sort keys in cycle order.
func PropertySortKeys() []collection.SortKey {
	return []collection.SortKey{PropertySortAddressAZ, PropertySortNewest}
}

// Validate validates the property and returns an error if invalid.
func (p *Property) Validate() error {
	if p.ClientID <= 0 {
		return fmt.Errorf("invalid property client ID: %d", p.ClientID)
	}
	if p.Address == "" {
		return fmt.Errorf("property address cannot be empty")
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("invalid property status: %s", p.Status)
	}
	if p.CreatedAt.IsZero() {
		return fmt.Errorf("property creation time cannot be zero")
	}
	return nil
}

// PropertyAccessors binds Property to the collection view engine.
func PropertyAccessors() collection.Accessors[Property] {
	return collection.Accessors[Property]{
		Status: func(p Property) string { return p.Status.String() },
		SearchText: func(p Property) []string {
			nickname := ""
			if p.Nickname != nil {
				nickname = *p.Nickname
			}
			return []string{p.Address, p.City, nickname}
		},
		Sorts: map[collection.SortKey]collection.SortRule[Property]{
			PropertySortAddressAZ: {Direction: collection.Ascending, Value: func(p Property) collection.SortValue {
				return collection.StringValue(p.Address)
			}},
			PropertySortNewest: {Direction: collection.Descending, Value: func(p Property) collection.SortValue {
				return collection.TimeValue(p.CreatedAt)
			}},
		},
	}
}
