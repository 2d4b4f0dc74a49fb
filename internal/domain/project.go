package domain

import (
	"fmt"
	"time"

	"github.com/fieldopshq/fieldops/internal/collection"
)

// Project is a multi-visit engagement for a client, typically spanning
// several bookings and tasks.
type Project struct {
	ID        int64
	ClientID  int64
	Name      string
	Summary   *string
	Status    ProjectStatus
	StartsAt  *time.Time
	CreatedAt time.Time
}

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
)

// IsValid checks if the project status is valid.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectDraft, ProjectActive, ProjectOnHold, ProjectCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s ProjectStatus) String() string {
	return string(s)
}

// ParseProjectStatus parses a string into a ProjectStatus.
func ParseProjectStatus(status string) (ProjectStatus, error) {
	ps := ProjectStatus(status)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid project status: %s", status)
	}
	return ps, nil
}

// ProjectStatuses returns all project statuses in display order.
func ProjectStatuses() []string {
	return []string{
		ProjectDraft.String(),
		ProjectActive.String(),
		ProjectOnHold.String(),
		ProjectCompleted.String(),
	}
}

// Sort keys supported by project collections.
const (
	ProjectSortNewest    collection.SortKey = "newest"
	ProjectSortNameAZ    collection.SortKey = "name_az"
	ProjectSortStartSoon collection.SortKey = "start_soon"
)

// ProjectSortKeys returns the project sort keys in cycle order.
func ProjectSortKeys() []collection.SortKey {
	return []collection.SortKey{ProjectSortNewest, ProjectSortNameAZ, ProjectSortStartSoon}
}

// Validate validates the project and returns an error if invalid.
func (p *Project) Validate() error {
	if p.ClientID <= 0 {
		return fmt.Errorf("invalid project client ID: %d", p.ClientID)
	}
	if p.Name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("invalid project status: %s", p.Status)
	}
	if p.CreatedAt.IsZero() {
		return fmt.Errorf("project creation time cannot be zero")
	}
	return nil
}

// ProjectAccessors binds Project to the collection view engine.
func ProjectAccessors() collection.Accessors[Project] {
	return collection.Accessors[Project]{
		Status: func(p Project) string { return p.Status.String() },
		SearchText: func(p Project) []string {
			summary := ""
			if p.Summary != nil {
				summary = *p.Summary
			}
			return []string{p.Name, summary}
		},
		Sorts: map[collection.SortKey]collection.SortRule[Project]{
			ProjectSortNewest: {Direction: collection.Descending, Value: func(p Project) collection.SortValue {
				return collection.TimeValue(p.CreatedAt)
			}},
			ProjectSortNameAZ: {Direction: collection.Ascending, Value: func(p Project) collection.SortValue {
				return collection.StringValue(p.Name)
			}},
			ProjectSortStartSoon: {Direction: collection.Ascending, Value: func(p Project) collection.SortValue {
				if p.StartsAt == nil {
					return collection.NoValue()
				}
				return collection.TimeValue(*p.StartsAt)
			}},
		},
	}
}
