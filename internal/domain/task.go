package domain

import (
	"fmt"
	"time"

	"github.com/fieldopshq/fieldops/internal/collection"
)

// Task is a unit of work for the crew, optionally tied to a project.
type Task struct {
	ID        int64
	ProjectID *int64
	Title     string
	Details   *string
	Status    TaskStatus
	Priority  TaskPriority
	DueAt     *time.Time
	CreatedAt time.Time
}

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	TaskBacklog    TaskStatus = "backlog"
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// IsValid checks if the task status is valid.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskBacklog, TaskPending, TaskInProgress, TaskCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s TaskStatus) String() string {
	return string(s)
}

// ParseTaskStatus parses a string into a TaskStatus.
func ParseTaskStatus(status string) (TaskStatus, error) {
	ts := TaskStatus(status)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", status)
	}
	return ts, nil
}

// TaskStatuses returns all task statuses in display order.
func TaskStatuses() []string {
	return []string{
		TaskBacklog.String(),
		TaskPending.String(),
		TaskInProgress.String(),
		TaskCompleted.String(),
	}
}

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// IsValid checks if the task priority is valid.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the priority.
func (p TaskPriority) String() string {
	return string(p)
}

// Weight maps the priority to a numeric weight for sorting. Unknown
// priorities weigh zero and therefore sort below low.
func (p TaskPriority) Weight() float64 {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}

// ParseTaskPriority parses a string into a TaskPriority.
func ParseTaskPriority(priority string) (TaskPriority, error) {
	tp := TaskPriority(priority)
	if !tp.IsValid() {
		return "", fmt.Errorf("invalid task priority: %s", priority)
	}
	return tp, nil
}

// Sort keys supported by task collections. Due-date keys push tasks
// without a due date to the end under both directions.
const (
	TaskSortDueEarliest  collection.SortKey = "due_earliest"
	TaskSortDueLatest    collection.SortKey = "due_latest"
	TaskSortPriorityHigh collection.SortKey = "priority_high"
	TaskSortNewest       collection.SortKey = "newest"
)

// TaskSortKeys returns the task sort keys in cycle order.
func TaskSortKeys() []collection.SortKey {
	return []collection.SortKey{TaskSortDueEarliest, TaskSortDueLatest, TaskSortPriorityHigh, TaskSortNewest}
}

// Validate validates the task and returns an error if invalid.
func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("invalid task status: %s", t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("invalid task priority: %s", t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return fmt.Errorf("task creation time cannot be zero")
	}
	return nil
}

// IsOverdue reports whether the task has a due date in the past and is
// not completed.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueAt != nil && t.DueAt.Before(now) && t.Status != TaskCompleted
}

// TaskAccessors binds Task to the collection view engine.
func TaskAccessors() collection.Accessors[Task] {
	due := func(t Task) collection.SortValue {
		if t.DueAt == nil {
			return collection.NoValue()
		}
		return collection.TimeValue(*t.DueAt)
	}
	return collection.Accessors[Task]{
		Status: func(t Task) string { return t.Status.String() },
		SearchText: func(t Task) []string {
			details := ""
			if t.Details != nil {
				details = *t.Details
			}
			return []string{t.Title, details}
		},
		Sorts: map[collection.SortKey]collection.SortRule[Task]{
			TaskSortDueEarliest: {Direction: collection.Ascending, Value: due},
			TaskSortDueLatest:   {Direction: collection.Descending, Value: due},
			TaskSortPriorityHigh: {Direction: collection.Descending, Value: func(t Task) collection.SortValue {
				return collection.NumberValue(t.Priority.Weight())
			}},
			TaskSortNewest: {Direction: collection.Descending, Value: func(t Task) collection.SortValue {
				return collection.TimeValue(t.CreatedAt)
			}},
		},
	}
}
