package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldopshq/fieldops/internal/collection"
)

func TestTaskPriority_Weight(t *testing.T) {
	tests := []struct {
		name     string
		priority TaskPriority
		want     float64
	}{
		{"low", PriorityLow, 1},
		{"medium", PriorityMedium, 2},
		{"high", PriorityHigh, 3},
		{"unknown", TaskPriority("bogus"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.priority.Weight())
		})
	}
}

func TestParseTaskStatus(t *testing.T) {
	status, err := ParseTaskStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, TaskInProgress, status)

	_, err = ParseTaskStatus("doing")
	assert.Error(t, err)
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"past due pending", Task{Status: TaskPending, DueAt: &past}, true},
		{"past due completed", Task{Status: TaskCompleted, DueAt: &past}, false},
		{"future due", Task{Status: TaskPending, DueAt: &future}, false},
		{"no due date", Task{Status: TaskPending}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.IsOverdue(now))
		})
	}
}

func TestTaskAccessors_DueDateNullsSortLast(t *testing.T) {
	now := time.Now()
	due := now.AddDate(0, 0, 3)
	records := []Task{
		{ID: 1, Title: "no due", Status: TaskPending, Priority: PriorityLow, CreatedAt: now},
		{ID: 2, Title: "has due", Status: TaskPending, Priority: PriorityLow, DueAt: &due, CreatedAt: now},
	}

	for _, key := range []collection.SortKey{TaskSortDueEarliest, TaskSortDueLatest} {
		view := collection.Evaluate(records, collection.Query{Sort: key}, TaskAccessors())
		require.Len(t, view.Items, 2)
		assert.Equal(t, int64(2), view.Items[0].ID, "sort key %s", key)
		assert.Equal(t, int64(1), view.Items[1].ID, "sort key %s", key)
	}
}

func TestTaskAccessors_PriorityHighFirst(t *testing.T) {
	now := time.Now()
	records := []Task{
		{ID: 1, Title: "a", Status: TaskPending, Priority: PriorityLow, CreatedAt: now},
		{ID: 2, Title: "b", Status: TaskPending, Priority: PriorityHigh, CreatedAt: now},
		{ID: 3, Title: "c", Status: TaskPending, Priority: PriorityMedium, CreatedAt: now},
		// Equal priority to ID 2; stability keeps it after.
		{ID: 4, Title: "d", Status: TaskPending, Priority: PriorityHigh, CreatedAt: now},
	}

	view := collection.Evaluate(records, collection.Query{Sort: TaskSortPriorityHigh}, TaskAccessors())

	got := make([]int64, len(view.Items))
	for i, task := range view.Items {
		got[i] = task.ID
	}
	assert.Equal(t, []int64{2, 4, 3, 1}, got)
}

func TestTask_Validate(t *testing.T) {
	valid := Task{Title: "Mow lawn", Status: TaskBacklog, Priority: PriorityMedium, CreatedAt: time.Now()}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Priority = "urgent"
	assert.Error(t, bad.Validate())
}
