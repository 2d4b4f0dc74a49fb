package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/format"
)

func requestSource(records []domain.Request) Source[domain.Request] {
	return Source[domain.Request]{
		Title:     "Requests",
		Statuses:  domain.RequestStatuses(),
		SortKeys:  domain.RequestSortKeys(),
		Accessors: domain.RequestAccessors(),
		Fetch: func(context.Context) ([]domain.Request, error) {
			return records, nil
		},
		Headers: format.RequestHeaders(),
		Row:     format.RequestRow,
	}
}

func loadedModel(t *testing.T, records []domain.Request) model[domain.Request] {
	t.Helper()
	m := newModel(context.Background(), requestSource(records))
	msg := m.load()()
	updated, _ := m.Update(msg)
	loaded, ok := updated.(model[domain.Request])
	require.True(t, ok)
	return loaded
}

func sampleRequests() []domain.Request {
	return []domain.Request{
		{ID: 1, ClientName: "Amy Santos", Title: "Spring cleanup", Status: domain.RequestNew, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, ClientName: "Bob Lee", Title: "Gutter repair", Status: domain.RequestDeclined, CreatedAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 3, ClientName: "Cara Diaz", Title: "Lawn mowing", Status: domain.RequestNew, CreatedAt: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadShowsAllRecords(t *testing.T) {
	m := loadedModel(t, sampleRequests())

	assert.Len(t, m.view.Items, 3)
	assert.Equal(t, 2, m.view.Counts["new"])
	assert.Equal(t, 1, m.view.Counts["declined"])
}

func TestModel_TabCyclingFilters(t *testing.T) {
	m := loadedModel(t, sampleRequests())

	// First tab after "all" is the first entity status.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(model[domain.Request])

	assert.Equal(t, "new", m.tabs[m.tabIdx])
	assert.Len(t, m.view.Items, 2)
	// Counts stay collection-wide while the rows are filtered.
	assert.Equal(t, 1, m.view.Counts["declined"])
}

func TestModel_TabWrapsAround(t *testing.T) {
	m := loadedModel(t, sampleRequests())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(model[domain.Request])

	assert.Equal(t, len(m.tabs)-1, m.tabIdx)
}

func TestModel_SearchFiltersPerKeystroke(t *testing.T) {
	m := loadedModel(t, sampleRequests())

	updated, _ := m.Update(key("/"))
	m = updated.(model[domain.Request])
	require.True(t, m.search.Focused())

	for _, r := range "amy" {
		updated, _ = m.Update(key(string(r)))
		m = updated.(model[domain.Request])
	}

	require.Len(t, m.view.Items, 1)
	assert.Equal(t, "Amy Santos", m.view.Items[0].ClientName)
}

func TestModel_EscClearsSearch(t *testing.T) {
	m := loadedModel(t, sampleRequests())

	updated, _ := m.Update(key("/"))
	m = updated.(model[domain.Request])
	updated, _ = m.Update(key("amy"))
	m = updated.(model[domain.Request])
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(model[domain.Request])

	assert.False(t, m.search.Focused())
	assert.Empty(t, m.search.Value())
	assert.Len(t, m.view.Items, 3)
}

func TestModel_SortCycling(t *testing.T) {
	m := loadedModel(t, sampleRequests())
	require.Equal(t, domain.RequestSortNewest, m.currentSort())

	updated, _ := m.Update(key("s"))
	m = updated.(model[domain.Request])

	assert.Equal(t, domain.RequestSortOldest, m.currentSort())
	assert.Equal(t, int64(1), m.view.Items[0].ID)
}

func TestModel_CursorClampedByFilter(t *testing.T) {
	m := loadedModel(t, sampleRequests())

	updated, _ := m.Update(key("G"))
	m = updated.(model[domain.Request])
	require.Equal(t, 2, m.cursor)

	// Narrowing to one row pulls the cursor back in range.
	updated, _ = m.Update(key("/"))
	m = updated.(model[domain.Request])
	updated, _ = m.Update(key("gutter"))
	m = updated.(model[domain.Request])

	require.Len(t, m.view.Items, 1)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_QuitKey(t *testing.T) {
	m := loadedModel(t, sampleRequests())

	_, cmd := m.Update(key("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_FetchErrorShown(t *testing.T) {
	src := requestSource(nil)
	src.Fetch = func(context.Context) ([]domain.Request, error) {
		return nil, errors.New("db locked")
	}
	m := newModel(context.Background(), src)
	updated, _ := m.Update(m.load()())
	m = updated.(model[domain.Request])

	assert.Contains(t, m.View(), "db locked")
}

func TestModel_ViewShowsBadges(t *testing.T) {
	m := loadedModel(t, sampleRequests())

	out := m.View()

	assert.Contains(t, out, "all 3")
	assert.Contains(t, out, "new 2")
	assert.Contains(t, out, "declined 1")
	assert.Contains(t, out, "Spring cleanup")
}
