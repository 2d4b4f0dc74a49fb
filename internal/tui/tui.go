// Package tui is an interactive browser for one record collection.
// Status tabs, live search, and sort cycling all run through the
// collection engine, so the view always matches what the CLI prints.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldopshq/fieldops/internal/collection"
)

// Source supplies the records and presentation for one collection.
type Source[T any] struct {
	// Title names the collection in the header, e.g. "Requests".
	Title     string
	Statuses  []string
	SortKeys  []collection.SortKey
	Accessors collection.Accessors[T]
	Fetch     func(context.Context) ([]T, error)
	Headers   []string
	Row       func(T) []string
}

type recordsMsg[T any] struct {
	records []T
	err     error
}

type model[T any] struct {
	src     Source[T]
	ctx     context.Context
	records []T
	view    collection.View[T]

	// tabs holds "all" plus the entity statuses in display order.
	tabs    []string
	tabIdx  int
	sortIdx int
	search  textinput.Model

	cursor int
	width  int
	height int
	err    error
}

func newModel[T any](ctx context.Context, src Source[T]) model[T] {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/"
	search.CharLimit = 64

	return model[T]{
		src:    src,
		ctx:    ctx,
		tabs:   append([]string{collection.StatusAll}, src.Statuses...),
		search: search,
	}
}

// Run starts the browser and blocks until the user quits.
func Run[T any](ctx context.Context, src Source[T]) error {
	if src.Fetch == nil {
		panic("tui.Run: source fetch cannot be nil")
	}
	p := tea.NewProgram(newModel(ctx, src), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model[T]) Init() tea.Cmd {
	return m.load()
}

func (m model[T]) load() tea.Cmd {
	return func() tea.Msg {
		records, err := m.src.Fetch(m.ctx)
		return recordsMsg[T]{records: records, err: err}
	}
}

func (m model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsMsg[T]:
		m.err = msg.err
		m.records = msg.records
		m.refresh()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "esc":
			m.search.Blur()
			m.search.SetValue("")
			m.refresh()
			return m, nil
		case "enter":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refresh()
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "tab", "right", "l":
		m.tabIdx = (m.tabIdx + 1) % len(m.tabs)
		m.refresh()
	case "shift+tab", "left", "h":
		m.tabIdx = (m.tabIdx - 1 + len(m.tabs)) % len(m.tabs)
		m.refresh()
	case "s":
		if len(m.src.SortKeys) > 0 {
			m.sortIdx = (m.sortIdx + 1) % len(m.src.SortKeys)
			m.refresh()
		}
	case "r":
		return m, m.load()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.view.Items)-1 {
			m.cursor++
		}
	case "g":
		m.cursor = 0
	case "G":
		if n := len(m.view.Items); n > 0 {
			m.cursor = n - 1
		}
	}
	return m, nil
}

// refresh re-runs the engine against the current query. The cursor is
// clamped so it never points past the filtered rows.
func (m *model[T]) refresh() {
	m.view = collection.Evaluate(m.records, collection.Query{
		Status: m.tabs[m.tabIdx],
		Search: m.search.Value(),
		Sort:   m.currentSort(),
	}, m.src.Accessors)
	if m.cursor >= len(m.view.Items) {
		m.cursor = len(m.view.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model[T]) currentSort() collection.SortKey {
	if len(m.src.SortKeys) == 0 {
		return ""
	}
	return m.src.SortKeys[m.sortIdx]
}

func (m model[T]) total() int {
	total := 0
	for _, n := range m.view.Counts {
		total += n
	}
	return total
}

// tabLabel renders one tab caption with its badge count.
func (m model[T]) tabLabel(status string) string {
	if status == collection.StatusAll {
		return fmt.Sprintf("%s %d", status, m.total())
	}
	return fmt.Sprintf("%s %d", strings.ReplaceAll(status, "_", " "), m.view.Counts[status])
}
