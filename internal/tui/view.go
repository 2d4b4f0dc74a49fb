package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("212")).Underline(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const helpLine = "tab/←→ status  / search  s sort  j/k move  r reload  q quit"

func (m model[T]) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.src.Title))
	if sort := m.currentSort(); sort != "" {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  sorted by %s", sort)))
	}
	b.WriteString("\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.search.Focused() || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(helpLine))
		return b.String()
	}

	b.WriteString(m.renderRows())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	return b.String()
}

func (m model[T]) renderTabs() string {
	labels := make([]string, 0, len(m.tabs))
	for i, status := range m.tabs {
		style := tabStyle
		if i == m.tabIdx {
			style = activeTabStyle
		}
		labels = append(labels, style.Render(m.tabLabel(status)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

func (m model[T]) renderRows() string {
	if len(m.view.Items) == 0 {
		return helpStyle.Render("no matching records")
	}

	widths := make([]int, len(m.src.Headers))
	for i, h := range m.src.Headers {
		widths[i] = len(h)
	}
	rows := make([][]string, 0, len(m.view.Items))
	for _, item := range m.view.Items {
		row := m.src.Row(item)
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	pad := func(cells []string) string {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			if i < len(widths) {
				padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
			} else {
				padded[i] = cell
			}
		}
		return strings.TrimRight(strings.Join(padded, "  "), " ")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(pad(m.src.Headers)))
	b.WriteString("\n")
	for i, row := range rows {
		line := pad(row)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
