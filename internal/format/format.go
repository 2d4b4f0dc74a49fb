// Package format renders record collections for CLI output. It offers
// simple line, aligned table, and JSON renderings plus the status
// summary line fed by collection view counts.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format selects an output rendering.
type Format string

const (
	Simple Format = "simple"
	Table  Format = "table"
	JSON   Format = "json"
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case Simple, Table, JSON:
		return true
	default:
		return false
	}
}

// Parse normalizes a format string. Unknown values fall back to Simple
// rather than failing the command.
func Parse(value string) Format {
	f := Format(strings.ToLower(value))
	if !f.IsValid() {
		return Simple
	}
	return f
}

// Summary renders one status-count line from a view's counts, keeping
// the caller's status order and showing zeroes so the badge row is
// stable across queries. The trailing figure is the total.
func Summary(counts map[string]int, statuses []string) string {
	parts := make([]string, 0, len(statuses)+1)
	total := 0
	for _, status := range statuses {
		parts = append(parts, fmt.Sprintf("%s:%d", status, counts[status]))
		total += counts[status]
	}
	// Statuses outside the known set still count toward the total.
	for status, n := range counts {
		if !contains(statuses, status) {
			total += n
		}
	}
	parts = append(parts, fmt.Sprintf("total:%d", total))
	return strings.Join(parts, "  ")
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// WriteTable writes rows as an aligned table with a header line.
// Column widths grow to the widest cell.
func WriteTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			if i < len(widths) {
				padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
			} else {
				padded[i] = cell
			}
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " "))
	}

	writeRow(headers)
	separators := make([]string, len(headers))
	for i := range headers {
		separators[i] = strings.Repeat("-", widths[i])
	}
	writeRow(separators)
	for _, row := range rows {
		writeRow(row)
	}
}

// WriteJSON writes items as indented JSON.
func WriteJSON(w io.Writer, items any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("format: encode json: %w", err)
	}
	return nil
}
