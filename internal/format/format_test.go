package format

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldopshq/fieldops/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"simple", Simple},
		{"table", Table},
		{"json", JSON},
		{"TABLE", Table},
		{"csv", Simple},
		{"", Simple},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.input), "input %q", tt.input)
	}
}

func TestSummary(t *testing.T) {
	counts := map[string]int{"new": 2, "declined": 1}
	statuses := []string{"new", "reviewing", "declined"}

	got := Summary(counts, statuses)

	assert.Equal(t, "new:2  reviewing:0  declined:1  total:3", got)
}

func TestSummary_Empty(t *testing.T) {
	got := Summary(map[string]int{}, []string{"active", "archived"})

	assert.Equal(t, "active:0  archived:0  total:0", got)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer

	WriteTable(&buf, []string{"ID", "NAME"}, [][]string{
		{"1", "Amy Santos"},
		{"2", "Bob"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  NAME", lines[0])
	assert.Equal(t, "--  ----------", lines[1])
	assert.Equal(t, "1   Amy Santos", lines[2])
	assert.Equal(t, "2   Bob", lines[3])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSON(&buf, []map[string]int{{"id": 1}})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, buf.String())
}

func TestTaskRow_NullableDue(t *testing.T) {
	created := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	withDue := TaskRow(domain.Task{ID: 1, Title: "Mow", Status: domain.TaskPending, Priority: domain.PriorityHigh, DueAt: &due, CreatedAt: created})
	withoutDue := TaskRow(domain.Task{ID: 2, Title: "Rake", Status: domain.TaskBacklog, Priority: domain.PriorityLow, CreatedAt: created})

	assert.Equal(t, []string{"1", "Mow", "pending", "high", "2024-03-20", "2024-03-05"}, withDue)
	assert.Equal(t, []string{"2", "Rake", "backlog", "low", "-", "2024-03-05"}, withoutDue)
}

func TestInvoiceRow_Money(t *testing.T) {
	issued := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	row := InvoiceRow(domain.Invoice{
		ID: 3, Number: "INV-0042", ClientName: "Amy", Status: domain.InvoiceSent,
		TotalCents: 123456, IssuedAt: issued, CreatedAt: issued,
	})

	assert.Equal(t, "$1234.56", row[4])
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.05", formatCents(5))
	assert.Equal(t, "$10.00", formatCents(1000))
	assert.Equal(t, "-$2.50", formatCents(-250))
}
