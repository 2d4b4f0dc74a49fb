package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/app"
	"github.com/fieldopshq/fieldops/internal/collection"
	"github.com/fieldopshq/fieldops/internal/format"
)

// listFlags holds the shared list command flags.
type listFlags struct {
	status string
	search string
	sort   string
	format string
}

func registerListFlags(cmd *cobra.Command, flags *listFlags, statuses []string, sorts []collection.SortKey, defaultSort collection.SortKey, defaultFormat string) {
	cmd.Flags().StringVar(&flags.status, "status", collection.StatusAll,
		"Filter by status: "+strings.Join(append([]string{collection.StatusAll}, statuses...), ", "))
	cmd.Flags().StringVar(&flags.search, "search", "", "Case-insensitive substring search")
	cmd.Flags().StringVar(&flags.sort, "sort", string(defaultSort), "Sort key: "+joinSortKeys(sorts))
	cmd.Flags().StringVar(&flags.format, "format", defaultFormat, "Output format: simple, table, json")
}

func (f listFlags) input(pageSize int) app.ListInput {
	return app.ListInput{
		Status: f.status,
		Search: f.search,
		Sort:   f.sort,
		Format: format.Parse(f.format),
		Limit:  pageSize,
	}
}

func joinSortKeys(sorts []collection.SortKey) string {
	names := make([]string, len(sorts))
	for i, s := range sorts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// parseID parses a positional record ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: expected a positive integer", arg)
	}
	return id, nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(name, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", name, value)
	}
	return &t, nil
}

// optString returns nil for empty flag values so blanks stay NULL.
func optString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
