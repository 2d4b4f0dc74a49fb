// Package app holds one thin use-case per CLI operation. Use-cases
// orchestrate storage, the collection engine, and output rendering;
// they carry no domain rules of their own.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fieldopshq/fieldops/internal/collection"
	"github.com/fieldopshq/fieldops/internal/format"
)

// ListRenderer describes how one record kind is presented.
type ListRenderer[T any] struct {
	// Noun names the collection in messages, e.g. "requests".
	Noun string
	// Statuses lists the entity statuses in display order.
	Statuses []string
	Headers  []string
	Row      func(T) []string
}

// ListInput holds the list flags after parsing.
type ListInput struct {
	Status string
	Search string
	Sort   string
	Format format.Format
	// Limit caps how many rows are printed; 0 means no cap. Counts
	// are unaffected.
	Limit int
}

// ListUseCase fetches one collection, evaluates the query against it,
// and renders the resulting view.
type ListUseCase[T any] struct {
	fetch     func(context.Context) ([]T, error)
	accessors collection.Accessors[T]
	renderer  ListRenderer[T]
}

// NewListUseCase creates a list use-case for one record kind.
func NewListUseCase[T any](fetch func(context.Context) ([]T, error), accessors collection.Accessors[T], renderer ListRenderer[T]) *ListUseCase[T] {
	if fetch == nil {
		panic("NewListUseCase: fetch dependency cannot be nil")
	}
	return &ListUseCase[T]{fetch: fetch, accessors: accessors, renderer: renderer}
}

// Execute runs the query and writes the rendered view.
func (u *ListUseCase[T]) Execute(ctx context.Context, input ListInput, w io.Writer) error {
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = collection.StatusAll
	}
	if status != collection.StatusAll && !containsString(u.renderer.Statuses, status) {
		return fmt.Errorf("list: unknown status %q (valid: %s)", status,
			strings.Join(append([]string{collection.StatusAll}, u.renderer.Statuses...), ", "))
	}

	records, err := u.fetch(ctx)
	if err != nil {
		return fmt.Errorf("list: fetch %s: %w", u.renderer.Noun, err)
	}

	view := collection.Evaluate(records, collection.Query{
		Status: status,
		Search: input.Search,
		Sort:   collection.SortKey(input.Sort),
	}, u.accessors)

	if input.Limit > 0 && len(view.Items) > input.Limit {
		view.Items = view.Items[:input.Limit]
	}

	switch input.Format {
	case format.JSON:
		return u.writeJSON(w, view)
	case format.Table:
		u.writeTable(w, view)
	default:
		u.writeSimple(w, view)
	}
	return nil
}

type listPayload[T any] struct {
	Items  []T            `json:"items"`
	Counts map[string]int `json:"counts"`
}

func (u *ListUseCase[T]) writeJSON(w io.Writer, view collection.View[T]) error {
	items := view.Items
	if items == nil {
		items = []T{}
	}
	return format.WriteJSON(w, listPayload[T]{Items: items, Counts: view.Counts})
}

func (u *ListUseCase[T]) writeTable(w io.Writer, view collection.View[T]) {
	rows := make([][]string, 0, len(view.Items))
	for _, item := range view.Items {
		rows = append(rows, u.renderer.Row(item))
	}
	format.WriteTable(w, u.renderer.Headers, rows)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, format.Summary(view.Counts, u.renderer.Statuses))
}

func (u *ListUseCase[T]) writeSimple(w io.Writer, view collection.View[T]) {
	if len(view.Items) == 0 {
		_, _ = fmt.Fprintf(w, "No %s found\n", u.renderer.Noun)
	}
	for _, item := range view.Items {
		_, _ = fmt.Fprintln(w, strings.Join(u.renderer.Row(item), "  "))
	}
	_, _ = fmt.Fprintln(w, format.Summary(view.Counts, u.renderer.Statuses))
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
