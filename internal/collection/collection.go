// Package collection provides a generic in-memory view engine for record
// collections. Given a snapshot of records and a declarative query it
// produces a filtered, stably sorted view plus per-status aggregate counts.
// Every list surface in fieldops (requests, bookings, clients, properties,
// projects, tasks, invoices, notices) evaluates through this one engine
// instead of re-implementing its own filter/sort/count pipeline.
package collection

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StatusAll disables status filtering in a Query.
const StatusAll = "all"

// SortKey identifies a domain-specific sort order (e.g. "newest", "name_az").
type SortKey string

// String returns the string representation of the sort key.
func (k SortKey) String() string {
	return string(k)
}

// Direction specifies which way a sort rule orders present values.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Query describes one evaluation of a collection view.
// It is a plain value object; the zero value selects everything in
// input order.
type Query struct {
	// Status is StatusAll (or empty) for no status filtering, or one
	// concrete status value. Values matching no record yield an empty view
	// rather than an error.
	Status string

	// Search is a case-insensitive substring matched against the record's
	// searchable fields. Blank or whitespace-only means no text filtering.
	Search string

	// Sort selects the sort rule. Keys without a registered rule preserve
	// input order.
	Sort SortKey
}

type sortKind int

const (
	kindNone sortKind = iota
	kindTime
	kindString
	kindNumber
)

// SortValue is one record's value under a sort key. Records without a
// value for the active key (NoValue) order after all records that have
// one, regardless of direction.
type SortValue struct {
	kind sortKind
	nano int64
	str  string
	num  float64
}

// TimeValue wraps a timestamp for comparison.
func TimeValue(t time.Time) SortValue {
	return SortValue{kind: kindTime, nano: t.UnixNano()}
}

// StringValue wraps a string for collation-aware comparison.
func StringValue(s string) SortValue {
	return SortValue{kind: kindString, str: s}
}

// NumberValue wraps a numeric weight for comparison.
func NumberValue(n float64) SortValue {
	return SortValue{kind: kindNumber, num: n}
}

// NoValue marks the sort field as absent for this record.
func NoValue() SortValue {
	return SortValue{kind: kindNone}
}

// IsMissing reports whether the value marks an absent sort field.
func (v SortValue) IsMissing() bool {
	return v.kind == kindNone
}

// SortRule binds a sort key to a value extractor and a direction.
type SortRule[T any] struct {
	Direction Direction
	Value     func(T) SortValue
}

// Accessors supplies field access for a record type. All three accessors
// are expected to be total functions over well-formed records; nullable
// fields surface as empty search entries or NoValue sort values, never
// as panics.
type Accessors[T any] struct {
	// Status extracts the record's status value.
	Status func(T) string

	// SearchText returns the record's searchable fields. Empty entries are
	// treated as absent and never match.
	SearchText func(T) []string

	// Sorts maps each supported sort key to its rule.
	Sorts map[SortKey]SortRule[T]
}

// View is the derived, read-only result of evaluating a Query.
type View[T any] struct {
	// Items is the filtered, sorted subset of the input collection.
	Items []T

	// Counts maps each status present in the unfiltered input to its
	// record count. Counts ignore the query's filters so stat badges stay
	// stable while the visible list narrows.
	Counts map[string]int
}

// Evaluate derives a View from a snapshot collection and a query.
// It is pure and synchronous: no shared state, no mutation of the input,
// identical inputs always produce identical output. Unknown sort keys and
// unmatched status filters degrade gracefully instead of failing.
func Evaluate[T any](records []T, q Query, acc Accessors[T]) View[T] {
	counts := make(map[string]int)
	for _, r := range records {
		counts[acc.Status(r)]++
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	filterStatus := q.Status != "" && q.Status != StatusAll

	items := make([]T, 0, len(records))
	for _, r := range records {
		if filterStatus && acc.Status(r) != q.Status {
			continue
		}
		if search != "" && !matchesSearch(acc.SearchText(r), search) {
			continue
		}
		items = append(items, r)
	}

	if rule, ok := acc.Sorts[q.Sort]; ok {
		sortItems(items, rule)
	}

	return View[T]{Items: items, Counts: counts}
}

// matchesSearch reports whether any non-empty field contains the
// lower-cased query as a substring.
func matchesSearch(fields []string, query string) bool {
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

type keyedRecord[T any] struct {
	record T
	value  SortValue
}

// sortItems stably sorts items in place according to the rule. The sort
// value is extracted once per record so accessors run in O(n).
func sortItems[T any](items []T, rule SortRule[T]) {
	if len(items) < 2 || rule.Value == nil {
		return
	}

	keyed := make([]keyedRecord[T], len(items))
	needsCollator := false
	for i, it := range items {
		v := rule.Value(it)
		keyed[i] = keyedRecord[T]{record: it, value: v}
		if v.kind == kindString {
			needsCollator = true
		}
	}

	var coll *collate.Collator
	if needsCollator {
		coll = collate.New(language.Und, collate.Loose)
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return lessValue(keyed[i].value, keyed[j].value, rule.Direction, coll)
	})

	for i := range keyed {
		items[i] = keyed[i].record
	}
}

// lessValue compares two sort values under the given direction. Missing
// values sort last in both directions; equal values report false so the
// stable sort preserves input order.
func lessValue(a, b SortValue, dir Direction, coll *collate.Collator) bool {
	if a.kind == kindNone || b.kind == kindNone {
		return a.kind != kindNone && b.kind == kindNone
	}

	var cmp int
	switch a.kind {
	case kindTime:
		switch {
		case a.nano < b.nano:
			cmp = -1
		case a.nano > b.nano:
			cmp = 1
		}
	case kindString:
		cmp = coll.CompareString(a.str, b.str)
	case kindNumber:
		switch {
		case a.num < b.num:
			cmp = -1
		case a.num > b.num:
			cmp = 1
		}
	}

	if dir == Descending {
		return cmp > 0
	}
	return cmp < 0
}
