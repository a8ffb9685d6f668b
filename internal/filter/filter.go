// Package filter implements the column filter engine behind the data tables:
// per-column substring filters, an all-columns union mode, and the date-range
// resolver feeding the report fetches.
package filter

import (
	"fmt"
	"strings"
)

// Key identifies one table column.
type Key string

// Accessor projects a row onto the string the filter matches against.
type Accessor[T any] func(T) string

// Registry is an ordered, enum-keyed table of column accessors. It replaces
// lookup of arbitrary field names with an explicit, exhaustive mapping.
type Registry[T any] struct {
	keys      []Key
	accessors map[Key]Accessor[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{accessors: make(map[Key]Accessor[T])}
}

// Register adds a filterable column. Registration order is the iteration
// order of AcrossAll.
func (r *Registry[T]) Register(key Key, accessor Accessor[T]) *Registry[T] {
	if _, exists := r.accessors[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.accessors[key] = accessor
	return r
}

// Keys returns the filterable column keys in registration order.
func (r *Registry[T]) Keys() []Key {
	out := make([]Key, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r *Registry[T]) Accessor(key Key) (Accessor[T], bool) {
	a, ok := r.accessors[key]
	return a, ok
}

// ByColumn returns the stable-order subsequence of rows whose projection of
// col contains input as a case-preserving substring. An empty input matches
// every row; that is the "no filter" resting state, not an error.
func ByColumn[T any](reg *Registry[T], input string, col Key, rows []T) ([]T, error) {
	accessor, ok := reg.Accessor(col)
	if !ok {
		return nil, fmt.Errorf("filter: unknown column %q", col)
	}

	matched := make([]T, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(accessor(row), input) {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// AcrossAll runs the per-column filter for every registered column and unions
// the results by row identity: a row matches if any column's projection
// contains the input. The result keeps first-seen order across columns — it
// is deliberately not re-sorted to the original row order.
func AcrossAll[T any, K comparable](reg *Registry[T], ident func(T) K, input string, rows []T) []T {
	seen := make(map[K]struct{})
	matched := make([]T, 0, len(rows))

	for _, key := range reg.keys {
		columnMatches, err := ByColumn(reg, input, key, rows)
		if err != nil {
			continue
		}
		for _, row := range columnMatches {
			id := ident(row)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			matched = append(matched, row)
		}
	}
	return matched
}
