// Package table is the configurable data-table contract the admin pages
// drive: column visibility, row coloring by status, info tabs, and filter
// callbacks. Rendering itself lives outside this pipeline.
package table

import (
	"github.com/fstore/backoffice/internal/filter"
)

// RowColorRule maps a status value to the border color of matching rows.
type RowColorRule struct {
	Value  string
	Border string
}

// InfoTab describes one expandable detail tab under a selected row.
type InfoTab[T any] struct {
	Name   string
	Render func(row T) string
}

type Config[T any] struct {
	Titles            map[filter.Key]string
	DefaultVisibility map[filter.Key]bool
	FilterKeys        []filter.Key
	InfoTabs          []InfoTab[T]

	// RowColorKey projects the row value the color rules match against.
	RowColorKey   func(T) string
	RowColorRules []RowColorRule

	// OnFilterChange is invoked after every filter application with the raw
	// input and the column it was applied to (empty for all-columns mode).
	OnFilterChange func(input string, col filter.Key)
}

// Table consumes filtered data and exposes filter/selection state upward.
type Table[T any, K comparable] struct {
	config   Config[T]
	registry *filter.Registry[T]
	ident    func(T) K

	rows     []T
	filtered []T
	visible  map[filter.Key]bool
	selected map[K]struct{}
}

func New[T any, K comparable](config Config[T], registry *filter.Registry[T], ident func(T) K) *Table[T, K] {
	visible := make(map[filter.Key]bool, len(config.Titles))
	for key := range config.Titles {
		shown, configured := config.DefaultVisibility[key]
		visible[key] = !configured || shown
	}
	return &Table[T, K]{
		config:   config,
		registry: registry,
		ident:    ident,
		visible:  visible,
		selected: make(map[K]struct{}),
	}
}

// SetRows replaces the backing data and resets the filtered view.
func (t *Table[T, K]) SetRows(rows []T) {
	t.rows = rows
	t.filtered = rows
}

// Rows returns the current filtered view.
func (t *Table[T, K]) Rows() []T {
	return t.filtered
}

// ApplyFilter filters the backing rows by one column, or across all
// filterable columns when col is empty.
func (t *Table[T, K]) ApplyFilter(input string, col filter.Key) error {
	if col == "" {
		t.filtered = filter.AcrossAll(t.registry, t.ident, input, t.rows)
	} else {
		filtered, err := filter.ByColumn(t.registry, input, col, t.rows)
		if err != nil {
			return err
		}
		t.filtered = filtered
	}

	if t.config.OnFilterChange != nil {
		t.config.OnFilterChange(input, col)
	}
	return nil
}

func (t *Table[T, K]) SetColumnVisible(col filter.Key, shown bool) {
	if _, known := t.config.Titles[col]; known {
		t.visible[col] = shown
	}
}

func (t *Table[T, K]) ColumnVisible(col filter.Key) bool {
	return t.visible[col]
}

func (t *Table[T, K]) ToggleSelect(row T) {
	id := t.ident(row)
	if _, ok := t.selected[id]; ok {
		delete(t.selected, id)
	} else {
		t.selected[id] = struct{}{}
	}
}

func (t *Table[T, K]) SelectedCount() int {
	return len(t.selected)
}

// RowBorder resolves the border color for a row from the color rules, or ""
// when no rule matches.
func (t *Table[T, K]) RowBorder(row T) string {
	if t.config.RowColorKey == nil {
		return ""
	}
	value := t.config.RowColorKey(row)
	for _, rule := range t.config.RowColorRules {
		if rule.Value == value {
			return rule.Border
		}
	}
	return ""
}
