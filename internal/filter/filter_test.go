package filter_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fstore/backoffice/internal/filter"
)

type row struct {
	ID    int
	Name  string
	Email string
	City  string
}

func testRegistry() *filter.Registry[row] {
	reg := filter.NewRegistry[row]()
	reg.Register("id", func(r row) string { return strconv.Itoa(r.ID) })
	reg.Register("name", func(r row) string { return r.Name })
	reg.Register("email", func(r row) string { return r.Email })
	reg.Register("city", func(r row) string { return r.City })
	return reg
}

func testRows() []row {
	return []row{
		{ID: 1, Name: "Alice", Email: "alice@shop.com", City: "Hanoi"},
		{ID: 2, Name: "Bob", Email: "bob@shop.com", City: "Saigon"},
		{ID: 3, Name: "Carol", Email: "carol@mail.com", City: "Hanoi"},
		{ID: 4, Name: "Dan", Email: "dan@mail.com", City: "Hue"},
	}
}

func TestByColumn(t *testing.T) {
	reg := testRegistry()
	rows := testRows()

	tests := []struct {
		name    string
		input   string
		col     filter.Key
		wantIDs []int
		wantErr bool
	}{
		{
			name:    "substring_match_preserves_order",
			input:   "Hanoi",
			col:     "city",
			wantIDs: []int{1, 3},
		},
		{
			name:    "case_preserving_no_normalization",
			input:   "hanoi",
			col:     "city",
			wantIDs: []int{},
		},
		{
			name:    "empty_input_matches_every_row",
			input:   "",
			col:     "email",
			wantIDs: []int{1, 2, 3, 4},
		},
		{
			name:    "no_match",
			input:   "zzz",
			col:     "name",
			wantIDs: []int{},
		},
		{
			name:    "unknown_column",
			input:   "x",
			col:     "images",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filter.ByColumn(reg, tt.input, tt.col, rows)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			gotIDs := make([]int, 0, len(got))
			for _, r := range got {
				gotIDs = append(gotIDs, r.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestByColumn_EmptyInputIdentityForEveryColumn(t *testing.T) {
	reg := testRegistry()
	rows := testRows()

	for _, key := range reg.Keys() {
		got, err := filter.ByColumn(reg, "", key, rows)
		require.NoError(t, err)
		assert.Equal(t, rows, got, "column %s", key)
	}
}

func TestAcrossAll(t *testing.T) {
	reg := testRegistry()
	rows := testRows()
	ident := func(r row) int { return r.ID }

	t.Run("union_without_duplicates", func(t *testing.T) {
		// "o" hits Bob and Carol by name, Saigon and Hanoi by city.
		got := filter.AcrossAll(reg, ident, "o", rows)

		seen := make(map[int]int)
		for _, r := range got {
			seen[r.ID]++
		}
		for id, count := range seen {
			assert.Equal(t, 1, count, "row %d appears more than once", id)
		}
	})

	t.Run("equals_union_of_per_column_matches", func(t *testing.T) {
		input := "a"
		got := filter.AcrossAll(reg, ident, input, rows)

		want := make(map[int]struct{})
		for _, key := range reg.Keys() {
			matches, err := filter.ByColumn(reg, input, key, rows)
			require.NoError(t, err)
			for _, r := range matches {
				want[r.ID] = struct{}{}
			}
		}

		gotSet := make(map[int]struct{})
		for _, r := range got {
			gotSet[r.ID] = struct{}{}
		}
		assert.Equal(t, want, gotSet)
	})

	t.Run("first_seen_order_across_columns", func(t *testing.T) {
		// "n" matches Dan on the name column before it matches anyone on the
		// city column, so Dan surfaces first. The union is deliberately not
		// re-sorted to the original row order.
		got := filter.AcrossAll(reg, ident, "n", rows)

		gotIDs := make([]int, 0, len(got))
		for _, r := range got {
			gotIDs = append(gotIDs, r.ID)
		}
		assert.Equal(t, []int{4, 1, 2, 3}, gotIDs)
	})

	t.Run("empty_input_returns_all_rows_in_original_order", func(t *testing.T) {
		got := filter.AcrossAll(reg, ident, "", rows)
		assert.Equal(t, rows, got)
	})
}
