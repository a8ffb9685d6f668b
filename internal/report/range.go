package report

import "math"

// Range is an inclusive numeric bound pair. NaN in either field is the
// sentinel for "no constraint entered yet" and must be special-cased: a NaN
// comparison would otherwise silently fail closed.
type Range struct {
	Start float64
	End   float64
}

// Unbounded is the resting state of a range filter.
func Unbounded() Range {
	return Range{Start: math.NaN(), End: math.NaN()}
}

// Contains reports whether v satisfies the range. An unset bound never
// excludes anything.
func (r Range) Contains(v float64) bool {
	if !math.IsNaN(r.Start) && v < r.Start {
		return false
	}
	if !math.IsNaN(r.End) && v > r.End {
		return false
	}
	return true
}

// ApplyRanges keeps the rows that satisfy every configured metric range
// simultaneously. Conditions on metrics unknown to the accessor table are
// ignored. Row order is preserved.
func ApplyRanges(conds map[Metric]Range, rows []CustomerRow) []CustomerRow {
	out := make([]CustomerRow, 0, len(rows))
	for _, row := range rows {
		if rowPasses(conds, row) {
			out = append(out, row)
		}
	}
	return out
}

func rowPasses(conds map[Metric]Range, row CustomerRow) bool {
	for metric, rng := range conds {
		accessor, ok := metricAccessors[metric]
		if !ok {
			continue
		}
		if !rng.Contains(accessor(row)) {
			return false
		}
	}
	return true
}
