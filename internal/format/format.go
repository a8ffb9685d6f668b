// Package format holds the display formatting shared by the tables, the
// filters, and the report PDF. The createdAt column filter matches against
// FormatDate output, so filter input must follow display formatting.
package format

import (
	"strconv"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04"
)

func Date(t time.Time) string {
	return t.Format(dateLayout)
}

func DateTime(t time.Time) string {
	return t.Format(datetimeLayout)
}

// Money renders a monetary amount with its currency symbol.
func Money(value float64, symbol string) string {
	return symbol + strconv.FormatFloat(value, 'f', 2, 64)
}
