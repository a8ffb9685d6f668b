// Package convert holds shared pieces of the wire-to-domain converters:
// the conversion failure type and timestamp parsing.
package convert

import (
	"fmt"
	"time"
)

// Error reports a malformed or incomplete server payload, such as a required
// nested entity that is missing. Converters fail with it synchronously and
// never return partial results.
type Error struct {
	Entity string
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot convert %s: field %q: %s", e.Entity, e.Field, e.Reason)
}

func NewError(entity, field, reason string) *Error {
	return &Error{Entity: entity, Field: field, Reason: reason}
}

// timeLayouts lists the timestamp shapes the storefront API is known to emit.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime parses an API timestamp, trying each known layout in order.
func ParseTime(entity, field, value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewError(entity, field, fmt.Sprintf("unparseable timestamp %q", value))
}
