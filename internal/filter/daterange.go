package filter

import (
	"fmt"
	"time"
)

// TimeMode selects between an explicit start/end pair and a named bucket.
// The two modes are mutually exclusive.
type TimeMode int

const (
	// StaticRange uses the user-supplied start/end pair unchanged.
	StaticRange TimeMode = iota
	// SingleTime resolves a named bucket against the current moment.
	SingleTime
)

// Bucket is a relative time window resolved at evaluation time.
type Bucket string

const (
	Today     Bucket = "Today"
	Yesterday Bucket = "Yesterday"
	ThisWeek  Bucket = "This Week"
	LastWeek  Bucket = "Last Week"
	ThisMonth Bucket = "This Month"
	LastMonth Bucket = "Last Month"
	ThisYear  Bucket = "This Year"
	LastYear  Bucket = "Last Year"
	AllTime   Bucket = "All Time"
)

type DateRange struct {
	Start time.Time
	End   time.Time
}

// Clock supplies the anchor instant for relative buckets. A nil Clock means
// wall-clock time; tests inject a fixed instant.
type Clock func() time.Time

// ResolveDateRange turns the active time filter into a concrete start/end
// pair in loc. In StaticRange mode the static pair is returned unchanged.
// Buckets span whole calendar days; weeks start on Monday.
func ResolveDateRange(mode TimeMode, single Bucket, static DateRange, now Clock, loc *time.Location) (DateRange, error) {
	if mode == StaticRange {
		return static, nil
	}

	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	anchor := now().In(loc)
	today := startOfDay(anchor)

	switch single {
	case Today:
		return dayRange(today, today), nil
	case Yesterday:
		day := today.AddDate(0, 0, -1)
		return dayRange(day, day), nil
	case ThisWeek:
		start := startOfWeek(today)
		return dayRange(start, start.AddDate(0, 0, 6)), nil
	case LastWeek:
		start := startOfWeek(today).AddDate(0, 0, -7)
		return dayRange(start, start.AddDate(0, 0, 6)), nil
	case ThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
		return dayRange(start, start.AddDate(0, 1, -1)), nil
	case LastMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -1, 0)
		return dayRange(start, start.AddDate(0, 1, -1)), nil
	case ThisYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return dayRange(start, start.AddDate(1, 0, -1)), nil
	case LastYear:
		start := time.Date(today.Year()-1, time.January, 1, 0, 0, 0, 0, loc)
		return dayRange(start, start.AddDate(1, 0, -1)), nil
	case AllTime:
		return DateRange{End: endOfDay(today)}, nil
	default:
		return DateRange{}, fmt.Errorf("filter: unknown time bucket %q", single)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}

func dayRange(first, last time.Time) DateRange {
	return DateRange{Start: startOfDay(first), End: endOfDay(last)}
}
