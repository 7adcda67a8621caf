package models

import (
	"fmt"
	"time"
)

// TimestampLayout is the layout used when writing new log rows
const TimestampLayout = time.RFC3339Nano

// timestampLayouts are tried in order when reading a log row. Layouts without a
// zone are read in the local zone, matching how naive rows were written.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseTimestamp parses a log timestamp, with or without a zone offset
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// FormatTimestamp formats a time for the log and for API responses
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// StartOfDay returns midnight of t's date in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the most recent Monday (t's own date if t is a Monday)
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -GetWeekdayNumber(t))
}

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// GetWeekdayNumber returns the weekday as a number (0=Monday, 6=Sunday)
func GetWeekdayNumber(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		return 6
	}
	return weekday - 1
}
