package models

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// DateOnlyLayout is the layout produced by HTML date inputs.
const DateOnlyLayout = "2006-01-02"

// ParseDate parses a client supplied date. It accepts RFC 3339 timestamps,
// zone-less timestamps (read as UTC) and plain calendar dates. dateOnly is
// true when the input carried no time of day. The result is always UTC.
func ParseDate(s string) (t time.Time, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateOnlyLayout, s); err == nil {
		return d.UTC(), true, nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.UTC(), false, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("invalid date %q", s)
}

// EndOfDay returns the last representable instant of t's UTC calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
}
