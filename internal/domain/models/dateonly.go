// internal/domain/models/dateonly.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates in the school API.
const DateLayout = "2006-01-02"

// DateOnly is a calendar date with no time-of-day component. Assignment
// scheduling (assign date, due date) works in whole days, so comparisons
// between two DateOnly values never depend on clock time or zone offset.
//
// The zero value means "not set".
type DateOnly struct {
	time.Time
}

// NewDate builds a DateOnly for the given year/month/day.
func NewDate(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) DateOnly {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar date.
func Today() DateOnly {
	return DateOf(time.Now())
}

// ParseDate parses "YYYY-MM-DD". Upstream sometimes returns full RFC 3339
// timestamps for date fields; those are accepted and truncated to the date,
// matching what the portal screen has always done with such values.
func ParseDate(s string) (DateOnly, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateOnly{}, fmt.Errorf("empty date")
	}
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOnly{t}, nil
}

// String renders the wire format, or "" for the zero value.
func (d DateOnly) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON encodes as "YYYY-MM-DD". The zero value encodes as "".
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD", an RFC 3339 timestamp, "" or null.
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = DateOnly{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
