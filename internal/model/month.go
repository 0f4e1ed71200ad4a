package model

import (
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month. Aggregates are always computed against an
// explicit month interval rather than by matching date-string prefixes.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// CurrentMonth returns the calendar month containing now.
func CurrentMonth() Month {
	return MonthOf(time.Now())
}

// ParseMonth parses the canonical "YYYY-MM" form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// String renders the canonical "YYYY-MM" form used for storage keys and
// the sync payload.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start returns the first instant of the month in UTC.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following month in UTC.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the month window. The
// comparison is done on the civil date so that records keep their
// calendar month regardless of the zone they were recorded in.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Prev returns the preceding calendar month.
func (m Month) Prev() Month {
	return MonthOf(m.Start().AddDate(0, -1, 0))
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	return MonthOf(m.End())
}

// IsZero reports whether m is the zero value.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// MarshalJSON encodes the month in its canonical "YYYY-MM" form.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON decodes the canonical "YYYY-MM" form.
func (m *Month) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
