// Package calendar converts between the compact YYYYMMDD / YYYYMM strings used
// at the ledger's boundaries and civil dates.
package calendar

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

const (
	dayLayout   = "20060102"
	monthLayout = "200601"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseDay parses an 8-digit YYYYMMDD string that names a real calendar day.
func ParseDay(s string) (civil.Date, error) {
	if len(s) != len(dayLayout) || !allDigits(s) {
		return civil.Date{}, fmt.Errorf("%q is not in YYYYMMDD format", s)
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%q is not a calendar day: %w", s, err)
	}
	return civil.DateOf(t), nil
}

// FormatDay renders d as YYYYMMDD.
func FormatDay(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// ParseMonth parses a 6-digit YYYYMM string.
func ParseMonth(s string) (Month, error) {
	if len(s) != len(monthLayout) || !allDigits(s) {
		return Month{}, fmt.Errorf("%q is not in YYYYMM format", s)
	}
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%q is not a calendar month: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// String renders m as YYYYMM.
func (m Month) String() string {
	return fmt.Sprintf("%04d%02d", m.Year, int(m.Month))
}

// Contains reports whether d falls in m.
func (m Month) Contains(d civil.Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// DaysBetween returns the whole calendar days from a to b (negative if b is before a).
func DaysBetween(a, b civil.Date) int {
	return b.DaysSince(a)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
