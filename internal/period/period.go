// Package period implements the household accounting calendar. A period named
// after month M runs from the 26th of month M-1 through the 25th of month M.
package period

import (
	"fmt"
	"time"
)

// CutoffDay is the first day of the month that already belongs to the next period.
const CutoffDay = 26

// Period is an accounting period with inclusive date boundaries (UTC midnight).
type Period struct {
	Year  int
	Month int
	Start time.Time
	End   time.Time
}

// Resolve returns the period a date falls in.
func Resolve(t time.Time) Period {
	year, month := t.Year(), t.Month()
	if t.Day() >= CutoffDay {
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return ForMonth(year, int(month))
}

// ForMonth returns the period named after the given calendar month.
func ForMonth(year, month int) Period {
	// time.Date normalizes month 0 to December of the previous year.
	start := time.Date(year, time.Month(month)-1, CutoffDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), CutoffDay-1, 0, 0, 0, 0, time.UTC)
	return Period{Year: year, Month: month, Start: start, End: end}
}

// Key returns the (year, month) the period is named after.
func (p Period) Key() MonthKey {
	return MonthKey{Year: p.Year, Month: p.Month}
}

// EndExclusive returns the instant right after the last day of the period,
// for half-open range queries.
func (p Period) EndExclusive() time.Time {
	return p.End.AddDate(0, 0, 1)
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.EndExclusive())
}

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int
	Month int
}

// KeyOf returns the calendar month of t.
func KeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: int(t.Month())}
}

// ParseMonthKey parses a "YYYY-MM" string.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return KeyOf(t), nil
}

// Valid reports whether the key names a real calendar month.
func (k MonthKey) Valid() bool {
	return k.Year > 0 && k.Month >= 1 && k.Month <= 12
}

// Add returns the month n months after k (n may be negative).
func (k MonthKey) Add(n int) MonthKey {
	return KeyOf(time.Date(k.Year, time.Month(k.Month)+time.Month(n), 1, 0, 0, 0, 0, time.UTC))
}

// Compare returns -1, 0 or 1 when k is before, equal to or after other.
func (k MonthKey) Compare(other MonthKey) int {
	switch {
	case k.Year < other.Year, k.Year == other.Year && k.Month < other.Month:
		return -1
	case k == other:
		return 0
	default:
		return 1
	}
}

// Before reports whether k is strictly before other.
func (k MonthKey) Before(other MonthKey) bool { return k.Compare(other) < 0 }

// After reports whether k is strictly after other.
func (k MonthKey) After(other MonthKey) bool { return k.Compare(other) > 0 }

// FirstDay returns midnight UTC on the first day of the month.
func (k MonthKey) FirstDay() time.Time {
	return time.Date(k.Year, time.Month(k.Month), 1, 0, 0, 0, 0, time.UTC)
}

// CalendarRange returns the half-open [first day, first day of next month) range.
func (k MonthKey) CalendarRange() (from, to time.Time) {
	from = k.FirstDay()
	return from, from.AddDate(0, 1, 0)
}

// String formats the key as "YYYY-MM".
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
}

var shortMonthNames = [...]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// Label formats the key for display, e.g. "Ene 2026".
func (k MonthKey) Label() string {
	if !k.Valid() {
		return k.String()
	}
	return fmt.Sprintf("%s %d", shortMonthNames[k.Month-1], k.Year)
}
