package period

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantYear  int
		wantMonth int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"before cutoff", date(2026, time.March, 10), 2026, 3, date(2026, time.February, 26), date(2026, time.March, 25)},
		{"last day of period", date(2026, time.March, 25), 2026, 3, date(2026, time.February, 26), date(2026, time.March, 25)},
		{"cutoff day", date(2026, time.March, 26), 2026, 4, date(2026, time.March, 26), date(2026, time.April, 25)},
		{"december rolls into january", date(2025, time.December, 28), 2026, 1, date(2025, time.December, 26), date(2026, time.January, 25)},
		{"early january", date(2026, time.January, 2), 2026, 1, date(2025, time.December, 26), date(2026, time.January, 25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Resolve(tt.in)
			if p.Year != tt.wantYear || p.Month != tt.wantMonth {
				t.Errorf("expected %d-%02d, got %d-%02d", tt.wantYear, tt.wantMonth, p.Year, p.Month)
			}
			if !p.Start.Equal(tt.wantStart) {
				t.Errorf("expected start %s, got %s", tt.wantStart, p.Start)
			}
			if !p.End.Equal(tt.wantEnd) {
				t.Errorf("expected end %s, got %s", tt.wantEnd, p.End)
			}
			if !p.Contains(tt.in) {
				t.Errorf("period %v should contain %s", p.Key(), tt.in)
			}
		})
	}
}

func TestPeriodContains(t *testing.T) {
	p := ForMonth(2026, 2)
	if !p.Contains(time.Date(2026, time.February, 25, 23, 59, 0, 0, time.UTC)) {
		t.Error("late on the 25th should be inside the period")
	}
	if p.Contains(date(2026, time.February, 26)) {
		t.Error("the 26th should belong to the next period")
	}
	if p.Contains(date(2026, time.January, 25)) {
		t.Error("the 25th of the previous month should be outside")
	}
}

func TestMonthKey(t *testing.T) {
	k := MonthKey{Year: 2025, Month: 11}

	if got := k.Add(3); got != (MonthKey{Year: 2026, Month: 2}) {
		t.Errorf("expected 2026-02, got %s", got)
	}
	if got := k.Add(-11); got != (MonthKey{Year: 2024, Month: 12}) {
		t.Errorf("expected 2024-12, got %s", got)
	}
	if !k.Before(MonthKey{Year: 2026, Month: 1}) {
		t.Error("2025-11 should be before 2026-01")
	}
	if !k.After(MonthKey{Year: 2025, Month: 10}) {
		t.Error("2025-11 should be after 2025-10")
	}
	if k.Compare(MonthKey{Year: 2025, Month: 11}) != 0 {
		t.Error("equal keys should compare as 0")
	}
	if k.Label() != "Nov 2025" {
		t.Errorf("expected label Nov 2025, got %s", k.Label())
	}

	from, to := k.CalendarRange()
	if !from.Equal(date(2025, time.November, 1)) || !to.Equal(date(2025, time.December, 1)) {
		t.Errorf("unexpected calendar range %s - %s", from, to)
	}
}

func TestParseMonthKey(t *testing.T) {
	k, err := ParseMonthKey("2026-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != (MonthKey{Year: 2026, Month: 1}) {
		t.Errorf("expected 2026-01, got %s", k)
	}

	for _, bad := range []string{"", "2026-13", "01-2026", "2026/01"} {
		if _, err := ParseMonthKey(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
