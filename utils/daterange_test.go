package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestResolveRangeToday(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, time.March, 14, 16, 45, 0, 0, time.Local)
	r, err := ResolveRange("today", "", "", now)
	if err != nil {
		t.Fatalf("resolve today: %v", err)
	}
	if !r.Bounded {
		t.Fatalf("today must be bounded")
	}
	want := date(2025, time.March, 14)
	if !r.Start.Equal(want) || !r.End.Equal(want) {
		t.Fatalf("today resolved to [%v, %v], want %v", r.Start, r.End, want)
	}
}

func TestResolveRangeWeekStartsMondaySpansSeven(t *testing.T) {
	t.Parallel()
	// one date per weekday, plus a year boundary
	dates := []time.Time{
		date(2025, time.August, 25), // Monday
		date(2025, time.August, 26),
		date(2025, time.August, 27),
		date(2025, time.August, 28),
		date(2025, time.August, 29),
		date(2025, time.August, 30),
		date(2025, time.August, 31), // Sunday
		date(2025, time.January, 1),
		date(2024, time.December, 31),
	}
	for _, now := range dates {
		r, err := ResolveRange("week", "", "", now)
		if err != nil {
			t.Fatalf("resolve week for %v: %v", now, err)
		}
		if r.Start.Weekday() != time.Monday {
			t.Fatalf("week for %v starts on %v, want Monday", now, r.Start.Weekday())
		}
		if !r.End.Equal(r.Start.AddDate(0, 0, 6)) {
			t.Fatalf("week for %v spans [%v, %v], want end 6 days after start", now, r.Start, r.End)
		}
		if now.Before(r.Start) || now.After(r.End.AddDate(0, 0, 1)) {
			t.Fatalf("week [%v, %v] does not contain %v", r.Start, r.End, now)
		}
	}
}

func TestResolveRangeMonthCoversCalendarMonth(t *testing.T) {
	t.Parallel()
	cases := []struct {
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{date(2025, time.February, 14), date(2025, time.February, 1), date(2025, time.February, 28)},
		{date(2024, time.February, 14), date(2024, time.February, 1), date(2024, time.February, 29)},
		{date(2025, time.December, 31), date(2025, time.December, 1), date(2025, time.December, 31)},
		{date(2025, time.April, 1), date(2025, time.April, 1), date(2025, time.April, 30)},
	}
	for _, tc := range cases {
		r, err := ResolveRange("month", "", "", tc.now)
		if err != nil {
			t.Fatalf("resolve month for %v: %v", tc.now, err)
		}
		if !r.Start.Equal(tc.wantStart) || !r.End.Equal(tc.wantEnd) {
			t.Fatalf("month for %v resolved to [%v, %v], want [%v, %v]",
				tc.now, r.Start, r.End, tc.wantStart, tc.wantEnd)
		}
	}
}

func TestResolveRangeCustom(t *testing.T) {
	t.Parallel()
	now := date(2025, time.June, 1)

	r, err := ResolveRange("custom", "2025-01-10", "2025-02-20", now)
	if err != nil {
		t.Fatalf("resolve custom: %v", err)
	}
	if !r.Bounded || !r.Start.Equal(date(2025, time.January, 10)) || !r.End.Equal(date(2025, time.February, 20)) {
		t.Fatalf("custom resolved to %+v", r)
	}

	if _, err := ResolveRange("custom", "not-a-date", "2025-02-20", now); err == nil {
		t.Fatalf("expected parse error for bad start")
	}
	if _, err := ResolveRange("custom", "2025-01-10", "2025-13-40", now); err == nil {
		t.Fatalf("expected parse error for bad end")
	}
	if _, err := ResolveRange("custom", "", "2025-02-20", now); err == nil {
		t.Fatalf("expected parse error for missing start")
	}
}

func TestResolveRangeAllUnbounded(t *testing.T) {
	t.Parallel()
	for _, key := range []string{"all", "", "bogus"} {
		r, err := ResolveRange(key, "", "", time.Now())
		if err != nil {
			t.Fatalf("resolve %q: %v", key, err)
		}
		if r.Bounded {
			t.Fatalf("%q must resolve unbounded", key)
		}
	}
}

func TestParseDateTimeFormats(t *testing.T) {
	t.Parallel()
	want := time.Date(2025, time.May, 3, 22, 30, 0, 0, time.Local)
	for _, s := range []string{"2025-05-03T22:30", "2025-05-03 22:30"} {
		got, err := ParseDateTime(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if !got.Equal(want) {
			t.Fatalf("parse %q = %v, want %v", s, got, want)
		}
	}
	if _, err := ParseDateTime("2025-05-03"); err == nil {
		t.Fatalf("expected error for date without time")
	}
}

func TestStartOfWeekIdempotent(t *testing.T) {
	t.Parallel()
	monday := date(2025, time.August, 25)
	if got := StartOfWeek(monday); !got.Equal(monday) {
		t.Fatalf("StartOfWeek(monday) = %v, want %v", got, monday)
	}
}
