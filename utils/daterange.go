package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is a resolved inclusive [Start, End] day window. Bounded is
// false for the "all" sentinel, in which case Start/End are zero.
type DateRange struct {
	Start   time.Time
	End     time.Time
	Bounded bool
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
}

// ParseDateTime accepts 'YYYY-MM-DDTHH:MM' or 'YYYY-MM-DD HH:MM'.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "T") {
		return time.ParseInLocation("2006-01-02T15:04", s, time.Local)
	}
	return time.ParseInLocation("2006-01-02 15:04", s, time.Local)
}

// ResolveRange maps a named range key to a concrete day window relative
// to now. "week" is an ISO week (Monday through Sunday), "month" the
// calendar month containing now. "custom" requires both start and end
// as YYYY-MM-DD. Anything else, including "all", is unbounded.
func ResolveRange(key, startStr, endStr string, now time.Time) (DateRange, error) {
	switch key {
	case "today":
		d := DayStart(now)
		return DateRange{Start: d, End: d, Bounded: true}, nil
	case "week":
		start := StartOfWeek(now)
		return DateRange{Start: start, End: start.AddDate(0, 0, 6), Bounded: true}, nil
	case "month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		// first of next month minus one day
		last := first.AddDate(0, 1, -1)
		return DateRange{Start: first, End: last, Bounded: true}, nil
	case "custom":
		start, err := ParseDate(startStr)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid start date %q: %w", startStr, err)
		}
		end, err := ParseDate(endStr)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid end date %q: %w", endStr, err)
		}
		return DateRange{Start: start, End: end, Bounded: true}, nil
	}
	return DateRange{}, nil
}

func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns the Monday of t's ISO week at midnight.
func StartOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	tt := DayStart(t)
	return tt.AddDate(0, 0, -(wd - 1))
}
