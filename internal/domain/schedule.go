package domain

import (
	"strings"
	"time"
)

// Opening days are stored as lowercase English weekday names.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

var weekdayNames = map[string]struct{}{
	Monday:    {},
	Tuesday:   {},
	Wednesday: {},
	Thursday:  {},
	Friday:    {},
	Saturday:  {},
	Sunday:    {},
}

// NormalizeDay lowercases and validates a weekday name.
func NormalizeDay(day string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(day))
	_, ok := weekdayNames[key]
	return key, ok
}

// NormalizeDays canonicalizes a list of weekday names, rejecting unknown
// entries. Duplicates are collapsed, input order is preserved.
func NormalizeDays(days []string) ([]string, bool) {
	seen := make(map[string]struct{}, len(days))
	out := make([]string, 0, len(days))
	for _, d := range days {
		key, ok := NormalizeDay(d)
		if !ok {
			return nil, false
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out, len(out) > 0
}

func weekdayName(w time.Weekday) string {
	switch w {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// IsOpenOnDay reports whether the restaurant opens on the named weekday.
// Matching is case-insensitive.
func (r *Restaurant) IsOpenOnDay(day string) bool {
	key, ok := NormalizeDay(day)
	if !ok {
		return false
	}
	for _, d := range r.OpeningDays {
		if strings.ToLower(d) == key {
			return true
		}
	}
	return false
}

// IsOpenOn reports whether the restaurant opens on the weekday of t.
func (r *Restaurant) IsOpenOn(t time.Time) bool {
	return r.IsOpenOnDay(weekdayName(t.Weekday()))
}

// WithinOperatingHours reports whether the time of day of t falls inside
// the restaurant's operating window. Both ends are inclusive: a booking
// exactly at closing time is accepted. Times are compared as minutes
// since midnight on the restaurant's local wall clock; there is no
// timezone or DST handling.
func (r *Restaurant) WithinOperatingHours(t time.Time) bool {
	open, ok := parseClock(r.OpeningTime)
	if !ok {
		return false
	}
	close, ok := parseClock(r.ClosingTime)
	if !ok {
		return false
	}
	m := t.Hour()*60 + t.Minute()
	return m >= open && m <= close
}

// ValidOperatingWindow reports whether the stored opening/closing pair is
// well formed: both parse and opening strictly precedes closing (no
// overnight wraparound).
func (r *Restaurant) ValidOperatingWindow() bool {
	open, ok := parseClock(r.OpeningTime)
	if !ok {
		return false
	}
	close, ok := parseClock(r.ClosingTime)
	if !ok {
		return false
	}
	return open < close
}

func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
