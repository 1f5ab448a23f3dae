package blockbooking

import (
	"errors"
	"time"
)

var ErrInvalidRule = errors.New("invalid block booking rule")

// ParseClock parses an HH:MM time of day.
func ParseClock(v string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, 0, ErrInvalidRule
	}
	return t.Hour(), t.Minute(), nil
}

// Occurrences lists the session starts of a rule in loc: the first matching
// weekday on or after StartsOn, then every seven days for Weeks sessions.
func Occurrences(r Rule, loc *time.Location) ([]time.Time, error) {
	if r.Weekday < 0 || r.Weekday > 6 || r.Weeks <= 0 {
		return nil, ErrInvalidRule
	}
	hour, minute, err := ParseClock(r.StartTime)
	if err != nil {
		return nil, err
	}

	y, m, d := r.StartsOn.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, loc)
	offset := (r.Weekday - int(first.Weekday()) + 7) % 7
	first = first.AddDate(0, 0, offset)

	out := make([]time.Time, 0, r.Weeks)
	for i := 0; i < r.Weeks; i++ {
		day := first.AddDate(0, 0, 7*i)
		out = append(out, time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc))
	}
	return out, nil
}
