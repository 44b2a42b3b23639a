package event

import (
	"regexp"
	"strings"
	"time"
)

// DefaultEventHour is the local hour assumed when a source date carries no
// time component.
const DefaultEventHour = 19

// bareDateRE matches a calendar date with no time component, e.g. "2025-10-24".
var bareDateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseWhen resolves a date-like string into a timezone-aware time.
// Returns false if the string is not recognized; callers treat that as
// "no date found" and move on to the next extraction strategy.
//
// Resolution rules:
//   - An explicit UTC marker ("Z") is kept as a resolved UTC instant.
//   - A date-time with a numeric offset is parsed directly.
//   - A naive date-time is stamped with loc, never with UTC.
//   - A bare calendar date resolves to DefaultEventHour in loc.
func ParseWhen(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	// Some sites emit "2025-10-24 19:00:00"; normalize to the T separator.
	s = strings.ReplaceAll(s, " ", "T")

	if strings.HasSuffix(s, "Z") {
		if t, err := time.Parse("2006-01-02T15:04:05Z", s); err == nil {
			return t, true
		}
		if t, err := time.Parse("2006-01-02T15:04Z", s); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	// Explicit numeric offset.
	if t, err := time.Parse("2006-01-02T15:04:05-07:00", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04-07:00", s); err == nil {
		return t, true
	}

	// Naive date-time: assume the site's local zone.
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, loc); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, loc); err == nil {
		return t, true
	}

	// Bare date: assume an evening show.
	if bareDateRE.MatchString(s) {
		if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), DefaultEventHour, 0, 0, 0, loc), true
		}
	}

	return time.Time{}, false
}

// Clock24 converts a 12-hour clock reading to a 24-hour hour value.
// Noon stays 12, midnight becomes 0.
func Clock24(hour int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "pm":
		if hour != 12 {
			return hour + 12
		}
	case "am":
		if hour == 12 {
			return 0
		}
	}
	return hour
}
