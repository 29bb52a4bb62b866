// Package isoweek implements the ISO-8601 week arithmetic the menu is keyed on.
package isoweek

import "time"

const (
	MinYear = 1
	MaxYear = 9999
)

// WeeksInYear returns 52 or 53: the ISO week number of December 28.
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// Monday returns the Monday (UTC midnight) that starts the given ISO week.
func Monday(year, week int) time.Time {
	// January 4th always falls in week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := int(jan4.Weekday())
	if offset == 0 {
		offset = 7
	}
	return jan4.AddDate(0, 0, 1-offset+(week-1)*7)
}

// Date returns the date of weekday (1 = Monday) in the given ISO week.
func Date(year, week, weekday int) time.Time {
	return Monday(year, week).AddDate(0, 0, weekday-1)
}

// ValidYear reports whether year is within the supported range.
func ValidYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// ValidWeek reports whether week exists in year.
func ValidWeek(year, week int) bool {
	return week >= 1 && week <= WeeksInYear(year)
}

// Normalize maps out-of-range weeks onto the neighbouring year: anything past
// the last week becomes week 1 of the next year, anything below 1 becomes the
// last week of the previous year.
func Normalize(year, week int) (int, int) {
	switch {
	case week > WeeksInYear(year):
		return year + 1, 1
	case week <= 0:
		return year - 1, WeeksInYear(year - 1)
	default:
		return year, week
	}
}

// Current returns the ISO week whose menu is relevant at now. From Friday noon
// through Sunday that is already the following week.
func Current(now time.Time) (year, week int) {
	wd := int(now.Weekday())
	if wd == 0 {
		wd = 7
	}
	if wd >= 6 || (wd == 5 && now.Hour() >= 12) {
		now = now.AddDate(0, 0, 8-wd)
	}
	return now.ISOWeek()
}
