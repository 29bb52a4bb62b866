// Package importer reads bulk menu imports of the form
//
//	{"<year>": {"<week>": {"<DayName>": "<menu text>"}}}
//
// from a local file, an HTTP URL or an S3 object.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	domainerrors "skolmaten/internal/errors"
	"skolmaten/internal/model"
)

type document map[string]map[string]map[string]string

// Parse decodes an import document. Days are matched on the first three
// letters of their name, case-insensitively; keys that are not Monday to
// Friday are skipped. Year and week keys must be integers.
func Parse(r io.Reader) ([]model.MenuEntry, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrMalformedImport, err)
	}

	var entries []model.MenuEntry
	for yearKey, weeks := range doc {
		year, err := strconv.Atoi(strings.TrimSpace(yearKey))
		if err != nil {
			return nil, fmt.Errorf("year %q: %w", yearKey, domainerrors.ErrInvalidYear)
		}
		for weekKey, days := range weeks {
			week, err := strconv.Atoi(strings.TrimSpace(weekKey))
			if err != nil {
				return nil, fmt.Errorf("year %d week %q: %w", year, weekKey, domainerrors.ErrInvalidWeek)
			}
			for dayKey, text := range days {
				weekday, ok := WeekdayFromName(dayKey)
				if !ok {
					continue
				}
				entries = append(entries, model.MenuEntry{
					Year:    year,
					Week:    week,
					Weekday: weekday,
					Text:    text,
				})
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Week != b.Week {
			return a.Week < b.Week
		}
		return a.Weekday < b.Weekday
	})
	return entries, nil
}

// WeekdayFromName maps "Monday", "mon", "FRIDAY" and the like to 1..5 by
// the first three letters of the English name.
func WeekdayFromName(name string) (int, bool) {
	short := strings.ToLower(strings.TrimSpace(name))
	if len(short) < 3 {
		return 0, false
	}
	short = short[:3]
	for i, column := range model.WeekdayColumns {
		if short == column {
			return i + 1, true
		}
	}
	return 0, false
}
