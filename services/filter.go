package services

import (
	"strings"
	"unicode"

	"bikeshare-explorer/config"
	"bikeshare-explorer/models"
)

// Apply returns the trips of t that match the month and day in f, in their
// original order. Both filters apply when both are set; "all" disables one.
// Applying the same filter twice gives the same table.
func Apply(t *models.TripTable, f models.Filter, catalog config.Catalog) *models.TripTable {
	month := 0
	if f.Month != config.AllValue {
		month, _ = catalog.MonthNumber(f.Month)
	}
	day := ""
	if f.Day != config.AllValue {
		day = titleCase(f.Day)
	}

	out := &models.TripTable{Schema: t.Schema, Trips: make([]*models.Trip, 0, len(t.Trips))}
	for _, trip := range t.Trips {
		if month != 0 && trip.Month != month {
			continue
		}
		if day != "" && trip.Weekday != day {
			continue
		}
		out.Trips = append(out.Trips, trip)
	}
	return out
}

// normaliseAnswer strips leading/trailing whitespace, collapses internal
// whitespace and lower-cases the result.
func normaliseAnswer(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.ToLower(strings.Join(fields, " "))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
