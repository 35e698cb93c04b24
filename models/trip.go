package models

import "time"

// Column names the loader understands. Any other column is carried through
// untouched for the raw data pager.
const (
	ColStartTime    = "Start Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColTripDuration = "Trip Duration"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// RequiredColumns must be present in every city file.
var RequiredColumns = []string{
	ColStartTime, ColStartStation, ColEndStation, ColTripDuration, ColUserType,
}

// Filter is a validated city/month/day selection. Month and Day are either
// "all" or a lower-case name from the catalog.
type Filter struct {
	City  string
	Month string
	Day   string
}

// Schema describes the original columns of a loaded file. It is resolved
// once at load time; the row identifier column is not part of Columns.
type Schema struct {
	Columns      []string
	index        map[string]int
	HasGender    bool
	HasBirthYear bool
}

// NewSchema builds a Schema from the header columns that follow the row
// identifier.
func NewSchema(columns []string) *Schema {
	s := &Schema{
		Columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, dup := s.index[c]; !dup {
			s.index[c] = i
		}
	}
	_, s.HasGender = s.index[ColGender]
	_, s.HasBirthYear = s.index[ColBirthYear]
	return s
}

// Index returns the position of column in Columns.
func (s *Schema) Index(column string) (int, bool) {
	i, ok := s.index[column]
	return i, ok
}

// Trip is one row of a city file plus the fields derived from it at load time.
type Trip struct {
	ID     string
	Values []string

	StartTime    time.Time
	StartStation string
	EndStation   string
	Duration     float64
	UserType     string
	Gender       string
	BirthYear    float64
	HasBirthYear bool

	// Derived
	Month     int
	Weekday   string
	StartHour int
	Route     string
}

// TripTable is the in-memory working set for one session.
type TripTable struct {
	Schema *Schema
	Trips  []*Trip
}

// Len returns the number of trips in the table.
func (t *TripTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Trips)
}
