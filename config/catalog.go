package config

import "strings"

// AllValue disables the month or day filter.
const AllValue = "all"

// City maps a selectable city name to its data file.
type City struct {
	Name string
	File string
}

// Catalog is the read-only set of values a user may pick from.
type Catalog struct {
	Cities []City
	Months []string
	Days   []string
}

// DefaultCatalog returns the three cities and the month/day names the
// datasets cover. The data only spans January to June.
func DefaultCatalog() Catalog {
	return Catalog{
		Cities: []City{
			{Name: "chicago", File: "chicago.csv"},
			{Name: "new york city", File: "new_york_city.csv"},
			{Name: "washington", File: "washington.csv"},
		},
		Months: []string{"january", "february", "march", "april", "may", "june"},
		Days:   []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
	}
}

// File returns the data file name for city.
func (c Catalog) File(city string) (string, bool) {
	for _, ct := range c.Cities {
		if ct.Name == city {
			return ct.File, true
		}
	}
	return "", false
}

// CityNames lists the selectable cities in catalog order.
func (c Catalog) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for _, ct := range c.Cities {
		names = append(names, ct.Name)
	}
	return names
}

// MonthNumber returns the 1-based position of month in the month list.
func (c Catalog) MonthNumber(month string) (int, bool) {
	for i, m := range c.Months {
		if m == month {
			return i + 1, true
		}
	}
	return 0, false
}

// ValidMonth reports whether month is "all" or a listed month.
func (c Catalog) ValidMonth(month string) bool {
	if month == AllValue {
		return true
	}
	_, ok := c.MonthNumber(month)
	return ok
}

// ValidDay reports whether day is "all" or a listed weekday.
func (c Catalog) ValidDay(day string) bool {
	if day == AllValue {
		return true
	}
	for _, d := range c.Days {
		if d == day {
			return true
		}
	}
	return false
}

// DescribeCities renders the city list the way the prompt shows it:
// "chicago, new york city or washington".
func (c Catalog) DescribeCities() string {
	names := c.CityNames()
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
