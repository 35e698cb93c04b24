package services

import (
	"testing"

	"bikeshare-explorer/config"
	"bikeshare-explorer/models"
)

func TestApplyMonthAndDay(t *testing.T) {
	catalog := config.DefaultCatalog()
	table := loadFixture(t, chicagoCSV)

	tests := []struct {
		month, day string
		wantIDs    []string
	}{
		{"all", "all", []string{"1", "2", "3", "4", "5", "6"}},
		{"january", "all", []string{"1", "2", "3", "6"}},
		{"all", "monday", []string{"1", "2", "4", "6"}},
		{"january", "monday", []string{"1", "2", "6"}},
		{"march", "sunday", []string{"5"}},
		{"june", "all", nil},
	}

	for _, tt := range tests {
		got := Apply(table, models.Filter{City: "chicago", Month: tt.month, Day: tt.day}, catalog)
		if got.Len() != len(tt.wantIDs) {
			t.Errorf("Apply(%s, %s): got %d trips, want %d", tt.month, tt.day, got.Len(), len(tt.wantIDs))
			continue
		}
		for i, trip := range got.Trips {
			if trip.ID != tt.wantIDs[i] {
				t.Errorf("Apply(%s, %s)[%d]: got id %s, want %s", tt.month, tt.day, i, trip.ID, tt.wantIDs[i])
			}
		}
	}
}

func TestApplyMatchesRequestedMonthAndDay(t *testing.T) {
	catalog := config.DefaultCatalog()
	table := loadFixture(t, chicagoCSV)

	for mi, month := range catalog.Months {
		for _, day := range catalog.Days {
			got := Apply(table, models.Filter{City: "chicago", Month: month, Day: day}, catalog)
			for _, trip := range got.Trips {
				if trip.Month != mi+1 {
					t.Errorf("%s/%s: trip %s has month %d", month, day, trip.ID, trip.Month)
				}
				if trip.Weekday != titleCase(day) {
					t.Errorf("%s/%s: trip %s has weekday %s", month, day, trip.ID, trip.Weekday)
				}
			}
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	catalog := config.DefaultCatalog()
	table := loadFixture(t, chicagoCSV)
	f := models.Filter{City: "chicago", Month: "january", Day: "monday"}

	once := Apply(table, f, catalog)
	twice := Apply(once, f, catalog)
	if once.Len() != twice.Len() {
		t.Fatalf("second Apply changed length: %d -> %d", once.Len(), twice.Len())
	}
	for i := range once.Trips {
		if once.Trips[i] != twice.Trips[i] {
			t.Errorf("trip %d differs after second Apply", i)
		}
	}
}

func TestNormaliseAnswer(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Chicago", "chicago"},
		{"  New   York\tCity ", "new york city"},
		{"ALL", "all"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normaliseAnswer(tt.raw); got != tt.want {
			t.Errorf("normaliseAnswer(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}
