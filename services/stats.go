package services

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/fatih/color"

	"bikeshare-explorer/models"
	"bikeshare-explorer/utils"
)

const noData = "No trip data available for the selected filters."

var headingColor = color.New(color.FgYellow, color.Bold)

// StatsService computes and prints the four statistics blocks. Every
// "most common" value is a mode with ties going to the lowest value.
type StatsService struct {
	logger *utils.Logger
}

func NewStatsService(logger *utils.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// ReportAll prints the time, station, duration and user blocks in order.
func (s *StatsService) ReportAll(w io.Writer, t *models.TripTable) {
	s.section(w, "Calculating The Most Frequent Times of Travel...", func() {
		s.PrintTimeStats(w, s.TimeStats(t))
	})
	s.section(w, "Calculating The Most Popular Stations and Trip...", func() {
		s.PrintStationStats(w, s.StationStats(t))
	})
	s.section(w, "Calculating Trip Duration...", func() {
		s.PrintDurationStats(w, s.DurationStats(t))
	})
	s.section(w, "Calculating User Stats...", func() {
		s.PrintUserStats(w, s.UserStats(t))
	})
}

func (s *StatsService) section(w io.Writer, heading string, body func()) {
	start := time.Now()
	fmt.Fprintln(w)
	headingColor.Fprintln(w, heading)
	fmt.Fprintln(w)

	body()

	elapsed := time.Since(start)
	fmt.Fprintf(w, "\nThis took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	fmt.Fprintln(w, Separator)
	s.logger.Debug("[stats] %s done in %v", heading, elapsed)
}

// TimeStats finds the most common month, weekday and start hour.
func (s *StatsService) TimeStats(t *models.TripTable) models.TimeReport {
	r := models.TimeReport{Trips: t.Len()}
	if r.Trips == 0 {
		return r
	}

	months := utils.NewCounter[int]()
	days := utils.NewCounter[string]()
	hours := utils.NewCounter[int]()
	for _, trip := range t.Trips {
		months.Add(trip.Month)
		days.Add(trip.Weekday)
		hours.Add(trip.StartHour)
	}

	// A filter that pinned the month or day leaves nothing to report.
	if months.Distinct() > 1 {
		r.CommonMonth, _ = months.Mode()
	}
	if days.Distinct() > 1 {
		r.CommonWeekday, _ = days.Mode()
	}
	r.CommonStartHour, _ = hours.Mode()
	return r
}

func (s *StatsService) PrintTimeStats(w io.Writer, r models.TimeReport) {
	if r.Trips == 0 {
		fmt.Fprintln(w, noData)
		return
	}
	if r.CommonMonth != 0 {
		fmt.Fprintf(w, "Most common month: %s\n", time.Month(r.CommonMonth))
	}
	if r.CommonWeekday != "" {
		fmt.Fprintf(w, "Most common day of week: %s\n", r.CommonWeekday)
	}
	fmt.Fprintf(w, "Most common start hour: %d\n", r.CommonStartHour)
}

// StationStats finds the most used start station, end station and route.
func (s *StatsService) StationStats(t *models.TripTable) models.StationReport {
	r := models.StationReport{Trips: t.Len()}
	if r.Trips == 0 {
		return r
	}

	starts := utils.NewCounter[string]()
	ends := utils.NewCounter[string]()
	routes := utils.NewCounter[string]()
	for _, trip := range t.Trips {
		starts.Add(trip.StartStation)
		ends.Add(trip.EndStation)
		routes.Add(trip.Route)
	}

	r.CommonStartStation, _ = starts.Mode()
	r.CommonEndStation, _ = ends.Mode()
	r.CommonRoute, _ = routes.Mode()
	return r
}

func (s *StatsService) PrintStationStats(w io.Writer, r models.StationReport) {
	if r.Trips == 0 {
		fmt.Fprintln(w, noData)
		return
	}
	fmt.Fprintf(w, "Most commonly used start station: %s\n", r.CommonStartStation)
	fmt.Fprintf(w, "Most commonly used end station: %s\n", r.CommonEndStation)
	fmt.Fprintf(w, "Most frequent combination of start and end station trip: %s\n", r.CommonRoute)
}

// DurationStats sums trip durations and truncates the mean toward zero.
func (s *StatsService) DurationStats(t *models.TripTable) models.DurationReport {
	r := models.DurationReport{Trips: t.Len()}
	if r.Trips == 0 {
		return r
	}

	for _, trip := range t.Trips {
		r.TotalDuration += trip.Duration
	}
	r.MeanDuration = int64(math.Trunc(r.TotalDuration / float64(r.Trips)))
	return r
}

func (s *StatsService) PrintDurationStats(w io.Writer, r models.DurationReport) {
	if r.Trips == 0 {
		fmt.Fprintln(w, noData)
		return
	}
	fmt.Fprintf(w, "Total travel time: %s\n", strconv.FormatFloat(r.TotalDuration, 'f', -1, 64))
	fmt.Fprintf(w, "Mean travel time: %d\n", r.MeanDuration)
}

// UserStats counts user types and, when the file has them, genders and
// birth years. Empty cells are not counted as a value.
func (s *StatsService) UserStats(t *models.TripTable) models.UserReport {
	r := models.UserReport{Trips: t.Len()}
	if r.Trips == 0 {
		return r
	}

	types := utils.NewCounter[string]()
	genders := utils.NewCounter[string]()
	years := utils.NewCounter[int]()
	for _, trip := range t.Trips {
		if trip.UserType != "" {
			types.Add(trip.UserType)
		}
		if trip.Gender != "" {
			genders.Add(trip.Gender)
		}
		if trip.HasBirthYear {
			years.Add(int(trip.BirthYear))
		}
	}

	r.UserTypes = types.Distinct()
	if t.Schema.HasGender {
		r.HasGender = true
		r.Genders = genders.Distinct()
	}
	if t.Schema.HasBirthYear && years.Distinct() > 0 {
		r.HasBirthYear = true
		r.EarliestBirth, _ = years.Min()
		r.LatestBirth, _ = years.Max()
		r.CommonBirthYear, _ = years.Mode()
	} else if t.Schema.HasBirthYear {
		s.logger.Warn("[stats] Birth Year column present but every value is empty")
	}
	return r
}

func (s *StatsService) PrintUserStats(w io.Writer, r models.UserReport) {
	if r.Trips == 0 {
		fmt.Fprintln(w, noData)
		return
	}
	fmt.Fprintf(w, "Unique user types: %d\n", r.UserTypes)
	if r.HasGender {
		fmt.Fprintf(w, "Gender count: %d\n", r.Genders)
	}
	if r.HasBirthYear {
		fmt.Fprintf(w, "Earliest year of birth: %d\n", r.EarliestBirth)
		fmt.Fprintf(w, "Most recent year of birth: %d\n", r.LatestBirth)
		fmt.Fprintf(w, "Most common year of birth: %d\n", r.CommonBirthYear)
	}
}
