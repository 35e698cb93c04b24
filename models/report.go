package models

// TimeReport holds the most frequent times of travel. A zero month or an
// empty weekday means the table held a single distinct value.
type TimeReport struct {
	Trips           int
	CommonMonth     int
	CommonWeekday   string
	CommonStartHour int
}

// StationReport holds the most popular stations and station pair.
type StationReport struct {
	Trips              int
	CommonStartStation string
	CommonEndStation   string
	CommonRoute        string
}

// DurationReport holds trip duration aggregates, in seconds.
type DurationReport struct {
	Trips         int
	TotalDuration float64
	MeanDuration  int64
}

// UserReport holds user demographics. Gender and birth year fields are only
// meaningful when the matching Has flag is set.
type UserReport struct {
	Trips     int
	UserTypes int

	HasGender bool
	Genders   int

	HasBirthYear    bool
	EarliestBirth   int
	LatestBirth     int
	CommonBirthYear int
}
