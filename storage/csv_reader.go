package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"bikeshare-explorer/config"
	"bikeshare-explorer/models"
	"bikeshare-explorer/utils"
)

var (
	ErrUnknownCity   = errors.New("unknown city")
	ErrMissingColumn = errors.New("missing required column")
)

// startTimeLayouts are tried in order when parsing the start time column.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// TripReader loads a city's trip file into memory and derives the
// month, weekday, start hour and route fields for every row.
type TripReader struct {
	cfg    *config.Config
	logger *utils.Logger
}

// NewTripReader creates a TripReader that resolves city files under cfg.DataDir.
func NewTripReader(cfg *config.Config, logger *utils.Logger) *TripReader {
	return &TripReader{cfg: cfg, logger: logger}
}

// Load reads the whole file for city. The first column is treated as the
// row identifier and is not part of the returned schema.
func (r *TripReader) Load(ctx context.Context, city string) (*models.TripTable, error) {
	path, ok := r.cfg.CityPath(city)
	if !ok {
		return nil, fmt.Errorf("csv: %w: %q", ErrUnknownCity, city)
	}

	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	table, err := ReadTrips(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", path, err)
	}

	r.logger.Debug("[csv] Loaded %d trips from %s in %v", table.Len(), path, time.Since(start))
	return table, nil
}

// ReadTrips parses trip rows from src.
func ReadTrips(ctx context.Context, src io.Reader) (*models.TripTable, error) {
	cr := csv.NewReader(src)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header: want a row identifier and at least one column, got %d columns", len(header))
	}

	columns := make([]string, len(header)-1)
	for i, h := range header[1:] {
		columns[i] = strings.TrimSpace(h)
	}
	schema := models.NewSchema(columns)

	for _, c := range models.RequiredColumns {
		if _, ok := schema.Index(c); !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
	}

	table := &models.TripTable{Schema: schema}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		if line%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		trip, err := parseTrip(schema, record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		table.Trips = append(table.Trips, trip)
	}

	return table, nil
}

func parseTrip(schema *models.Schema, record []string) (*models.Trip, error) {
	values := record[1:]
	get := func(col string) string {
		i, ok := schema.Index(col)
		if !ok {
			return ""
		}
		return values[i]
	}

	startTime, err := parseStartTime(get(models.ColStartTime))
	if err != nil {
		return nil, err
	}

	rawDuration := strings.TrimSpace(get(models.ColTripDuration))
	duration, err := strconv.ParseFloat(rawDuration, 64)
	if err != nil {
		return nil, fmt.Errorf("trip duration %q: %w", rawDuration, err)
	}

	t := &models.Trip{
		ID:           record[0],
		Values:       values,
		StartTime:    startTime,
		StartStation: get(models.ColStartStation),
		EndStation:   get(models.ColEndStation),
		Duration:     duration,
		UserType:     get(models.ColUserType),
		Gender:       get(models.ColGender),
	}

	if schema.HasBirthYear {
		if raw := strings.TrimSpace(get(models.ColBirthYear)); raw != "" {
			year, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("birth year %q: %w", raw, err)
			}
			t.BirthYear = year
			t.HasBirthYear = true
		}
	}

	Derive(t)
	return t, nil
}

// Derive fills the fields computed from the start time and station names.
func Derive(t *models.Trip) {
	t.Month = int(t.StartTime.Month())
	t.Weekday = t.StartTime.Weekday().String()
	t.StartHour = t.StartTime.Hour()
	t.Route = t.StartStation + " - " + t.EndStation
}

func parseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range startTimeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("start time %q: unrecognised timestamp", raw)
}
