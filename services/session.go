package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"bikeshare-explorer/config"
	"bikeshare-explorer/models"
	"bikeshare-explorer/storage"
	"bikeshare-explorer/utils"
)

var bannerColor = color.New(color.FgCyan, color.Bold)

// Session drives the interactive loop: pick filters, load, report, page,
// and ask whether to start over.
type Session struct {
	cfg      *config.Config
	source   storage.TripSource
	prompter *Prompter
	stats    *StatsService
	pager    *Pager
	out      io.Writer
	logger   *utils.Logger
}

// NewSession wires a Session reading answers from in and writing to out.
func NewSession(cfg *config.Config, source storage.TripSource, in io.Reader, out io.Writer, logger *utils.Logger) *Session {
	prompter := NewPrompter(in, out, cfg.Catalog, &utils.RetryConfig{
		MaxAttempts: cfg.PromptMaxAttempts,
		Logger:      logger,
	})
	return &Session{
		cfg:      cfg,
		source:   source,
		prompter: prompter,
		stats:    NewStatsService(logger),
		pager:    NewPager(prompter, out, cfg.RawPageSize),
		out:      out,
		logger:   logger,
	}
}

// Run loops until the user declines to restart. Running out of input ends
// the loop without an error; a data file that cannot be loaded does not.
func (s *Session) Run(ctx context.Context) error {
	bannerColor.Fprintln(s.out, "Hello! Let's explore some US bikeshare data!")

	for {
		err := s.runOnce(ctx)
		if errors.Is(err, io.EOF) {
			s.logger.Info("[session] Input closed, exiting")
			return nil
		}
		if err != nil {
			return err
		}

		answer, err := s.prompter.Ask("\nWould you like to restart? Enter yes or no: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if answer != "yes" {
			return nil
		}
	}
}

func (s *Session) runOnce(ctx context.Context) error {
	filter, err := s.prompter.Filters()
	if err != nil {
		return err
	}
	s.logger.Info("[session] Filters — city: %s | month: %s | day: %s", filter.City, filter.Month, filter.Day)

	loaded, err := s.source.Load(ctx, filter.City)
	if err != nil {
		return fmt.Errorf("load %s: %w", filter.City, err)
	}
	table := Apply(loaded, filter, s.cfg.Catalog)

	s.printSelection(filter, loaded.Len(), table.Len())
	s.stats.ReportAll(s.out, table)
	return s.pager.Run(table)
}

func (s *Session) printSelection(f models.Filter, loaded, kept int) {
	tw := tablewriter.NewWriter(s.out)
	tw.SetHeader([]string{"City", "Month", "Day", "Trips Loaded", "Trips Selected"})
	tw.Append([]string{f.City, f.Month, f.Day, strconv.Itoa(loaded), strconv.Itoa(kept)})
	tw.Render()
}
