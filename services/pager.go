package services

import (
	"fmt"
	"io"

	"bikeshare-explorer/models"
)

const defaultPageSize = 5

// Pager prints the original columns of a trip table in batches,
// asking before the first batch and after every full batch.
type Pager struct {
	prompter *Prompter
	out      io.Writer
	pageSize int
}

// NewPager creates a Pager. A non-positive pageSize falls back to 5.
func NewPager(prompter *Prompter, out io.Writer, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Pager{prompter: prompter, out: out, pageSize: pageSize}
}

// Run pages through t until the user declines or the rows run out.
func (p *Pager) Run(t *models.TripTable) error {
	show, err := p.prompter.YesNo("Would you like to see the raw data? (yes, no): ")
	if err != nil {
		return err
	}
	if !show {
		fmt.Fprintln(p.out, Separator)
		return nil
	}

	for i, trip := range t.Trips {
		n := i + 1
		fmt.Fprintf(p.out, "+++++++++++%d+++++++++++\n", n)
		for c, name := range t.Schema.Columns {
			fmt.Fprintf(p.out, "%s: %s\n", name, trip.Values[c])
		}

		if n%p.pageSize == 0 && n < len(t.Trips) {
			more, err := p.prompter.YesNo("Would you like to see more raw data? (yes, no): ")
			if err != nil {
				return err
			}
			if !more {
				break
			}
		}
	}

	fmt.Fprintln(p.out, Separator)
	return nil
}
