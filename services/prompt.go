package services

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"bikeshare-explorer/config"
	"bikeshare-explorer/models"
	"bikeshare-explorer/utils"
)

// Separator closes every section of console output.
var Separator = strings.Repeat("-", 40)

var errorColor = color.New(color.FgRed)

// Prompter asks questions on out and reads the answers line by line from in.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	catalog config.Catalog
	retry   *utils.RetryConfig
}

// NewPrompter creates a Prompter. A nil retry config re-prompts forever.
func NewPrompter(in io.Reader, out io.Writer, catalog config.Catalog, retry *utils.RetryConfig) *Prompter {
	if retry == nil {
		retry = &utils.RetryConfig{}
	}
	return &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		catalog: catalog,
		retry:   retry,
	}
}

// Filters asks for a city, a month and a day until each answer is one of
// the catalog values, and returns the validated selection.
func (p *Prompter) Filters() (models.Filter, error) {
	var f models.Filter

	city, err := p.choose("city",
		fmt.Sprintf("Enter the name of the city (%s): ", p.catalog.DescribeCities()),
		"Invalid or unknown city name. Please try it again.",
		func(s string) bool { _, ok := p.catalog.File(s); return ok })
	if err != nil {
		return f, err
	}

	month, err := p.choose("month",
		"Enter the name of the month (january, february, ...) or 'all' for the whole year: ",
		"Invalid month. Please try it again.",
		p.catalog.ValidMonth)
	if err != nil {
		return f, err
	}

	day, err := p.choose("day",
		"Enter the name of the day (monday, tuesday, ...) or 'all' for the whole week: ",
		"Invalid day of the week. Please try it again.",
		p.catalog.ValidDay)
	if err != nil {
		return f, err
	}

	fmt.Fprintln(p.out, Separator)
	return models.Filter{City: city, Month: month, Day: day}, nil
}

// YesNo asks question until the answer is yes or no.
func (p *Prompter) YesNo(question string) (bool, error) {
	answer, err := p.choose("yes/no", question,
		"Invalid input. Please try it again.",
		func(s string) bool { return s == "yes" || s == "no" })
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

// Ask prints question once and returns the normalised answer.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return normaliseAnswer(line), nil
}

func (p *Prompter) choose(name, question, invalid string, valid func(string) bool) (string, error) {
	var answer string
	err := p.retry.Do("prompt "+name, func() error {
		a, err := p.Ask(question)
		if err != nil {
			return err
		}
		if !valid(a) {
			errorColor.Fprintln(p.out, invalid)
			return fmt.Errorf("%w: %q", utils.ErrInvalidInput, a)
		}
		answer = a
		return nil
	})
	return answer, err
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned before io.EOF.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
