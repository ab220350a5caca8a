package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/penwyp/go-conky-deadlines/internal/core/constants"
	"github.com/penwyp/go-conky-deadlines/internal/core/model"
	"github.com/penwyp/go-conky-deadlines/internal/util"
)

// Formatter renders filtered, sorted date groups.
type Formatter interface {
	Format(w io.Writer, groups []model.DateGroup) error
}

// Options carries everything a formatter needs besides the groups.
type Options struct {
	Abbreviations map[model.CourseKey]string
	Today         model.DeadlineDate
	MaxLen        int
}

// Abbr returns the display abbreviation of course, falling back to the key.
func (o Options) Abbr(course model.CourseKey) string {
	if abbr, ok := o.Abbreviations[course]; ok && abbr != "" {
		return abbr
	}
	return string(course)
}

// Overdue reports whether date lies before today.
func (o Options) Overdue(date model.DeadlineDate) bool {
	return !date.IsUndated() && date.Before(o.Today)
}

// Header renders the date line text without markup.
func Header(date model.DeadlineDate) string {
	if date.IsUndated() {
		return model.UndatedLabel
	}
	return util.FormatDayHeader(date.In(time.UTC))
}

// DateView is the structured form used by the json and csv formatters.
type DateView struct {
	Date    string       `json:"date"`
	Header  string       `json:"header"`
	Overdue bool         `json:"overdue"`
	Courses []CourseView `json:"courses"`
}

type CourseView struct {
	Course string       `json:"course"`
	Abbr   string       `json:"abbr"`
	Items  []model.Item `json:"items"`
}

// BuildViews converts groups to views, truncating item text.
func BuildViews(groups []model.DateGroup, opts Options) []DateView {
	views := make([]DateView, 0, len(groups))
	for _, g := range groups {
		view := DateView{
			Date:    g.Date.String(),
			Header:  Header(g.Date),
			Overdue: opts.Overdue(g.Date),
			Courses: make([]CourseView, 0, len(g.Courses)),
		}
		for _, c := range g.Courses {
			items := make([]model.Item, len(c.Items))
			for i, item := range c.Items {
				items[i] = model.Item{Text: util.Truncate(item.Text, opts.MaxLen), Done: item.Done}
			}
			view.Courses = append(view.Courses, CourseView{
				Course: string(c.Course),
				Abbr:   opts.Abbr(c.Course),
				Items:  items,
			})
		}
		views = append(views, view)
	}
	return views
}

// New returns the formatter registered under name.
func New(name string, opts Options) (Formatter, error) {
	if opts.MaxLen < 0 {
		return nil, fmt.Errorf("max text length must not be negative, got %d", opts.MaxLen)
	}

	switch name {
	case "", model.OutputConky:
		return NewConkyFormatter(opts), nil
	case model.OutputPlain:
		return NewPlainFormatter(opts), nil
	case model.OutputJSON:
		return NewJSONFormatter(opts), nil
	case model.OutputCSV:
		return NewCSVFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format '%s': must be one of conky, plain, json, csv", name)
	}
}

// DefaultOptions returns options with the default text length.
func DefaultOptions(abbreviations map[model.CourseKey]string, today model.DeadlineDate) Options {
	return Options{
		Abbreviations: abbreviations,
		Today:         today,
		MaxLen:        constants.DefaultMaxTextLen,
	}
}
