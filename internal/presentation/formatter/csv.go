package formatter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/penwyp/go-conky-deadlines/internal/core/model"
)

// CSVFormatter writes one row per item.
type CSVFormatter struct {
	opts Options
}

func NewCSVFormatter(opts Options) *CSVFormatter {
	return &CSVFormatter{opts: opts}
}

func (f *CSVFormatter) Format(w io.Writer, groups []model.DateGroup) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Overdue", "Course", "Abbr", "Text", "Done"}); err != nil {
		return err
	}

	for _, view := range BuildViews(groups, f.opts) {
		for _, c := range view.Courses {
			for _, item := range c.Items {
				record := []string{
					view.Date,
					strconv.FormatBool(view.Overdue),
					c.Course,
					c.Abbr,
					item.Text,
					strconv.FormatBool(item.Done),
				}
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
