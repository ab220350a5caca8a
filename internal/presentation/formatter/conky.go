package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-conky-deadlines/internal/core/model"
	"github.com/penwyp/go-conky-deadlines/internal/util"
)

// ConkyFormatter writes the widget report using conky color markup.
type ConkyFormatter struct {
	opts Options
}

func NewConkyFormatter(opts Options) *ConkyFormatter {
	return &ConkyFormatter{opts: opts}
}

func (f *ConkyFormatter) Format(w io.Writer, groups []model.DateGroup) error {
	var b strings.Builder

	for _, g := range groups {
		header := Header(g.Date)
		if f.opts.Overdue(g.Date) {
			header = util.ConkyColor(model.ColorOverdue, header)
		}
		b.WriteString(header)
		b.WriteString("\n")

		for _, c := range g.Courses {
			abbr := f.opts.Abbr(c.Course)
			for _, item := range c.Items {
				line := fmt.Sprintf("[%s] %s", abbr, util.Truncate(item.Text, f.opts.MaxLen))
				b.WriteString(util.ConkyColor(model.ColorItem, line))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
