package formatter

import (
	"io"
	"strings"

	"github.com/penwyp/go-conky-deadlines/internal/core/model"
	"github.com/penwyp/go-conky-deadlines/internal/util"
)

const overdueSuffix = " (overdue)"

// PlainFormatter writes the report without markup, aligning item text.
type PlainFormatter struct {
	opts Options
}

func NewPlainFormatter(opts Options) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

func (f *PlainFormatter) abbrWidth(groups []model.DateGroup) int {
	width := 0
	for _, g := range groups {
		for _, c := range g.Courses {
			if w := util.GetDisplayWidth(f.opts.Abbr(c.Course)); w > width {
				width = w
			}
		}
	}
	return width
}

func (f *PlainFormatter) Format(w io.Writer, groups []model.DateGroup) error {
	width := f.abbrWidth(groups)
	var b strings.Builder

	for _, g := range groups {
		b.WriteString(Header(g.Date))
		if f.opts.Overdue(g.Date) {
			b.WriteString(overdueSuffix)
		}
		b.WriteString("\n")

		for _, c := range g.Courses {
			abbr := util.PadRight(f.opts.Abbr(c.Course), width)
			for _, item := range c.Items {
				b.WriteString("  ")
				b.WriteString(abbr)
				b.WriteString("  ")
				b.WriteString(util.Truncate(item.Text, f.opts.MaxLen))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
