package model

import (
	"fmt"
	"time"
)

// DeadlineDate is a calendar date used as a grouping key.
// The zero value is the undated bucket.
type DeadlineDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDeadlineDate builds a date, normalizing out-of-range values the way
// time.Date does (2024-02-30 becomes 2024-03-01).
func NewDeadlineDate(year, month, day int) DeadlineDate {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return DateOf(t)
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) DeadlineDate {
	y, m, d := t.Date()
	return DeadlineDate{Year: y, Month: m, Day: d}
}

// ParseDeadlineDate parses a canonical YYYY-MM-DD string.
func ParseDeadlineDate(s string) (DeadlineDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return DeadlineDate{}, fmt.Errorf("invalid deadline date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d DeadlineDate) IsUndated() bool {
	return d == DeadlineDate{}
}

// String returns the canonical YYYY-MM-DD form, or "" for the undated bucket.
// Lexicographic order on the result is chronological order.
func (d DeadlineDate) String() string {
	if d.IsUndated() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// In returns midnight of the date in loc.
func (d DeadlineDate) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n calendar days later.
func (d DeadlineDate) AddDays(n int) DeadlineDate {
	return DateOf(d.In(time.UTC).AddDate(0, 0, n))
}

// Before reports whether d sorts before other. The undated bucket sorts first.
func (d DeadlineDate) Before(other DeadlineDate) bool {
	return d.String() < other.String()
}

// Item is a single deadline entry.
type Item struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// CourseKey identifies a course by its folder name.
type CourseKey string

// CourseItems holds the items of one course under one date.
type CourseItems struct {
	Course CourseKey
	Items  []Item
}

// DateGroup is one date with its courses, as handed to the formatters.
type DateGroup struct {
	Date    DeadlineDate
	Courses []CourseItems
}

// ItemCount returns the number of items across all courses in the group.
func (g DateGroup) ItemCount() int {
	n := 0
	for _, c := range g.Courses {
		n += len(c.Items)
	}
	return n
}
