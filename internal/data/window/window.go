// Package window applies the look-ahead filter and date ordering.
package window

import (
	"sort"
	"time"

	"github.com/penwyp/go-conky-deadlines/internal/core/constants"
	"github.com/penwyp/go-conky-deadlines/internal/core/model"
)

// Cutoff returns the first calendar date excluded by a window of days
// starting on now's calendar day.
func Cutoff(now time.Time, days int) model.DeadlineDate {
	return model.DateOf(now).AddDays(days)
}

// Keep reports whether date falls inside the window. Past dates and the
// undated bucket have no lower bound.
func Keep(date model.DeadlineDate, cutoff model.DeadlineDate) bool {
	return date.Before(cutoff)
}

// Apply keeps the dates strictly before now + days and returns them sorted
// ascending. A non-positive days uses the default window.
func Apply(deadlines *model.DeadlineMap, now time.Time, days int) []model.DateGroup {
	if deadlines == nil {
		return nil
	}
	if days <= 0 {
		days = constants.LookAheadDays
	}

	cutoff := Cutoff(now, days)
	dates := make([]model.DeadlineDate, 0, deadlines.Len())
	for _, date := range deadlines.Dates() {
		if Keep(date, cutoff) {
			dates = append(dates, date)
		}
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	groups := make([]model.DateGroup, 0, len(dates))
	for _, date := range dates {
		groups = append(groups, deadlines.Group(date))
	}
	return groups
}
