package util

import (
	"fmt"
	"time"
)

// Ellipsis replaces the cut-off part of truncated text
const Ellipsis = "..."

// Truncate keeps the first maxLen runes of text and replaces the rest with
// "...". Text no longer than maxLen is returned unchanged. The result can
// exceed maxLen; callers rely on that positional behaviour.
func Truncate(text string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	runes := []rune(text)
	if maxLen >= len(runes) {
		return text
	}
	return string(runes[:maxLen]) + Ellipsis
}

// OrdinalSuffix returns the English ordinal suffix for a day of the month
func OrdinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatDayHeader renders t as "Mon, Jan 2nd"
func FormatDayHeader(t time.Time) string {
	return fmt.Sprintf("%s %d%s", t.Format("Mon, Jan"), t.Day(), OrdinalSuffix(t.Day()))
}

// ConkyColor wraps text in conky color markup
func ConkyColor(color, text string) string {
	return fmt.Sprintf("${color %s}%s${color}", color, text)
}
