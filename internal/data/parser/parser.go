package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/penwyp/go-conky-deadlines/internal/core/model"
)

// Kind classifies a markdown line
type Kind int

const (
	KindIgnore Kind = iota
	KindHeading
	KindItem
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindItem:
		return "item"
	default:
		return "ignore"
	}
}

var (
	headingPattern = regexp.MustCompile(`^#{2,} (\d{4})-(\d{2})-(\d{2}) (.*)$`)
	itemPattern    = regexp.MustCompile(`^\* (.*)$`)
)

// Line is the parsed form of one markdown line. Date and Label are set for
// headings, Item for list items.
type Line struct {
	Kind  Kind
	Date  model.DeadlineDate
	Label string
	Item  model.Item
}

// byteOrderMark is written at the start of files by some Windows editors
const byteOrderMark = "\ufeff"

// ParseLine classifies a single line. The heading test runs first, on the
// line without leading indentation or byte order mark; the item test runs on
// the trimmed line only if that fails.
func ParseLine(raw string) Line {
	raw = strings.TrimRight(raw, "\r\n")
	raw = strings.TrimPrefix(raw, byteOrderMark)

	if m := headingPattern.FindStringSubmatch(strings.TrimLeft(raw, " \t"+byteOrderMark)); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return Line{
			Kind:  KindHeading,
			Date:  model.NewDeadlineDate(year, month, day),
			Label: m[4],
		}
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{Kind: KindIgnore}
	}

	if m := itemPattern.FindStringSubmatch(trimmed); m != nil {
		return Line{Kind: KindItem, Item: ParseItemText(m[1])}
	}

	return Line{Kind: KindIgnore}
}

// ParseItemText splits a trailing DONE marker off an item's text.
// The marker is a plain case-sensitive suffix match.
func ParseItemText(text string) model.Item {
	if strings.HasSuffix(text, model.DoneMarker) {
		return model.Item{
			Text: strings.TrimSpace(strings.TrimSuffix(text, model.DoneMarker)),
			Done: true,
		}
	}
	return model.Item{Text: strings.TrimSpace(text)}
}
