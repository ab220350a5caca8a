package aggregator

import (
	"bufio"
	"fmt"
	"io"

	"github.com/penwyp/go-conky-deadlines/internal/core/model"
	"github.com/penwyp/go-conky-deadlines/internal/data/cache"
	"github.com/penwyp/go-conky-deadlines/internal/data/parser"
	"github.com/penwyp/go-conky-deadlines/internal/data/scanner"
	"github.com/penwyp/go-conky-deadlines/internal/util"
)

// Aggregator builds deadline maps from course files.
type Aggregator struct {
	locator     *scanner.CourseLocator
	includeDone bool
	cache       *cache.ParseCache
}

// scanState is the accumulator threaded through the lines of one file.
type scanState struct {
	current   model.DeadlineDate
	deadlines *model.DeadlineMap
	skipped   int
}

// NewAggregator creates an Aggregator reading course files through locator.
func NewAggregator(locator *scanner.CourseLocator, includeDone bool) *Aggregator {
	return &Aggregator{
		locator:     locator,
		includeDone: includeDone,
	}
}

// WithCache makes AggregateFile reuse parse results of unchanged files.
func (a *Aggregator) WithCache(c *cache.ParseCache) *Aggregator {
	a.cache = c
	return a
}

// IncludeDone reports whether DONE items are kept.
func (a *Aggregator) IncludeDone() bool {
	return a.includeDone
}

// step folds one parsed line into the state. Items seen before any heading
// land in the undated bucket.
func (a *Aggregator) step(s scanState, course model.CourseKey, line parser.Line) scanState {
	switch line.Kind {
	case parser.KindHeading:
		s.current = line.Date
	case parser.KindItem:
		if line.Item.Done && !a.includeDone {
			s.skipped++
			return s
		}
		s.deadlines.Append(s.current, course, line.Item)
	}
	return s
}

// Aggregate builds the deadline map of one course from its lines.
func (a *Aggregator) Aggregate(course model.CourseKey, lines []string) *model.DeadlineMap {
	s := scanState{deadlines: model.NewDeadlineMap()}
	for _, raw := range lines {
		s = a.step(s, course, parser.ParseLine(raw))
	}
	return s.deadlines
}

// AggregateReader is Aggregate over a stream of lines.
func (a *Aggregator) AggregateReader(course model.CourseKey, r io.Reader) (*model.DeadlineMap, error) {
	s := scanState{deadlines: model.NewDeadlineMap()}

	br := bufio.NewReader(r)

	lineCount := 0
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			lineCount++
			s = a.step(s, course, parser.ParseLine(raw))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading deadlines of %s: %w", course, err)
		}
	}

	util.LogDebug(fmt.Sprintf("Parsed %s: %d lines, %d dates, %d items, %d done items skipped",
		course, lineCount, s.deadlines.Len(), s.deadlines.ItemCount(), s.skipped))
	return s.deadlines, nil
}

// AggregateFile reads the deadline file of course. The file is closed on
// every path.
func (a *Aggregator) AggregateFile(course model.CourseKey) (*model.DeadlineMap, error) {
	file, err := a.locator.Open(course)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if a.cache == nil {
		return a.AggregateReader(course, file)
	}

	path := file.Name()
	info, err := util.GetFileInfo(path)
	if err != nil {
		return nil, &scanner.FileError{Kind: scanner.ErrFileUnreadable, Path: path, Err: err}
	}
	if res := a.cache.Get(path, info); res.Found {
		util.LogDebugf("Parse cache hit for %s", course)
		return res.Data, nil
	}

	deadlines, err := a.AggregateReader(course, file)
	if err != nil {
		return nil, err
	}
	a.cache.Set(path, info, deadlines)
	return deadlines, nil
}

// AggregateCourses reads every course in order and merges the results.
// The first failing course aborts the whole run.
func (a *Aggregator) AggregateCourses(courses []model.CourseKey) (*model.DeadlineMap, error) {
	merged := model.NewDeadlineMap()
	for _, course := range courses {
		deadlines, err := a.AggregateFile(course)
		if err != nil {
			util.LogError(fmt.Sprintf("Aborting: %v", err))
			return nil, err
		}
		merged = model.Merge(merged, deadlines)
	}

	util.LogDebug(fmt.Sprintf("Aggregated %d courses into %d dates", len(courses), merged.Len()))
	return merged, nil
}
