package analyzer

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/penwyp/go-conky-deadlines/internal/config"
	"github.com/penwyp/go-conky-deadlines/internal/core/constants"
	"github.com/penwyp/go-conky-deadlines/internal/core/model"
	"github.com/penwyp/go-conky-deadlines/internal/data/aggregator"
	"github.com/penwyp/go-conky-deadlines/internal/data/cache"
	"github.com/penwyp/go-conky-deadlines/internal/data/scanner"
	"github.com/penwyp/go-conky-deadlines/internal/data/window"
	"github.com/penwyp/go-conky-deadlines/internal/presentation/formatter"
	"github.com/penwyp/go-conky-deadlines/internal/util"
)

type Config struct {
	BaseDir      string
	Courses      config.Config
	OutputFormat string
	MaxLen       int
	IncludeDone  bool
	Days         int
	// CacheParsed reuses parse results of unchanged files across renders
	CacheParsed bool
	// Now defaults to the global time provider
	Now func() time.Time
}

type Analyzer struct {
	config     *Config
	locator    *scanner.CourseLocator
	aggregator *aggregator.Aggregator
}

// New validates cfg and wires the pipeline stages.
func New(cfg *Config) (*Analyzer, error) {
	if len(cfg.Courses.Courses) == 0 {
		cfg.Courses = config.DefaultConfig()
	}
	if cfg.Days <= 0 {
		cfg.Days = constants.LookAheadDays
	}
	if cfg.Now == nil {
		cfg.Now = util.GetTimeProvider().Now
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = "."
	}

	// Probe the formatter name and length up front so bad flags fail fast.
	if _, err := formatter.New(cfg.OutputFormat, formatter.Options{MaxLen: cfg.MaxLen}); err != nil {
		return nil, err
	}

	locator := scanner.NewCourseLocator(cfg.BaseDir)
	agg := aggregator.NewAggregator(locator, cfg.IncludeDone)
	if cfg.CacheParsed {
		agg.WithCache(cache.NewParseCache())
	}
	return &Analyzer{
		config:     cfg,
		locator:    locator,
		aggregator: agg,
	}, nil
}

// Locator exposes where course files are looked up
func (a *Analyzer) Locator() *scanner.CourseLocator {
	return a.locator
}

// Courses returns the course keys in table order
func (a *Analyzer) Courses() []model.CourseKey {
	return a.config.Courses.Keys()
}

// Collect runs parsing, aggregation and the window stage.
func (a *Analyzer) Collect() ([]model.DateGroup, time.Time, error) {
	now := a.config.Now()
	stats := NewRunStats()

	start := time.Now()
	deadlines, err := a.aggregator.AggregateCourses(a.Courses())
	if err != nil {
		return nil, now, err
	}
	stats.Record(PhaseAggregate, time.Since(start))
	stats.Courses = len(a.Courses())
	stats.Dates = deadlines.Len()
	stats.Items = deadlines.ItemCount()

	start = time.Now()
	groups := window.Apply(deadlines, now, a.config.Days)
	stats.Record(PhaseWindow, time.Since(start))
	stats.KeptDates = len(groups)

	stats.Log()
	return groups, now, nil
}

// Render produces the report bytes without writing them anywhere.
func (a *Analyzer) Render() ([]byte, error) {
	groups, now, err := a.Collect()
	if err != nil {
		return nil, err
	}

	opts := formatter.Options{
		Abbreviations: a.config.Courses.Abbreviations(),
		Today:         model.DateOf(now),
		MaxLen:        a.config.MaxLen,
	}
	f, err := formatter.New(a.config.OutputFormat, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Format(&buf, groups); err != nil {
		return nil, fmt.Errorf("failed to format report: %w", err)
	}
	return buf.Bytes(), nil
}

// Run renders the report to w. Nothing is written when any course fails.
func (a *Analyzer) Run(w io.Writer) error {
	util.LogDebug(fmt.Sprintf("Rendering deadlines from %s for %d courses", a.config.BaseDir, len(a.Courses())))

	out, err := a.Render()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
