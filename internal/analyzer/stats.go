package analyzer

import (
	"fmt"
	"time"

	"github.com/penwyp/go-conky-deadlines/internal/util"
)

// Phase names a timed pipeline stage
type Phase string

const (
	PhaseAggregate Phase = "aggregate"
	PhaseWindow    Phase = "window"
)

// RunStats collects counters and timings for one render
type RunStats struct {
	Courses   int
	Dates     int
	Items     int
	KeptDates int
	durations map[Phase]time.Duration
	order     []Phase
}

func NewRunStats() *RunStats {
	return &RunStats{durations: make(map[Phase]time.Duration)}
}

// Record adds d to the phase's total
func (s *RunStats) Record(phase Phase, d time.Duration) {
	if _, ok := s.durations[phase]; !ok {
		s.order = append(s.order, phase)
	}
	s.durations[phase] += d
}

// Duration returns the time spent in phase
func (s *RunStats) Duration(phase Phase) time.Duration {
	return s.durations[phase]
}

func (s *RunStats) String() string {
	msg := fmt.Sprintf("courses=%d dates=%d items=%d kept_dates=%d", s.Courses, s.Dates, s.Items, s.KeptDates)
	for _, phase := range s.order {
		msg += fmt.Sprintf(" %s=%v", phase, s.durations[phase])
	}
	return msg
}

// Fields returns the stats as structured log fields
func (s *RunStats) Fields() []util.Field {
	fields := []util.Field{
		{Key: "courses", Value: s.Courses},
		{Key: "dates", Value: s.Dates},
		{Key: "items", Value: s.Items},
		{Key: "kept_dates", Value: s.KeptDates},
	}
	for _, phase := range s.order {
		fields = append(fields, util.Field{Key: string(phase), Value: s.durations[phase].String()})
	}
	return fields
}

func (s *RunStats) Log() {
	util.WithFields(s.Fields()...).Debug("Render stats")
}
