package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-conky-deadlines/internal/core/model"
)

// DefaultCourses are the course folders of the built-in course table
var DefaultCourses = []string{
	"2-advanced-programming",
	"2-mobile-app-development",
	"2-pervasive-computing",
	"2-security",
}

// Section is one heading with its items. A zero Date writes the items
// without a heading.
type Section struct {
	Date  time.Time
	Label string
	Items []string
}

// Render builds deadline file content from sections
func Render(sections ...Section) string {
	var b strings.Builder
	for _, s := range sections {
		if !s.Date.IsZero() {
			label := s.Label
			if label == "" {
				label = "Week"
			}
			fmt.Fprintf(&b, "## %s %s\n", s.Date.Format(model.DateLayout), label)
		}
		for _, item := range s.Items {
			fmt.Fprintf(&b, "* %s\n", item)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// TestDataGenerator writes course folders with deadline files
type TestDataGenerator struct {
	baseDir string
}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator(baseDir string) *TestDataGenerator {
	return &TestDataGenerator{
		baseDir: baseDir,
	}
}

// WriteCourse writes the deadline file of course from sections
func (g *TestDataGenerator) WriteCourse(course string, sections ...Section) error {
	return g.WriteRaw(course, Render(sections...))
}

// WriteRaw writes content verbatim as the deadline file of course
func (g *TestDataGenerator) WriteRaw(course, content string) error {
	dir := filepath.Join(g.baseDir, course)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(g.CoursePath(course), []byte(content), 0644)
}

// CreateEmptyCourses writes an empty deadline file for every course that
// does not have one yet
func (g *TestDataGenerator) CreateEmptyCourses(courses ...string) error {
	for _, course := range courses {
		if _, err := os.Stat(g.CoursePath(course)); err == nil {
			continue
		}
		if err := g.WriteRaw(course, ""); err != nil {
			return err
		}
	}
	return nil
}

// GenerateSemester fills the default courses with a mix of overdue, due,
// done and out-of-window items around now
func (g *TestDataGenerator) GenerateSemester(now time.Time) error {
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	courses := map[string][]Section{
		"2-advanced-programming": {
			{Date: day(-3), Label: "Week 5", Items: []string{"Generics exercise DONE"}},
			{Date: day(2), Label: "Week 6", Items: []string{"Concurrency assignment"}},
		},
		"2-mobile-app-development": {
			{Date: day(-1), Label: "Week 5", Items: []string{"Wireframes for the prototype"}},
			{Date: day(10), Label: "Week 7", Items: []string{"Final demo"}},
		},
		"2-pervasive-computing": {
			{Date: day(2), Label: "Week 6", Items: []string{"Sensor lab report", "Reading: chapter 4 DONE"}},
		},
		"2-security": {
			{Date: day(0), Label: "Week 6", Items: []string{"Hand in lab report for the firewall exercise"}},
		},
	}
	for _, course := range DefaultCourses {
		if err := g.WriteCourse(course, courses[course]...); err != nil {
			return err
		}
	}
	return nil
}

// RemoveCourseFile deletes the deadline file of course
func (g *TestDataGenerator) RemoveCourseFile(course string) error {
	return os.Remove(g.CoursePath(course))
}

// CoursePath returns where the deadline file of course lives
func (g *TestDataGenerator) CoursePath(course string) string {
	return filepath.Join(g.baseDir, course, model.DeadlinesFileName)
}

// GetBaseDir returns the base directory
func (g *TestDataGenerator) GetBaseDir() string {
	return g.baseDir
}
