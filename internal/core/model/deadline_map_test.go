package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadlineMapAppend(t *testing.T) {
	m := NewDeadlineMap()
	d1 := NewDeadlineDate(2024, 1, 1)
	d2 := NewDeadlineDate(2024, 1, 2)

	m.Append(d2, "security", Item{Text: "Lab 1"})
	m.Append(d1, "mobile", Item{Text: "Sketch"})
	m.Append(d2, "security", Item{Text: "Lab 1"})
	m.Append(d2, "mobile", Item{Text: "Prototype"})

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 4, m.ItemCount())
	assert.Equal(t, []DeadlineDate{d2, d1}, m.Dates(), "dates keep first-seen order")

	courses := m.Courses(d2)
	require.Len(t, courses, 2)
	assert.Equal(t, CourseKey("security"), courses[0].Course)
	assert.Equal(t, CourseKey("mobile"), courses[1].Course)
	assert.Equal(t, []Item{{Text: "Lab 1"}, {Text: "Lab 1"}}, courses[0].Items, "duplicates are kept")
}

func TestDeadlineMapAppendNothingCreatesNoEntry(t *testing.T) {
	m := NewDeadlineMap()
	d := NewDeadlineDate(2024, 1, 1)

	m.Append(d, "security")

	assert.False(t, m.Has(d))
	assert.Equal(t, 0, m.Len())
}

func TestDeadlineMapReturnsCopies(t *testing.T) {
	m := NewDeadlineMap()
	d := NewDeadlineDate(2024, 1, 1)
	m.Append(d, "security", Item{Text: "Lab 1"})

	courses := m.Courses(d)
	courses[0].Items[0].Text = "changed"
	items := m.Items(d, "security")
	items[0].Text = "changed too"

	assert.Equal(t, "Lab 1", m.Items(d, "security")[0].Text)
	assert.Nil(t, m.Items(d, "unknown"))
}

func TestMergeDisjointDates(t *testing.T) {
	d1 := NewDeadlineDate(2024, 1, 1)
	d2 := NewDeadlineDate(2024, 1, 5)

	left := NewDeadlineMap()
	left.Append(d1, "security", Item{Text: "Lab 1"}, Item{Text: "Quiz"})
	right := NewDeadlineMap()
	right.Append(d2, "mobile", Item{Text: "Prototype", Done: true})

	merged := Merge(left, right)

	assert.ElementsMatch(t, []DeadlineDate{d1, d2}, merged.Dates())
	assert.Equal(t, left.Courses(d1), merged.Courses(d1))
	assert.Equal(t, right.Courses(d2), merged.Courses(d2))
}

func TestMergeOverlappingDates(t *testing.T) {
	d := NewDeadlineDate(2024, 1, 1)

	left := NewDeadlineMap()
	left.Append(d, "security", Item{Text: "Lab 1"})
	left.Append(d, "mobile", Item{Text: "Sketch"})
	right := NewDeadlineMap()
	right.Append(d, "mobile", Item{Text: "Sketch"})
	right.Append(d, "pervasive", Item{Text: "Essay"})

	merged := Merge(left, right)

	courses := merged.Courses(d)
	require.Len(t, courses, 3)
	assert.Equal(t, CourseKey("security"), courses[0].Course)
	assert.Equal(t, CourseKey("mobile"), courses[1].Course)
	assert.Equal(t, CourseKey("pervasive"), courses[2].Course)
	assert.Equal(t, []Item{{Text: "Sketch"}, {Text: "Sketch"}}, courses[1].Items)
	assert.Equal(t, 4, merged.ItemCount())
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	d := NewDeadlineDate(2024, 1, 1)
	left := NewDeadlineMap()
	left.Append(d, "security", Item{Text: "Lab 1"})
	right := NewDeadlineMap()
	right.Append(d, "security", Item{Text: "Lab 2"})

	merged := Merge(left, right)
	merged.Append(d, "security", Item{Text: "Lab 3"})

	assert.Len(t, left.Items(d, "security"), 1)
	assert.Len(t, right.Items(d, "security"), 1)
	assert.Len(t, merged.Items(d, "security"), 3)
}

func TestMergeWithNil(t *testing.T) {
	d := NewDeadlineDate(2024, 1, 1)
	m := NewDeadlineMap()
	m.Append(d, "security", Item{Text: "Lab 1"})

	assert.Equal(t, m.Courses(d), Merge(nil, m).Courses(d))
	assert.Equal(t, m.Courses(d), Merge(m, nil).Courses(d))
	assert.Equal(t, 0, Merge(nil, nil).Len())
}

func TestDeadlineMapGroup(t *testing.T) {
	d := NewDeadlineDate(2024, 1, 1)
	m := NewDeadlineMap()
	m.Append(d, "security", Item{Text: "Lab 1"})

	g := m.Group(d)
	assert.Equal(t, d, g.Date)
	assert.Equal(t, 1, g.ItemCount())
}
