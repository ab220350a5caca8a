package model

// DeadlineMap maps a date to its courses and their items.
// Course order within a date follows insertion order; dates are kept in
// first-seen order and sorted later by the window stage.
type DeadlineMap struct {
	entries map[DeadlineDate][]CourseItems
	order   []DeadlineDate
}

// NewDeadlineMap creates an empty map
func NewDeadlineMap() *DeadlineMap {
	return &DeadlineMap{
		entries: make(map[DeadlineDate][]CourseItems),
	}
}

// Append adds item under (date, course). Duplicates are kept.
func (m *DeadlineMap) Append(date DeadlineDate, course CourseKey, items ...Item) {
	if len(items) == 0 {
		return
	}

	courses, exists := m.entries[date]
	if !exists {
		m.order = append(m.order, date)
	}

	for i := range courses {
		if courses[i].Course == course {
			courses[i].Items = append(courses[i].Items, items...)
			m.entries[date] = courses
			return
		}
	}

	copied := make([]Item, len(items))
	copy(copied, items)
	m.entries[date] = append(courses, CourseItems{Course: course, Items: copied})
}

// Dates returns the dates in first-seen order.
func (m *DeadlineMap) Dates() []DeadlineDate {
	dates := make([]DeadlineDate, len(m.order))
	copy(dates, m.order)
	return dates
}

// Has reports whether date has at least one item.
func (m *DeadlineMap) Has(date DeadlineDate) bool {
	_, ok := m.entries[date]
	return ok
}

// Courses returns a copy of the course groups stored under date.
func (m *DeadlineMap) Courses(date DeadlineDate) []CourseItems {
	src := m.entries[date]
	if len(src) == 0 {
		return nil
	}
	out := make([]CourseItems, len(src))
	for i, c := range src {
		items := make([]Item, len(c.Items))
		copy(items, c.Items)
		out[i] = CourseItems{Course: c.Course, Items: items}
	}
	return out
}

// Items returns the items stored under (date, course).
func (m *DeadlineMap) Items(date DeadlineDate, course CourseKey) []Item {
	for _, c := range m.entries[date] {
		if c.Course == course {
			items := make([]Item, len(c.Items))
			copy(items, c.Items)
			return items
		}
	}
	return nil
}

// Len returns the number of dates.
func (m *DeadlineMap) Len() int {
	return len(m.order)
}

// ItemCount returns the total number of items.
func (m *DeadlineMap) ItemCount() int {
	n := 0
	for _, courses := range m.entries {
		for _, c := range courses {
			n += len(c.Items)
		}
	}
	return n
}

// Group returns the date group stored under date.
func (m *DeadlineMap) Group(date DeadlineDate) DateGroup {
	return DateGroup{Date: date, Courses: m.Courses(date)}
}

// Merge returns the recursive union of left and right. For every date and
// course the items of right are appended after those of left. Dates and
// courses missing from one side are carried over unchanged. Neither input
// is modified.
func Merge(left, right *DeadlineMap) *DeadlineMap {
	merged := NewDeadlineMap()
	for _, src := range []*DeadlineMap{left, right} {
		if src == nil {
			continue
		}
		for _, date := range src.order {
			for _, c := range src.entries[date] {
				merged.Append(date, c.Course, c.Items...)
			}
		}
	}
	return merged
}
