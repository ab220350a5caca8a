package watch

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/penwyp/go-conky-deadlines/internal/core/model"
	"github.com/penwyp/go-conky-deadlines/internal/data/scanner"
	"github.com/penwyp/go-conky-deadlines/internal/util"
)

// RefreshController re-renders the report and keeps the last good output
type RefreshController struct {
	renderer Renderer
	locator  *scanner.CourseLocator
	courses  []model.CourseKey

	mu        sync.Mutex
	last      []byte
	rendered  bool
	snapshots map[model.CourseKey]*util.FileInfo
}

// NewRefreshController creates a controller for the given courses
func NewRefreshController(renderer Renderer, locator *scanner.CourseLocator, courses []model.CourseKey) *RefreshController {
	return &RefreshController{
		renderer:  renderer,
		locator:   locator,
		courses:   courses,
		snapshots: make(map[model.CourseKey]*util.FileInfo),
	}
}

// Initial performs the first render. Its errors are fatal to the caller.
func (rc *RefreshController) Initial() ([]byte, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	out, err := rc.renderer.Render()
	if err != nil {
		return nil, err
	}
	rc.last = out
	rc.rendered = true
	rc.identifyChangedCourses()
	return out, nil
}

// Refresh renders again. On failure the previous output is returned together
// with the error; changed reports whether the output differs from the last
// successful render.
func (rc *RefreshController) Refresh() (out []byte, changed bool, err error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if !rc.rendered {
		return nil, false, fmt.Errorf("refresh before initial render")
	}

	if courses := rc.identifyChangedCourses(); len(courses) > 0 {
		util.LogInfof("Deadline files changed: %v", courses)
	}

	next, err := rc.renderer.Render()
	if err != nil {
		return rc.last, false, err
	}

	changed = !bytes.Equal(next, rc.last)
	rc.last = next
	return next, changed, nil
}

// Last returns the output of the last successful render
func (rc *RefreshController) Last() []byte {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.last
}

// identifyChangedCourses updates the file snapshots and returns the courses
// whose deadline file appeared, disappeared or changed content.
func (rc *RefreshController) identifyChangedCourses() []model.CourseKey {
	var changed []model.CourseKey
	for _, course := range rc.courses {
		info, err := util.GetFileInfo(rc.locator.Path(course))
		if err != nil {
			info = nil
		}
		prev, seen := rc.snapshots[course]
		if seen && !prev.Equal(info) {
			changed = append(changed, course)
		}
		rc.snapshots[course] = info
	}
	return changed
}
