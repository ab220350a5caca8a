package watch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/penwyp/go-conky-deadlines/internal/core/model"
	"github.com/penwyp/go-conky-deadlines/internal/data/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	outputs []string
	errs    []error
	calls   int
}

func (s *stubRenderer) Render() ([]byte, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return []byte(s.outputs[i]), nil
}

func newController(t *testing.T, r Renderer) (*RefreshController, string) {
	t.Helper()
	base := t.TempDir()
	locator := scanner.NewCourseLocator(base)
	return NewRefreshController(r, locator, []model.CourseKey{"2-security"}), base
}

func TestRefreshControllerInitialError(t *testing.T) {
	r := &stubRenderer{errs: []error{errors.New("boom")}}
	rc, _ := newController(t, r)

	_, err := rc.Initial()
	assert.EqualError(t, err, "boom")

	_, _, err = rc.Refresh()
	assert.Error(t, err, "refresh requires a successful initial render")
}

func TestRefreshControllerTracksChanges(t *testing.T) {
	r := &stubRenderer{outputs: []string{"a", "a", "b"}}
	rc, _ := newController(t, r)

	out, err := rc.Initial()
	require.NoError(t, err)
	assert.Equal(t, "a", string(out))

	out, changed, err := rc.Refresh()
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "a", string(out))

	out, changed, err = rc.Refresh()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "b", string(out))
	assert.Equal(t, "b", string(rc.Last()))
}

func TestRefreshControllerKeepsPreviousOutputOnError(t *testing.T) {
	r := &stubRenderer{
		outputs: []string{"good", "", "better"},
		errs:    []error{nil, errors.New("unreadable"), nil},
	}
	rc, _ := newController(t, r)

	_, err := rc.Initial()
	require.NoError(t, err)

	out, changed, err := rc.Refresh()
	assert.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, "good", string(out))
	assert.Equal(t, "good", string(rc.Last()))

	out, changed, err = rc.Refresh()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "better", string(out))
}

func TestIdentifyChangedCourses(t *testing.T) {
	r := &stubRenderer{outputs: []string{"x"}}
	rc, base := newController(t, r)

	dir := filepath.Join(base, "2-security")
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "0-deadlines.md")
	require.NoError(t, os.WriteFile(path, []byte("* Lab 1\n"), 0644))

	_, err := rc.Initial()
	require.NoError(t, err)
	assert.Empty(t, rc.identifyChangedCourses())

	require.NoError(t, os.WriteFile(path, []byte("* Lab 1 DONE\n"), 0644))
	assert.Equal(t, []model.CourseKey{"2-security"}, rc.identifyChangedCourses())

	require.NoError(t, os.Remove(path))
	assert.Equal(t, []model.CourseKey{"2-security"}, rc.identifyChangedCourses())
	assert.Empty(t, rc.identifyChangedCourses())
}
