package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/penwyp/go-conky-deadlines/internal/core/model"
	"github.com/penwyp/go-conky-deadlines/internal/util"
)

var (
	// ErrFileNotFound means the course's deadline path is not a regular file
	ErrFileNotFound = errors.New("deadline file not found")
	// ErrFileUnreadable means the file exists but could not be opened
	ErrFileUnreadable = errors.New("deadline file unreadable")
)

// Exit statuses for fatal file errors
const (
	ExitFileNotFound   = 2
	ExitFileUnreadable = 3
)

// FileError reports a fatal problem with a course's deadline file
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if errors.Is(e.Kind, ErrFileUnreadable) {
		return fmt.Sprintf("Could not read file '%s'", e.Path)
	}
	return fmt.Sprintf("'%s' is not a file.", e.Path)
}

// Is lets errors.Is match the sentinel kinds
func (e *FileError) Is(target error) bool {
	return target == e.Kind
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for this error
func (e *FileError) ExitCode() int {
	if errors.Is(e.Kind, ErrFileUnreadable) {
		return ExitFileUnreadable
	}
	return ExitFileNotFound
}

// CourseLocator resolves course folders to their deadline files
type CourseLocator struct {
	baseDir  string
	fileName string
}

// NewCourseLocator creates a locator rooted at baseDir
func NewCourseLocator(baseDir string) *CourseLocator {
	return &CourseLocator{
		baseDir:  baseDir,
		fileName: model.DeadlinesFileName,
	}
}

// BaseDir returns the directory that holds the course folders
func (l *CourseLocator) BaseDir() string {
	return l.baseDir
}

// Path returns <baseDir>/<course>/0-deadlines.md without checking it
func (l *CourseLocator) Path(course model.CourseKey) string {
	return filepath.Join(l.baseDir, string(course), l.fileName)
}

// Dir returns the course folder
func (l *CourseLocator) Dir(course model.CourseKey) string {
	return filepath.Join(l.baseDir, string(course))
}

// Locate returns the deadline file path if it is a regular file
func (l *CourseLocator) Locate(course model.CourseKey) (string, error) {
	path := l.Path(course)

	info, err := os.Stat(path)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Deadline file missing: %s - %v", path, err))
		return "", &FileError{Kind: ErrFileNotFound, Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		util.LogDebug(fmt.Sprintf("Deadline path is not a regular file: %s (%s)", path, info.Mode()))
		return "", &FileError{Kind: ErrFileNotFound, Path: path}
	}

	return path, nil
}

// Open locates and opens the course's deadline file. The caller closes it.
func (l *CourseLocator) Open(course model.CourseKey) (*os.File, error) {
	path, err := l.Locate(course)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Failed to open file: %s - %v", path, err))
		return nil, &FileError{Kind: ErrFileUnreadable, Path: path, Err: err}
	}

	util.LogDebug(fmt.Sprintf("Opened deadline file: %s", path))
	return file, nil
}
