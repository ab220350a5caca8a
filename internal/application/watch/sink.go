package watch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/penwyp/go-conky-deadlines/internal/util"
)

// FileSink replaces a file atomically so readers never see a partial report
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Write(report []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(report); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// ConsoleSink writes reports to a stream, clearing the screen first when
// the stream is a terminal
type ConsoleSink struct {
	w     io.Writer
	clear bool
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w, clear: util.IsTerminal(w)}
}

func (s *ConsoleSink) Write(report []byte) error {
	if s.clear {
		if _, err := io.WriteString(s.w, util.ClearScreen+util.MoveCursorHome); err != nil {
			return err
		}
	}
	_, err := s.w.Write(report)
	return err
}

// NewSink picks a FileSink when path is set, otherwise a ConsoleSink on stdout
func NewSink(path string, stdout io.Writer) Sink {
	if path != "" {
		return NewFileSink(path)
	}
	return NewConsoleSink(stdout)
}
