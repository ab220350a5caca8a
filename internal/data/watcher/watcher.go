package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-conky-deadlines/internal/core/model"
	"github.com/penwyp/go-conky-deadlines/internal/util"
)

// DefaultDebounce is the quiet period used to coalesce editor save bursts.
const DefaultDebounce = 200 * time.Millisecond

// Event is a change to a watched deadline file.
type Event struct {
	Path string
	Op   string
}

// FileWatcher watches course directories for changes to their deadline file.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	fileName string
	events   chan Event
	done     chan struct{}
}

// NewFileWatcher watches every directory in dirs. Directories that do not
// exist are skipped with a warning so a course can be created later.
func NewFileWatcher(dirs []string) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  w,
		fileName: model.DeadlinesFileName,
		events:   make(chan Event, 100),
		done:     make(chan struct{}),
	}

	watched := 0
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			util.LogWarnf("Skipping watch on %s: not a directory", dir)
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched++
	}
	util.LogDebugf("Watching %d course directories", watched)

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.relevant(event) {
				continue
			}
			select {
			case fw.events <- Event{Path: event.Name, Op: event.Op.String()}:
			case <-fw.done:
				return
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("File monitoring error: " + err.Error())

		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != fw.fileName {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// Events returns the filtered event stream. It is closed after Close.
func (fw *FileWatcher) Events() <-chan Event {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	select {
	case <-fw.done:
		return nil
	default:
	}
	close(fw.done)
	return fw.watcher.Close()
}

// Debounce forwards one signal per burst of events: a signal is sent once
// no new event has arrived for delay. The returned channel closes when ctx
// is done or events is closed.
func Debounce(ctx context.Context, events <-chan Event, delay time.Duration) <-chan struct{} {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)
		var timer *time.Timer
		var fire <-chan time.Time
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				util.LogDebugf("Change detected: %s (%s)", event.Path, event.Op)
				if timer == nil {
					timer = time.NewTimer(delay)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(delay)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out
}
