package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/penwyp/go-conky-deadlines/internal/analyzer"
	"github.com/penwyp/go-conky-deadlines/internal/data/watcher"
	"github.com/penwyp/go-conky-deadlines/internal/util"
)

// Orchestrator coordinates rendering, file monitoring and output for the
// watch command
type Orchestrator struct {
	config      *WatchConfig
	analyzer    *analyzer.Analyzer
	refreshCtrl *RefreshController
	sink        Sink
	watcher     *watcher.FileWatcher
}

// NewOrchestrator creates a new Orchestrator writing every report to sink
func NewOrchestrator(config *WatchConfig, sink Sink) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	a, err := analyzer.New(&config.Report)
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		config:      config,
		analyzer:    a,
		refreshCtrl: NewRefreshController(a, a.Locator(), a.Courses()),
		sink:        sink,
	}, nil
}

// Run renders once, then re-renders on file changes and on every refresh
// interval until ctx is done. Only the initial render is fatal.
func (o *Orchestrator) Run(ctx context.Context) error {
	target := o.config.OutFile
	if target == "" {
		target = "stdout"
	}
	util.LogInfof("Starting deadline watch, writing to %s", target)
	defer o.Close()

	out, err := o.refreshCtrl.Initial()
	if err != nil {
		return err
	}
	if err := o.sink.Write(out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	dirs := make([]string, 0, len(o.analyzer.Courses()))
	for _, course := range o.analyzer.Courses() {
		dirs = append(dirs, o.analyzer.Locator().Dir(course))
	}
	fw, err := watcher.NewFileWatcher(dirs)
	if err != nil {
		return fmt.Errorf("failed to start file monitoring: %w", err)
	}
	o.watcher = fw

	changes := watcher.Debounce(ctx, fw.Events(), o.config.Debounce)
	ticker := time.NewTicker(o.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Deadline watch stopped")
			return nil
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			o.refresh("file change")
		case <-ticker.C:
			o.refresh("interval")
		}
	}
}

func (o *Orchestrator) refresh(reason string) {
	out, changed, err := o.refreshCtrl.Refresh()
	if err != nil {
		util.LogWarnf("Refresh after %s failed, keeping previous report: %v", reason, err)
		return
	}
	if !changed {
		util.LogDebugf("Refresh after %s: report unchanged", reason)
		return
	}
	if err := o.sink.Write(out); err != nil {
		util.LogErrorf("Failed to write report: %v", err)
	}
}

// Close stops file monitoring
func (o *Orchestrator) Close() error {
	if o.watcher == nil {
		return nil
	}
	err := o.watcher.Close()
	o.watcher = nil
	return err
}
