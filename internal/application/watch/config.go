package watch

import (
	"fmt"
	"time"

	"github.com/penwyp/go-conky-deadlines/internal/analyzer"
	"github.com/penwyp/go-conky-deadlines/internal/data/watcher"
)

// WatchConfig contains configuration for the watch command
type WatchConfig struct {
	// Report settings, shared with the one-shot command
	Report analyzer.Config

	// Output file; empty means stdout
	OutFile string

	// Refresh settings
	Debounce        time.Duration
	RefreshInterval time.Duration
}

// Validate fills defaults and checks the configuration
func (c *WatchConfig) Validate() error {
	c.Report.CacheParsed = true
	if c.Debounce <= 0 {
		c.Debounce = watcher.DefaultDebounce
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh interval must not be negative: %v", c.RefreshInterval)
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = time.Minute
	}
	return nil
}
