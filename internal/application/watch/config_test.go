package watch

import (
	"testing"
	"time"

	"github.com/penwyp/go-conky-deadlines/internal/data/watcher"
	"github.com/stretchr/testify/assert"
)

func TestWatchConfigValidateDefaults(t *testing.T) {
	cfg := &WatchConfig{}
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, watcher.DefaultDebounce, cfg.Debounce)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
}

func TestWatchConfigValidateRejectsNegativeInterval(t *testing.T) {
	cfg := &WatchConfig{RefreshInterval: -time.Second}
	assert.Error(t, cfg.Validate())
}

func TestWatchConfigEnablesParseCache(t *testing.T) {
	cfg := &WatchConfig{}
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.Report.CacheParsed)
}
