package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, LevelInfo, ParseLogLevel("INFO"))
	assert.Equal(t, LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, LevelError, ParseLogLevel("error"))
	assert.Equal(t, LevelInfo, ParseLogLevel("bogus"))
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "info"})
	logger.AddOutput(NewConsoleOutput(&buf, FormatText))

	logger.Debug("hidden")
	logger.Info("shown", Field{Key: "course", Value: "2-security"})
	logger.Warnf("items: %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] shown course=2-security")
	assert.Contains(t, out, "[WARN] items: 3")
}

func TestLoggerWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "debug"})
	logger.AddOutput(NewConsoleOutput(&buf, FormatText))

	child := logger.With(Field{Key: "run", Value: 1})
	child.Debug("parsing", Field{Key: "line", Value: 4})

	assert.Contains(t, buf.String(), "[DEBUG] parsing line=4 run=1")
}

func TestConsoleOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "debug"})
	logger.AddOutput(NewConsoleOutput(&buf, FormatJSON))

	logger.Error("boom", Field{Key: "path", Value: "x.md"})

	var entry LogEntry
	require.NoError(t, sonic.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "boom", entry.Message)
	assert.Equal(t, "x.md", entry.Fields["path"])
}

func TestFileOutputCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "app.log")
	logger := NewLogger(LoggerConfig{Level: "info", File: path})

	logger.Info("written to file")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] written to file")
}

func TestGlobalHelpersAreSafeBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		LogDebug("x")
		LogInfof("%d", 1)
		LogWarn("x")
		LogErrorf("%s", "x")
		WithFields(Field{Key: "k", Value: 1}).Info("x")
	})
}

func TestParseLogFormat(t *testing.T) {
	format, err := ParseLogFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	format, err = ParseLogFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	_, err = ParseLogFormat("xml")
	assert.Error(t, err)
}

func TestFileOutputJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := NewLogger(LoggerConfig{Level: "debug", File: path, Format: FormatJSON})

	logger.With(Field{Key: "courses", Value: 4}).Debug("Render stats")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry LogEntry
	require.NoError(t, sonic.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "DEBUG", entry.Level)
	assert.Equal(t, "Render stats", entry.Message)
	assert.EqualValues(t, 4, entry.Fields["courses"])
}
