package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/penwyp/go-conky-deadlines/internal/data/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected func(string) string
	}{
		{
			name:  "home directory expansion",
			input: "~/test/path",
			expected: func(home string) string {
				return filepath.Join(home, "test/path")
			},
		},
		{
			name:  "absolute path unchanged",
			input: "/absolute/path",
			expected: func(home string) string {
				return "/absolute/path"
			},
		},
		{
			name:  "relative path converted to absolute",
			input: "relative/path",
			expected: func(home string) string {
				abs, _ := filepath.Abs("relative/path")
				return abs
			},
		},
	}

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			expected := tt.expected(home)
			assert.Equal(t, expected, result)
		})
	}
}

func TestEnsureDir(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test", "nested", "dir")

	err := ensureDir(testDir)
	assert.NoError(t, err)

	// Verify directory was created
	info, err := os.Stat(testDir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	// Test idempotency
	err = ensureDir(testDir)
	assert.NoError(t, err)
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()

	tests := []struct {
		flag         string
		defaultValue string
		shorthand    string
	}{
		{"dir", ".", ""},
		{"config", "", ""},
		{"output", "conky", "o"},
		{"include-done", "false", ""},
		{"days", "7", ""},
		{"timezone", "Local", ""},
		{"debug", "false", ""},
		{"log-file", defaultLogFile, ""},
		{"log-format", "text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flag := cmd.PersistentFlags().Lookup(tt.flag)
			require.NotNil(t, flag)
			assert.Equal(t, tt.defaultValue, flag.DefValue)
			if tt.shorthand != "" {
				assert.Equal(t, tt.shorthand, flag.Shorthand)
			}
		})
	}
}

func TestWatchCommandFlags(t *testing.T) {
	cmd := newRootCmd()
	watchCmd, _, err := cmd.Find([]string{"watch"})
	require.NoError(t, err)
	assert.Equal(t, "watch", watchCmd.Name())

	for _, name := range []string{"out", "debounce", "refresh-rate"} {
		assert.NotNil(t, watchCmd.Flags().Lookup(name), name)
	}
	assert.NotNil(t, watchCmd.InheritedFlags().Lookup("dir"), "shared flags are inherited")
}

func TestParseMaxLen(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"default", nil, 30, false},
		{"explicit", []string{"40"}, 40, false},
		{"zero", []string{"0"}, 0, false},
		{"negative", []string{"-1"}, 0, true},
		{"not a number", []string{"abc"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMaxLen(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExitCode(t *testing.T) {
	notFound := &scanner.FileError{Kind: scanner.ErrFileNotFound, Path: "a/0-deadlines.md"}
	unreadable := &scanner.FileError{Kind: scanner.ErrFileUnreadable, Path: "b/0-deadlines.md"}

	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(notFound))
	assert.Equal(t, 3, ExitCode(unreadable))
	assert.Equal(t, 3, ExitCode(fmt.Errorf("wrapped: %w", unreadable)))
	assert.Equal(t, 1, ExitCode(errors.New("usage")))
}

func TestReportError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := ReportError(&stdout, &stderr, &scanner.FileError{Kind: scanner.ErrFileNotFound, Path: "x/0-deadlines.md"})
	assert.Equal(t, 2, code)
	assert.Equal(t, "'x/0-deadlines.md' is not a file.\n", stdout.String())
	assert.Empty(t, stderr.String())

	stdout.Reset()
	code = ReportError(&stdout, &stderr, errors.New("bad flag"))
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "Error: bad flag\n", stderr.String())
}
