package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/penwyp/go-conky-deadlines/internal/analyzer"
	"github.com/penwyp/go-conky-deadlines/internal/config"
	"github.com/penwyp/go-conky-deadlines/internal/core/constants"
	"github.com/penwyp/go-conky-deadlines/internal/core/model"
	"github.com/penwyp/go-conky-deadlines/internal/util"
	"github.com/spf13/cobra"
)

const (
	defaultLogFile = "~/.go-conky-deadlines/logs/app.log"
	defaultDir     = "."
)

// rootOptions holds the flags shared by the report and watch commands
type rootOptions struct {
	// Logging related
	debug     bool
	logFile   string
	logFormat string

	// Input
	dir        string
	configFile string

	// Report
	outputFormat string
	includeDone  bool
	days         int
	timezone     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "go-conky-deadlines [max-len] [flags]",
		Short: "Deadline report for a conky desktop widget",
		Long: `go-conky-deadlines reads <course>/0-deadlines.md for every configured course,
keeps the items that are not done and due within the look-ahead window, and
prints them grouped by date as conky markup.

Examples:
  go-conky-deadlines                          # Report with 30 character items
  go-conky-deadlines 40                       # Truncate item text at 40 characters
  go-conky-deadlines --dir ~/uni              # Read course folders from ~/uni
  go-conky-deadlines -o plain --days 14       # Plain text, two weeks ahead
  go-conky-deadlines --config courses.toml    # Use a custom course table`,
		Args:          maxLenArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, opts)
		},
	}

	// Input data configuration
	cmd.PersistentFlags().StringVar(&opts.dir, "dir", defaultDir,
		"Directory holding the course folders")
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"Course table TOML file (default: built-in table)")

	// Output configuration
	cmd.PersistentFlags().StringVarP(&opts.outputFormat, "output", "o", model.OutputConky,
		"Output format (conky, plain, json, csv)")
	cmd.PersistentFlags().BoolVar(&opts.includeDone, "include-done", false,
		"Keep items marked DONE")
	cmd.PersistentFlags().IntVar(&opts.days, "days", constants.LookAheadDays,
		"Look-ahead window in days")
	cmd.PersistentFlags().StringVar(&opts.timezone, "timezone", "Local",
		"Timezone used to decide today (e.g., Europe/Copenhagen, UTC)")

	// System and debugging
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"Enable debug mode")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", defaultLogFile,
		"Log file path")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", string(util.FormatText),
		"Log format (text, json)")

	cmd.AddCommand(newWatchCmd(opts))
	return cmd
}

// maxLenArgs accepts at most one non-negative integer
func maxLenArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return err
	}
	_, err := parseMaxLen(args)
	return err
}

func parseMaxLen(args []string) (int, error) {
	if len(args) == 0 {
		return constants.DefaultMaxTextLen, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid max length '%s': must be a non-negative integer", args[0])
	}
	return n, nil
}

// setup initializes logging and time, then builds the analyzer config
func setup(opts *rootOptions, args []string) (*analyzer.Config, error) {
	logLevel := "info"
	if opts.debug {
		logLevel = "debug"
	}

	logFormat, err := util.ParseLogFormat(opts.logFormat)
	if err != nil {
		return nil, err
	}

	// Initialize logging
	logFile := expandPath(opts.logFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(util.LoggerConfig{
		Level:   logLevel,
		File:    logFile,
		Format:  logFormat,
		Console: opts.debug,
	})

	if err := util.InitializeTimeProvider(opts.timezone); err != nil {
		return nil, err
	}

	maxLen, err := parseMaxLen(args)
	if err != nil {
		return nil, err
	}
	if opts.days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", opts.days)
	}

	configPath := opts.configFile
	if configPath != "" {
		configPath = expandPath(configPath)
	}
	courses, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	return &analyzer.Config{
		BaseDir:      expandPath(opts.dir),
		Courses:      courses,
		OutputFormat: opts.outputFormat,
		MaxLen:       maxLen,
		IncludeDone:  opts.includeDone,
		Days:         opts.days,
	}, nil
}

func runReport(cmd *cobra.Command, args []string, opts *rootOptions) error {
	cfg, err := setup(opts, args)
	if err != nil {
		return err
	}

	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}
	return a.Run(cmd.OutOrStdout())
}

// Execute runs the root command with the process arguments
func Execute() error {
	return newRootCmd().Execute()
}

// exitCoder is implemented by errors that carry a process exit status
type exitCoder interface {
	ExitCode() int
}

// ExitCode maps err to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// ReportError prints err and returns the exit status. File errors are part
// of the widget output and go to stdout; everything else goes to stderr.
func ReportError(stdout, stderr io.Writer, err error) int {
	code := ExitCode(err)
	if code != 1 {
		fmt.Fprintln(stdout, err.Error())
	} else {
		fmt.Fprintln(stderr, "Error: "+err.Error())
	}
	return code
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
