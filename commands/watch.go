package commands

import (
	"os"
	"os/signal"
	"time"

	"github.com/penwyp/go-conky-deadlines/internal/application/watch"
	"github.com/penwyp/go-conky-deadlines/internal/data/watcher"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	outFile     string
	debounce    time.Duration
	refreshRate time.Duration
}

func newWatchCmd(root *rootOptions) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch [max-len]",
		Short: "Re-render the report whenever a deadline file changes",
		Long: `Renders the report once, then watches every course folder and renders again
when a 0-deadlines.md file is written, created, renamed or removed. The
report is also refreshed periodically so overdue dates update after midnight.

With --out the report is written atomically to a file, ready for conky's
${cat} or ${execi}. Without it the report is printed to stdout.`,
		Args:          maxLenArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.outFile, "out", "",
		"Write the report to this file instead of stdout")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", watcher.DefaultDebounce,
		"Quiet period before re-rendering after a change")
	cmd.Flags().DurationVar(&opts.refreshRate, "refresh-rate", time.Minute,
		"Periodic refresh interval")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, root *rootOptions, opts *watchOptions) error {
	cfg, err := setup(root, args)
	if err != nil {
		return err
	}

	outFile := opts.outFile
	if outFile != "" {
		outFile = expandPath(outFile)
	}

	o, err := watch.NewOrchestrator(&watch.WatchConfig{
		Report:          *cfg,
		OutFile:         outFile,
		Debounce:        opts.debounce,
		RefreshInterval: opts.refreshRate,
	}, watch.NewSink(outFile, cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return o.Run(ctx)
}
