package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wanderfs/wander/pkg/profiling"
	"github.com/wanderfs/wander/pkg/wander"
)

var osExit = os.Exit
var runNavigator = wander.Run

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts wander.Options
	var logFile, cpuProfile, memProfile string

	cmd := &cobra.Command{
		Use:           "wander",
		Short:         "Terminal file navigator with a preview panel",
		Long:          "wander browses directories in a two-panel terminal UI and writes\nthe directory you quit in to --cwd-file, so a shell wrapper can cd there.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, closeLog, err := setupLogger(logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			if cpuProfile != "" {
				stop := profiling.StartCPU(cpuProfile, log)
				defer stop()
			}
			if memProfile != "" {
				defer func() {
					_ = profiling.WriteHeap(memProfile, log)
				}()
			}

			opts.Log = log
			return runNavigator(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.CwdFile, "cwd-file", "", "file that receives the final working directory on exit")
	flags.StringVar(&opts.OpenerConfigPath, "config", wander.DefaultOpenerConfigPath, "opener.toml with per-extension open commands and colors")
	flags.BoolVar(&opts.ShowHidden, "show-hidden", false, "start with hidden entries visible")
	flags.BoolVar(&opts.Watch, "watch", false, "auto-refresh the listing when the directory changes on disk")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file (logging is off otherwise)")
	flags.StringVar(&cpuProfile, "cpuprofile", "", "write a cpu profile to this file")
	flags.StringVar(&memProfile, "memprofile", "", "write a heap profile to this file on exit")
	_ = cmd.MarkFlagRequired("cwd-file")

	return cmd
}

// setupLogger routes logs to --log-file; a TUI owns the terminal, so
// without one logging is discarded.
func setupLogger(path string) (log *logrus.Logger, closeLog func(), err error) {
	log = logrus.New()
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(file)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { _ = file.Close() }, nil
}
