package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tcztzy/wenyan/internal/infra/logger"
	"github.com/tcztzy/wenyan/internal/infra/workspacefinder"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "wenyan",
		Short:        "wenyan — classical Chinese programming language toolchain",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Bare `wenyan` drops into the REPL.
			return runRepl(cmd, "", false)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .wenyan/logs/wenyan.log")

	cmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		root, found := findLogRoot()
		if !found && !debug {
			// No workspace and nothing to report: stay quiet rather
			// than scattering .wenyan dirs around.
			return
		}
		cleanup, _ := logger.Setup(logger.Config{
			Root:  root,
			Debug: debug,
		})
		if cleanup != nil {
			cobra.OnFinalize(func() { _ = cleanup() })
		}
	}

	cmd.AddCommand(
		runCmd(),
		lexCmd(),
		numCmd(),
		checkCmd(),
		scriptsCmd(),
		replCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// findLogRoot prefers a workspace root for the log file and falls back
// to the working directory.
func findLogRoot() (string, bool) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	finder := workspacefinder.NewFinder()
	if root, err := finder.FindRoot(wd); err == nil && root != "" {
		return root, true
	}
	return wd, false
}
