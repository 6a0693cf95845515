// Command srcmapctl builds, watches, and inspects Source Map v3 output
// described by a TOML manifest.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sourcemapkit/gosourcemap/internal/logx"
)

var logLevel string

func main() {
	root := &cobra.Command{
		Use:           "srcmapctl",
		Short:         "Build and inspect Source Map v3 output",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, or error")

	root.AddCommand(newBuildCommand())
	root.AddCommand(newWatchCommand())
	root.AddCommand(newInspectCommand())

	if err := root.Execute(); err != nil {
		logx.New(logLevel, os.Stderr).Errorf("%v", err)
		os.Exit(1)
	}
}
