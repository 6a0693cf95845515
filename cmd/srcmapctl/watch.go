package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sourcemapkit/gosourcemap/internal/build"
	"github.com/sourcemapkit/gosourcemap/internal/logx"
	"github.com/sourcemapkit/gosourcemap/internal/manifest"
	"github.com/sourcemapkit/gosourcemap/internal/watch"
)

func newWatchCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild whenever the manifest directory changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logx.New(logLevel, os.Stderr)
			return runWatch(manifestPath, logger)
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "srcmap.toml", "path to the build manifest")
	return cmd
}

func runWatch(manifestPath string, logger logx.Logger) error {
	root := filepath.Dir(manifestPath)
	if root == "" {
		root = "."
	}

	fp := &watch.Fingerprinter{}

	rebuild := func() {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			logger.Errorf("rebuild: %v", err)
			return
		}
		result, summary := build.FromManifest(m)
		mapData, err := marshalMap(result)
		if err != nil {
			logger.Errorf("rebuild: %v", err)
			return
		}
		if !fp.Changed(append([]byte(result.Source), mapData...)) {
			logger.Debugf("rebuild produced identical output, skipping write")
			return
		}
		if err := os.WriteFile(m.Output, []byte(result.Source), 0o644); err != nil {
			logger.Errorf("rebuild: write %s: %v", m.Output, err)
			return
		}
		if err := os.WriteFile(m.Output+".map", mapData, 0o644); err != nil {
			logger.Errorf("rebuild: write %s.map: %v", m.Output, err)
			return
		}
		logger.Infof("rebuilt %s (%d mappings, %d sources, %d names)", m.Output, summary.MappingCount, summary.SourceCount, summary.NameCount)
	}

	w, err := watch.New(root, 500*time.Millisecond, logger, rebuild)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	rebuild()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Infof("stopping")
	return nil
}
