package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sourcemapkit/gosourcemap/internal/build"
	"github.com/sourcemapkit/gosourcemap/internal/logx"
	"github.com/sourcemapkit/gosourcemap/internal/manifest"
)

var summaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

func newBuildCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build generated output and its source map from a manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logx.New(logLevel, os.Stderr)
			return runBuild(manifestPath, logger)
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "srcmap.toml", "path to the build manifest")
	return cmd
}

func runBuild(manifestPath string, logger logx.Logger) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	result, summary := build.FromManifest(m)

	if err := os.WriteFile(m.Output, []byte(result.Source), 0o644); err != nil {
		return fmt.Errorf("build: write %s: %w", m.Output, err)
	}

	mapPath := m.Output + ".map"
	mapData, err := marshalMap(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(mapPath, mapData, 0o644); err != nil {
		return fmt.Errorf("build: write %s: %w", mapPath, err)
	}

	logger.Infof("wrote %s and %s", m.Output, mapPath)
	fmt.Println(summaryStyle.Render(fmt.Sprintf(
		"built %s: %d mappings, %d sources, %d names",
		filepath.Base(m.Output), summary.MappingCount, summary.SourceCount, summary.NameCount,
	)))
	return nil
}
