package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sourcemapkit/gosourcemap/internal/inspect"
	"github.com/sourcemapkit/gosourcemap/internal/logx"
)

func newInspectCommand() *cobra.Command {
	var mapPath string
	var at []string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Cross-validate a source map against the upstream consumer",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logx.New(logLevel, os.Stderr)
			return runInspect(mapPath, at, logger)
		},
	}
	cmd.Flags().StringVarP(&mapPath, "map", "f", "", "path to the .map file (required)")
	cmd.Flags().StringArrayVar(&at, "at", nil, "generated line:column to resolve (repeatable)")
	cmd.MarkFlagRequired("map")
	return cmd
}

func runInspect(mapPath string, at []string, logger logx.Logger) error {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return fmt.Errorf("inspect: read %s: %w", mapPath, err)
	}

	positions, err := parsePositions(at)
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		positions = [][2]int{{1, 0}}
	}

	report, err := inspect.Run(data, positions)
	if err != nil {
		return err
	}

	for _, l := range report.Lookups {
		if !l.Found {
			fmt.Printf("%d:%d -> no mapping\n", l.GeneratedLine, l.GeneratedColumn)
			continue
		}
		name := l.Name
		if name == "" {
			name = "-"
		}
		fmt.Printf("%d:%d -> %s:%d:%d (%s)\n", l.GeneratedLine, l.GeneratedColumn, l.Source, l.OriginalLine, l.OriginalColumn, name)
	}
	logger.Infof("resolved %d position(s) against %s", len(report.Lookups), mapPath)
	return nil
}

func parsePositions(at []string) ([][2]int, error) {
	positions := make([][2]int, 0, len(at))
	for _, spec := range at {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("inspect: invalid --at %q, want line:column", spec)
		}
		line, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("inspect: invalid line in --at %q: %w", spec, err)
		}
		column, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("inspect: invalid column in --at %q: %w", spec, err)
		}
		positions = append(positions, [2]int{line, column})
	}
	return positions, nil
}
