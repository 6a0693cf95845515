// Package build turns a manifest into generated text and its source map.
package build

import (
	"path/filepath"

	"github.com/sourcemapkit/gosourcemap/internal/manifest"
	"github.com/sourcemapkit/gosourcemap/pkg/sourcemap"
)

// Summary reports what a build produced, for the CLI's human-readable
// output.
type Summary struct {
	MappingCount int
	SourceCount  int
	NameCount    int
}

// FromManifest assembles a SourceNode tree from m's chunks and walks it
// into generated text plus a source map. Chunks with no Source are
// emitted as unmapped text; the first Content seen for a given Source
// wins, matching Generator.SetSourceContent.
func FromManifest(m *manifest.Manifest) (*sourcemap.Result, Summary) {
	root := sourcemap.NewSourceNode(nil, nil, nil)
	contentSet := make(map[string]bool, len(m.Chunks))

	for _, c := range m.Chunks {
		if c.Source == "" {
			root.Add(c.Text)
			continue
		}

		source := c.Source
		var name *string
		if c.Name != "" {
			n := c.Name
			name = &n
		}

		node := sourcemap.NewSourceNode(&sourcemap.Position{Line: c.Line, Column: c.Column}, &source, name, c.Text)
		if c.Content != "" && !contentSet[c.Source] {
			node.SetSourceContent(c.Source, c.Content)
			contentSet[c.Source] = true
		}
		root.Add(node)
	}

	var sourceRoot *string
	if m.SourceRoot != "" {
		sourceRoot = &m.SourceRoot
	}
	outFile := filepath.Base(m.Output)

	result := root.ToStringWithSourceMap(&outFile, sourceRoot)
	summary := Summary{
		MappingCount: countMappingSegments(result.Map.Mappings),
		SourceCount:  len(result.Map.Sources),
		NameCount:    len(result.Map.Names),
	}
	return result, summary
}

// countMappingSegments counts comma/semicolon-delimited segments in a
// mappings string without fully decoding it, for the build summary line.
func countMappingSegments(mappings string) int {
	if mappings == "" {
		return 0
	}
	count := 0
	inSegment := false
	for _, r := range mappings {
		if r == ',' || r == ';' {
			inSegment = false
			continue
		}
		if !inSegment {
			count++
			inSegment = true
		}
	}
	return count
}
