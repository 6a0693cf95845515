// Package manifest parses the TOML build description consumed by
// srcmapctl's build and watch subcommands.
package manifest

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Chunk is one piece of generated text in a build manifest. A Chunk with
// no Source is emitted as plain, unmapped text; one with a Source
// contributes a mapping back to (Line, Column) in that source file.
type Chunk struct {
	Source  string `toml:"source"`
	Line    int    `toml:"line"`
	Column  int    `toml:"column"`
	Text    string `toml:"text"`
	Name    string `toml:"name"`
	Content string `toml:"content"`
}

// Manifest describes a single generated-file build: where the output and
// its source map go, the source root recorded in the map, and the
// ordered sequence of chunks that make up the generated text.
type Manifest struct {
	Output     string  `toml:"output"`
	SourceRoot string  `toml:"source_root"`
	Chunks     []Chunk `toml:"chunk"`
}

// Load parses and validates a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("manifest: decode %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the manifest is well-formed enough to build:
// an output path is set, at least one chunk exists, and any chunk that
// names a source has a positive line number.
func (m *Manifest) Validate() error {
	if m.Output == "" {
		return fmt.Errorf("manifest: output is required")
	}
	if len(m.Chunks) == 0 {
		return fmt.Errorf("manifest: at least one chunk is required")
	}
	for i, c := range m.Chunks {
		if c.Source != "" && c.Line <= 0 {
			return fmt.Errorf("manifest: chunk %d references source %q with non-positive line %d", i, c.Source, c.Line)
		}
	}
	return nil
}
