package sourcemap

import (
	"encoding/json"
	"fmt"
)

// FromSourceMap parses an existing v3 source map document and replays it
// into a fresh Generator with validation disabled.
//
// Indices in the envelope's sources/names arrays may contain duplicates.
// When checkDup is true, duplicates are filtered out independently per
// table (first occurrence wins) before being interned; when false,
// duplicates are preserved, which would make later mappings reference
// whichever occurrence the generator's intern table happened to assign
// that index-adjacent slot to. sourcesContent is attached positionally
// against the *original*, unfiltered sources array — an entry is recorded
// for every source, even one later dropped as a duplicate.
//
// The wire format's original lines are 0-based and are NOT shifted back
// to the in-memory 1-based convention: round-tripping through
// FromSourceMap and then Generator.ToSourceMap shifts original lines down
// by one. This mirrors the reference implementation exactly rather than
// silently correcting it; see DESIGN.md for why this was kept.
func FromSourceMap(data []byte, checkDup bool) (*Generator, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("sourcemap: decode envelope: %w: %w", ErrMalformedInput, err)
	}

	gen := NewGenerator(env.File, env.SourceRoot, true)

	sources := make([]string, 0, len(env.Sources))
	seenSources := make(map[string]bool, len(env.Sources))
	for i, s := range env.Sources {
		var content *string
		if i < len(env.SourcesContent) {
			c := env.SourcesContent[i]
			content = &c
		}
		gen.SetSourceContent(s, content)

		if checkDup {
			if seenSources[s] {
				continue
			}
			seenSources[s] = true
		}
		sources = append(sources, s)
	}

	names := make([]string, 0, len(env.Names))
	seenNames := make(map[string]bool, len(env.Names))
	for _, n := range env.Names {
		if checkDup {
			if seenNames[n] {
				continue
			}
			seenNames[n] = true
		}
		names = append(names, n)
	}

	segments, err := decodeMappings(env.Mappings)
	if err != nil {
		return nil, err
	}

	for _, seg := range segments {
		m := Mapping{Generated: Position{Line: seg.GeneratedLine, Column: seg.GeneratedColumn}}
		if seg.HasSource {
			if seg.SourceIndex < 0 || seg.SourceIndex >= len(sources) {
				return nil, fmt.Errorf("sourcemap: mapping references source index %d out of range: %w", seg.SourceIndex, ErrMalformedInput)
			}
			source := sources[seg.SourceIndex]
			original := Position{Line: seg.OriginalLine, Column: seg.OriginalColumn}
			m.Source = &source
			m.Original = &original

			if seg.HasName {
				if seg.NameIndex < 0 || seg.NameIndex >= len(names) {
					return nil, fmt.Errorf("sourcemap: mapping references name index %d out of range: %w", seg.NameIndex, ErrMalformedInput)
				}
				name := names[seg.NameIndex]
				m.Name = &name
			}
		}
		_ = gen.AddMapping(m)
	}

	return gen, nil
}
