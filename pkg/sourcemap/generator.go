package sourcemap

import (
	"fmt"
	"strings"
)

// Generator owns a generator's interned source/name tables, its
// per-source content map, and its mapping list. It validates mappings on
// the way in (unless skipValidation is set) and serializes everything
// into a v3 Envelope on the way out.
type Generator struct {
	file           *string
	sourceRoot     *string
	skipValidation bool

	sources        *internTable
	names          *internTable
	mappings       mappingList
	sourcesContent map[string]string
}

// NewGenerator creates an empty Generator. When skipValidation is true,
// AddMapping never rejects a mapping — the caller (typically the
// SourceNode walker) is trusted to emit only well-formed mappings.
func NewGenerator(file, sourceRoot *string, skipValidation bool) *Generator {
	return &Generator{
		file:           file,
		sourceRoot:     sourceRoot,
		skipValidation: skipValidation,
		sources:        newInternTable(),
		names:          newInternTable(),
		sourcesContent: make(map[string]string),
	}
}

// AddMapping validates m (unless validation is disabled), interns its
// Source and Name if present, and appends it to the mapping list. Adding
// a mapping never reorders the list; a rejected mapping leaves the
// generator's state unchanged.
func (g *Generator) AddMapping(m Mapping) error {
	if !g.skipValidation {
		if err := validateMapping(m); err != nil {
			return err
		}
	}

	if m.Source != nil {
		g.sources.intern(*m.Source)
	}
	if m.Name != nil {
		g.names.intern(*m.Name)
	}

	g.mappings.Add(m)
	return nil
}

// SetSourceContent records the original content of a source file. A
// source_root, if configured, is stripped from sourceFile first. If
// content is nil, any existing content for the source is removed;
// otherwise it is recorded only if no content has been set for that
// source yet — the first content seen for a source wins across repeated
// calls.
func (g *Generator) SetSourceContent(sourceFile string, content *string) {
	key := sourceFile
	if g.sourceRoot != nil {
		key = relativeSource(*g.sourceRoot, sourceFile)
	}

	if content == nil {
		delete(g.sourcesContent, key)
		return
	}
	if _, exists := g.sourcesContent[key]; !exists {
		g.sourcesContent[key] = *content
	}
}

// ToSourceMap produces the v3 envelope. sourcesContent entries are
// omitted (not nulled) for sources with no recorded content, so the
// returned slice may be shorter than sources and has no fixed positional
// correspondence to it — this is deliberate upstream behavior; see
// DESIGN.md.
func (g *Generator) ToSourceMap() *Envelope {
	sources := g.sources.keys()
	names := g.names.keys()

	sourcesContent := make([]string, 0, len(sources))
	for _, src := range sources {
		if content, ok := g.sourcesContent[src]; ok {
			sourcesContent = append(sourcesContent, content)
		}
	}

	return &Envelope{
		Version:        3,
		File:           g.file,
		SourceRoot:     g.sourceRoot,
		Sources:        sources,
		SourcesContent: sourcesContent,
		Names:          names,
		Mappings:       g.serializeMappings(),
	}
}

// validateMapping enforces: either (Original and Source both present,
// Original.Line > 0, Generated.Line > 0), or (Original, Source, and Name
// all absent, Generated.Line > 0). Any other shape is invalid.
func validateMapping(m Mapping) error {
	if m.Original != nil {
		if m.Source != nil && m.Original.Line > 0 && m.Generated.Line > 0 {
			return nil
		}
		return fmt.Errorf("sourcemap: mapping with an original position needs a source and positive lines: %w", ErrInvalidMapping)
	}
	if m.Source == nil && m.Name == nil && m.Generated.Line > 0 {
		return nil
	}
	return fmt.Errorf("sourcemap: mapping without an original position must have no source/name and a positive generated line: %w", ErrInvalidMapping)
}

// serializeMappings sorts the mapping list into v3 order and encodes it,
// tracking five running deltas: generated line/column, source index,
// original line/column, and name index. Four of the five reset at
// specific boundaries — see the loop below.
func (g *Generator) serializeMappings() string {
	g.mappings.Sort()

	var result strings.Builder
	prevGenLine, prevGenCol := 1, 0
	prevOrigLine, prevOrigCol := 0, 0
	prevSource, prevName := 0, 0

	var segment []byte
	for i, m := range g.mappings.items {
		if m.Generated.Line != prevGenLine {
			for n := m.Generated.Line - prevGenLine; n > 0; n-- {
				result.WriteByte(';')
			}
			prevGenCol = 0
			prevGenLine = m.Generated.Line
		} else if i > 0 {
			result.WriteByte(',')
		}

		segment = segment[:0]
		segment = encodeVLQ(segment, m.Generated.Column-prevGenCol)
		prevGenCol = m.Generated.Column

		if m.Source != nil {
			srcIdx := g.sources.indexOf(*m.Source)
			segment = encodeVLQ(segment, srcIdx-prevSource)
			prevSource = srcIdx

			// Original lines are 1-based in memory, 0-based on the wire.
			origLineWire := m.Original.Line - 1
			segment = encodeVLQ(segment, origLineWire-prevOrigLine)
			prevOrigLine = origLineWire

			segment = encodeVLQ(segment, m.Original.Column-prevOrigCol)
			prevOrigCol = m.Original.Column

			if m.Name != nil {
				nameIdx := g.names.indexOf(*m.Name)
				segment = encodeVLQ(segment, nameIdx-prevName)
				prevName = nameIdx
			}
		}

		result.Write(segment)
	}

	return result.String()
}
