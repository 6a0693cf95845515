package sourcemap

import "fmt"

// decodedSegment is one parsed entry of a mappings string, in the
// coordinate system the wire format uses (0-based original line).
type decodedSegment struct {
	GeneratedLine   int
	GeneratedColumn int

	HasSource      bool
	SourceIndex    int
	OriginalLine   int
	OriginalColumn int

	HasName   bool
	NameIndex int
}

// decodeMappings parses a v3 "mappings" string into segments in
// by-generated-location order, which is simply document order: lines
// separated by ';', segments within a line separated by ','. Running
// state (source index, original line/column, name index) accumulates
// across the whole string; only the generated column resets at each line
// boundary.
func decodeMappings(s string) ([]decodedSegment, error) {
	data := []byte(s)
	var segments []decodedSegment

	genLine := 1
	genCol := 0
	source := 0
	origLine := 0
	origCol := 0
	name := 0

	i := 0
	for i < len(data) {
		switch data[i] {
		case ';':
			genLine++
			genCol = 0
			i++
			continue
		case ',':
			i++
			continue
		}

		colDelta, next, ok := decodeVLQ(data, i)
		if !ok {
			return nil, fmt.Errorf("sourcemap: decode mappings at byte %d: %w", i, ErrMalformedInput)
		}
		i = next
		genCol += colDelta

		seg := decodedSegment{GeneratedLine: genLine, GeneratedColumn: genCol}

		if i < len(data) && data[i] != ',' && data[i] != ';' {
			var srcDelta, lineDelta, colDelta2 int
			if srcDelta, next, ok = decodeVLQ(data, i); !ok {
				return nil, fmt.Errorf("sourcemap: decode mappings at byte %d: %w", i, ErrMalformedInput)
			}
			i = next
			source += srcDelta

			if lineDelta, next, ok = decodeVLQ(data, i); !ok {
				return nil, fmt.Errorf("sourcemap: decode mappings at byte %d: %w", i, ErrMalformedInput)
			}
			i = next
			origLine += lineDelta

			if colDelta2, next, ok = decodeVLQ(data, i); !ok {
				return nil, fmt.Errorf("sourcemap: decode mappings at byte %d: %w", i, ErrMalformedInput)
			}
			i = next
			origCol += colDelta2

			seg.HasSource = true
			seg.SourceIndex = source
			seg.OriginalLine = origLine
			seg.OriginalColumn = origCol

			if i < len(data) && data[i] != ',' && data[i] != ';' {
				var nameDelta int
				if nameDelta, next, ok = decodeVLQ(data, i); !ok {
					return nil, fmt.Errorf("sourcemap: decode mappings at byte %d: %w", i, ErrMalformedInput)
				}
				i = next
				name += nameDelta
				seg.HasName = true
				seg.NameIndex = name
			}
		}

		segments = append(segments, seg)
	}

	return segments, nil
}
