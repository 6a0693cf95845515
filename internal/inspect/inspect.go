// Package inspect cross-validates a generated source map using the
// independent go-sourcemap/sourcemap consumer, rather than our own
// reader adapter, so a bug shared between our writer and reader would
// not go unnoticed.
package inspect

import (
	"fmt"

	upstream "github.com/go-sourcemap/sourcemap"
)

// Lookup is one resolved generated->original position.
type Lookup struct {
	GeneratedLine   int
	GeneratedColumn int
	Source          string
	Name            string
	OriginalLine    int
	OriginalColumn  int
	Found           bool
}

// Report cross-validates mapData by parsing it with the upstream
// consumer and sampling a lookup at each requested generated position.
type Report struct {
	Lookups []Lookup
}

// Run parses mapData with the upstream consumer and resolves each
// (line, column) position. Positions follow this module's in-memory
// convention (1-based lines, 0-based columns); lines are translated to
// the upstream consumer's 0-based convention at the boundary.
func Run(mapData []byte, positions [][2]int) (*Report, error) {
	consumer, err := upstream.Parse("", mapData)
	if err != nil {
		return nil, fmt.Errorf("inspect: parse source map: %w", err)
	}

	report := &Report{}

	for _, pos := range positions {
		line, column := pos[0], pos[1]
		source, name, origLine, origCol, ok := consumer.Source(line-1, column)
		lookup := Lookup{
			GeneratedLine:   line,
			GeneratedColumn: column,
			Found:           ok,
		}
		if ok {
			lookup.Source = source
			lookup.Name = name
			lookup.OriginalLine = origLine + 1
			lookup.OriginalColumn = origCol
		}
		report.Lookups = append(report.Lookups, lookup)
	}

	return report, nil
}
