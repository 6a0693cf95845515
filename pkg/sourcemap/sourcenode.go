package sourcemap

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SourceNode is an annotated node in a rope-like tree of generated text.
// Its Position, Source, and Name are inherited defaults applied to each
// plain string chunk it directly contains; nested SourceNodes carry their
// own annotations. A tree is built bottom-up, consumed once by
// ToStringWithSourceMap, and otherwise not mutated by the walk.
type SourceNode struct {
	Position *Position
	Source   *string
	Name     *string

	children       []any // each element is *SourceNode or string
	sourceContents map[string]string
}

// NewSourceNode creates a SourceNode with the given inherited annotations
// and optional initial children (see Add for accepted shapes).
func NewSourceNode(position *Position, source, name *string, children ...any) *SourceNode {
	n := &SourceNode{
		Position:       position,
		Source:         source,
		Name:           name,
		sourceContents: make(map[string]string),
	}
	n.Add(children...)
	return n
}

// Add appends children to the node. Each child must be a *SourceNode, a
// string chunk, or a []any slice of such children — a slice is flattened
// element-wise rather than pushed as a single nested child.
func (n *SourceNode) Add(children ...any) *SourceNode {
	for _, c := range children {
		switch v := c.(type) {
		case []any:
			n.Add(v...)
		case *SourceNode, string:
			n.children = append(n.children, v)
		default:
			panic(fmt.Sprintf("sourcemap: SourceNode.Add: unsupported child type %T", c))
		}
	}
	return n
}

// SetSourceContent records source's original content on this node. It is
// forwarded to the generator during the walk.
func (n *SourceNode) SetSourceContent(source, content string) {
	n.sourceContents[source] = content
}

// Result is what ToStringWithSourceMap produces: the concatenated
// generated text and its source map.
type Result struct {
	Source string
	Map    *Envelope
}

// ToStringWithSourceMap walks the tree and returns the generated text
// alongside its source map. The generator used internally has validation
// disabled — the walker is trusted to emit only well-formed mappings.
func (n *SourceNode) ToStringWithSourceMap(file, sourceRoot *string) *Result {
	w := &walker{
		generator:         NewGenerator(file, sourceRoot, true),
		generatedPosition: Position{Line: 1, Column: 0},
	}
	w.walk(n)

	return &Result{
		Source: w.generatedCode.String(),
		Map:    w.generator.ToSourceMap(),
	}
}

// walker carries the mutable state of a single ToStringWithSourceMap
// invocation: the accumulating output, the position at which the next
// character will be emitted, and the (source, position, name) triple of
// the most recently emitted mapping, used to deduplicate repeats.
type walker struct {
	generator *Generator

	generatedCode     strings.Builder
	generatedPosition Position

	sourceMappingActive bool
	lastSource          *string
	lastPosition        *Position
	lastName            *string
}

func (w *walker) walk(n *SourceNode) {
	for _, child := range n.children {
		switch c := child.(type) {
		case *SourceNode:
			w.walk(c)
		case string:
			w.processChunk(c, n.Source, n.Position, n.Name)
		}
	}
	for source, content := range n.sourceContents {
		content := content
		w.generator.SetSourceContent(source, &content)
	}
}

func (w *walker) processChunk(chunk string, source *string, position *Position, name *string) {
	w.generatedCode.WriteString(chunk)

	if source != nil && position != nil {
		if !stringPtrEqual(w.lastSource, source) || !positionPtrEqual(w.lastPosition, position) || !stringPtrEqual(w.lastName, name) {
			_ = w.generator.AddMapping(Mapping{
				Generated: w.generatedPosition,
				Original:  position,
				Source:    source,
				Name:      name,
			})
		}
		w.lastSource = source
		w.lastPosition = position
		w.lastName = name
		w.sourceMappingActive = true
	} else if w.sourceMappingActive {
		_ = w.generator.AddMapping(Mapping{Generated: w.generatedPosition})
		w.lastSource = nil
		w.sourceMappingActive = false
	}

	for i, r := range chunk {
		isLast := i+utf8.RuneLen(r) == len(chunk)
		if r == '\n' {
			w.generatedPosition.Line++
			w.generatedPosition.Column = 0

			if isLast {
				w.lastSource = nil
				w.sourceMappingActive = false
			} else if w.sourceMappingActive {
				_ = w.generator.AddMapping(Mapping{
					Generated: w.generatedPosition,
					Original:  position,
					Source:    source,
					Name:      name,
				})
			}
		} else {
			w.generatedPosition.Column++
		}
	}
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func positionPtrEqual(a, b *Position) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
