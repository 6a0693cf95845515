// Package sourcemap builds and transforms Source Map v3 artifacts: the
// side-channel files that relate positions in generated text back to
// positions in one or more original sources.
//
// A Generator accumulates Mappings and an interned sources/names table and
// serializes the v3 "mappings" VLQ string. A SourceNode tree lets a caller
// assemble generated text out of annotated chunks and walk it once to
// produce both the generated text and a deduplicated mapping stream.
package sourcemap
