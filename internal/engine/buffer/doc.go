// Package buffer provides immutable text snapshots for the completion engine.
//
// A Snapshot is a read-only view of a document's text at a specific revision.
// Snapshots are cheap handles over frozen content: the completion engine
// captures them during its synchronous phase and scans them later without any
// dependency on live editor state.
//
// Position Types:
//
//   - CharOffset: character (rune) position in the text
//   - Point: line and column position (0-indexed, column in characters)
//   - Range: half-open character range [Start, End)
//
// Grapheme Clusters:
//
// Word lengths are measured in grapheme clusters, not runes. Snapshot exposes
// forward iteration (Graphemes, GraphemesFrom) and bounded reverse iteration
// (GraphemesBefore) built on rivo/uniseg.
//
// Edits:
//
// Edit describes a range replacement. ApplyEdits materializes a set of edits
// against a snapshot, which is how an accepted completion suggestion is
// turned into new buffer content.
//
// All slicing is clamped to the snapshot bounds and all offset arithmetic
// saturates at zero, so malformed positions degrade to empty results rather
// than panics.
package buffer
