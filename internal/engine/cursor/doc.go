// Package cursor provides selection and multi-cursor management.
//
// Selections use an anchor/head model:
//
//   - Anchor: the position where the selection started
//   - Head: the current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. Word-motion operations in the motion package return
// selections whose anchor marks the start of the region moved over.
//
// CursorSet manages multiple selections that are kept sorted by position and
// merged when overlapping. The completion engine captures a cursor set's
// selections when building per-candidate edits, so each suggestion applies
// coherently at every cursor.
//
// Selection is an immutable value type and safe for concurrent use.
// CursorSet is not thread-safe and should be protected by external
// synchronization if accessed concurrently.
package cursor
