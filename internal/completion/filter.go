package completion

import (
	"unicode"

	"github.com/dshills/wordmine/internal/editor"
)

// RetainValid filters an already-materialized suggestion list against the
// current cursor context. It is called on every keystroke, independently of
// any scan in flight.
//
// Completing a word makes no sense once the user has moved past it with
// whitespace: for automatic triggers, when the character immediately left of
// the primary cursor is whitespace, every SourceWord item is dropped. Items
// from other sources are untouched, and manual triggers are never filtered.
//
// The returned slice reuses the backing array of items.
func RetainValid(trig Trigger, doc *editor.Document, items []Item) []Item {
	if trig.Kind == TriggerManual {
		return items
	}

	snap := doc.Snapshot()
	cur := doc.Selection().Primary().Cursor()
	off := cur - 1
	if off < 0 {
		off = 0
	}
	r, ok := snap.RuneAt(off)
	if !ok || !unicode.IsSpace(r) {
		return items
	}

	kept := items[:0]
	for _, item := range items {
		if item.Source != SourceWord {
			kept = append(kept, item)
		}
	}
	return kept
}
