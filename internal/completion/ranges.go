package completion

import (
	"github.com/dshills/wordmine/internal/editor"
	"github.com/dshills/wordmine/internal/engine/buffer"
)

// docRanges is one document's captured snapshot plus the visible line ranges
// to scan, expressed as half-open [start, end) line ranges. The list is kept
// normalized by merge-on-insert: no two stored ranges overlap.
type docRanges struct {
	snap   *buffer.Snapshot
	ranges []buffer.Range
}

// insert adds a line range, merging it with the first stored range it
// overlaps. Ranges that merely touch at an endpoint are kept separate.
func (d *docRanges) insert(r buffer.Range) {
	for i := range d.ranges {
		if d.ranges[i].Overlaps(r) {
			d.ranges[i] = d.ranges[i].Union(r)
			return
		}
	}
	d.ranges = append(d.ranges, r)
}

// collectVisibleRanges folds every open view's visible line span into a
// per-document range set. Each document's snapshot is captured on first
// sight, so the deferred scan works against frozen content. This pass is
// cheap and runs synchronously on the interactive path.
func collectVisibleRanges(ed *editor.Editor) map[editor.DocumentID]*docRanges {
	ranges := make(map[editor.DocumentID]*docRanges)
	for _, view := range ed.Views() {
		doc, ok := ed.Document(view.Document())
		if !ok {
			continue
		}
		snap := doc.Snapshot()
		start, end := view.VisibleLineRange(snap)
		lineRange := buffer.NewRange(buffer.CharOffset(start), buffer.CharOffset(end))

		dr, ok := ranges[doc.ID()]
		if !ok {
			dr = &docRanges{snap: snap}
			ranges[doc.ID()] = dr
		}
		dr.insert(lineRange)
	}
	return ranges
}
