package completion

import (
	"context"
	"sort"
	"unicode"

	"github.com/dshills/wordmine/internal/config"
	"github.com/dshills/wordmine/internal/editor"
	"github.com/dshills/wordmine/internal/engine/buffer"
	"github.com/dshills/wordmine/internal/engine/cursor"
	"github.com/dshills/wordmine/internal/engine/motion"
)

// Complete runs the synchronous phase of a word completion request against
// the focused view and returns the deferred scan as a Task, or nil when the
// request yields no suggestions.
//
// The synchronous phase locates the typed word fragment before the trigger
// position and collects the visible line ranges of every open view. The
// context is polled exactly once, after range collection; a canceled request
// returns nil and the task is never built. The returned task captures only
// immutable snapshots and is safe to run off the interactive path,
// concurrently with further edits.
func Complete(ctx context.Context, ed *editor.Editor, trig Trigger, cfg *config.Config, token SnapshotToken) *Task {
	if cfg == nil {
		cfg = config.Default()
	}
	minWordLen := MinWordLen(cfg, trig.Kind)

	_, doc := ed.Focus()
	if doc == nil {
		return nil
	}
	snap := doc.Snapshot()
	selection := doc.Selection().All()

	pos := trig.Pos
	if pos < 0 {
		pos = 0
	} else if pos > snap.Len() {
		pos = snap.Len()
	}

	cur := motion.PrevWordStart(snap, cursor.PointSelection(pos), 1)
	if cur.Head == pos {
		return nil
	}

	// Automatic triggers require a full minWordLen run of word characters
	// after the located word start; otherwise the prefix is too short to
	// bother the user with.
	if trig.Kind != TriggerManual && wordRunAfter(snap, cur.Head, minWordLen) != minWordLen {
		return nil
	}

	typedWordRange := buffer.NewRange(cur.Head, pos)

	// When the fragment ends in whitespace there is nothing to erase on
	// accept, despite the non-empty range.
	editDiff := typedWordRange.Len()
	if last, ok := snap.RuneAt(pos - 1); ok && unicode.IsSpace(last) {
		editDiff = 0
	}

	ranges := collectVisibleRanges(ed)

	if ctx != nil && ctx.Err() != nil {
		return nil
	}

	docIDs := make([]editor.DocumentID, 0, len(ranges))
	for id := range ranges {
		docIDs = append(docIDs, id)
	}
	sort.Slice(docIDs, func(i, j int) bool { return docIDs[i] < docIDs[j] })

	return &Task{
		minWordLen:     minWordLen,
		ranges:         ranges,
		docIDs:         docIDs,
		typedWordRange: typedWordRange,
		editDiff:       editDiff,
		selection:      selection,
		priority:       cfg.Priority,
		token:          token,
	}
}

// Task is the deferred half of a completion request: the captured immutable
// inputs plus Run. A task is pure; running it twice yields equal responses,
// and never running it requires no cleanup. It does not re-poll
// cancellation: the scan is bounded by viewport size, not document size.
type Task struct {
	minWordLen     int
	ranges         map[editor.DocumentID]*docRanges
	docIDs         []editor.DocumentID
	typedWordRange buffer.Range
	editDiff       buffer.CharOffset
	selection      []cursor.Selection
	priority       int8
	token          SnapshotToken
}

// Run scans the captured visible ranges and synthesizes the completion
// response. An empty candidate set still produces a response with zero
// items.
func (t *Task) Run() Response {
	words := make(map[string]struct{})

	for _, id := range t.docIDs {
		dr := t.ranges[id]
		for _, lineRange := range dr.ranges {
			t.scanRange(dr.snap, lineRange, words)
		}
	}

	labels := make([]string, 0, len(words))
	for w := range words {
		labels = append(labels, w)
	}
	sort.Strings(labels)

	items := make([]Item, 0, len(labels))
	for _, word := range labels {
		items = append(items, Item{
			Label:  word,
			Source: SourceWord,
			Edits:  t.editsFor(word),
		})
	}

	return Response{
		Items:  items,
		Source: SourceWord,
		Context: ResponseContext{
			IsIncomplete: false,
			Priority:     t.priority,
			Token:        t.token,
		},
	}
}

// scanRange walks one merged visible line range and adds every qualifying
// word to the candidate set.
func (t *Task) scanRange(snap *buffer.Snapshot, lineRange buffer.Range, words map[string]struct{}) {
	start := snap.LineStartOffset(uint32(lineRange.Start))
	end := snap.LineStartOffset(uint32(lineRange.End))

	cur := cursor.PointSelection(start)

	// A word truncated by the viewport's top edge must not be offered, so
	// the advanced cursor is adopted only when the range start coincides
	// exactly with a word start. The first word touching a scanned region's
	// left edge can otherwise never be completed from that scan.
	if r, ok := snap.RuneAt(start); ok && !unicode.IsSpace(r) {
		wordEnd := motion.NextWordEnd(snap, cur, 1)
		if wordEnd.Anchor == start {
			cur = wordEnd
		}
	}

	for cur.Head < end {
		if wordRunBefore(snap, cur.Head, t.minWordLen) == t.minWordLen {
			// Pull the anchor forward past leading non-word characters so
			// the candidate spans exactly one word.
			for {
				r, ok := snap.RuneAt(cur.Anchor)
				if !ok || motion.IsWordChar(r) {
					break
				}
				cur.Anchor++
			}
			wordRange := buffer.NewRange(cur.Anchor, cur.Head)
			// Never suggest the word presently being typed. The exclusion
			// is positional: identical text elsewhere still qualifies.
			if wordRange.IsValid() && !t.typedWordRange.Overlaps(wordRange) {
				words[snap.Slice(wordRange.Start, wordRange.End)] = struct{}{}
			}
		}
		cur = motion.NextWordEnd(snap, cur, 1)
	}
}

// editsFor builds the multi-cursor edit set that applies a candidate word:
// at every selection, the editDiff characters before the cursor are replaced
// with the word.
func (t *Task) editsFor(word string) []buffer.Edit {
	edits := make([]buffer.Edit, 0, len(t.selection))
	for _, sel := range t.selection {
		c := sel.Cursor()
		start := c - t.editDiff
		if start < 0 {
			start = 0
		}
		edits = append(edits, buffer.NewEdit(buffer.NewRange(start, c), word))
	}
	return edits
}

// wordRunBefore counts the grapheme clusters immediately before off that
// consist entirely of word characters, up to max.
func wordRunBefore(snap *buffer.Snapshot, off buffer.CharOffset, max int) int {
	it := snap.GraphemesBefore(off)
	n := 0
	for n < max {
		g, ok := it.Next()
		if !ok || !clusterIsWord(g) {
			break
		}
		n++
	}
	return n
}

// wordRunAfter counts the grapheme clusters at and after off that consist
// entirely of word characters, up to max.
func wordRunAfter(snap *buffer.Snapshot, off buffer.CharOffset, max int) int {
	it := snap.GraphemesFrom(off)
	n := 0
	for n < max {
		g, ok := it.Next()
		if !ok || !clusterIsWord(g) {
			break
		}
		n++
	}
	return n
}

// clusterIsWord returns true if every rune of the grapheme cluster is a word
// character.
func clusterIsWord(g string) bool {
	for _, r := range g {
		if !motion.IsWordChar(r) {
			return false
		}
	}
	return true
}
