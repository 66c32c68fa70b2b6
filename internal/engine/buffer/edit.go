package buffer

import (
	"fmt"
	"sort"
)

// Edit represents a text edit operation.
// It specifies a character range to replace and the new text.
type Edit struct {
	Range   Range  // The range to replace
	NewText string // The replacement text
}

// NewEdit creates a new Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(offset CharOffset, text string) Edit {
	return Edit{
		Range:   Range{Start: offset, End: offset},
		NewText: text,
	}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(start, end CharOffset) Edit {
	return Edit{
		Range:   Range{Start: start, End: end},
		NewText: "",
	}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// Delta returns the change in character length caused by this edit.
func (e Edit) Delta() CharOffset {
	return CharOffset(len([]rune(e.NewText))) - e.Range.Len()
}

// ApplyEdits applies a set of non-overlapping edits to a snapshot and returns
// the resulting text. Edits are applied back-to-front so earlier edits do not
// shift the ranges of later ones. Edit ranges are clamped to the snapshot.
func ApplyEdits(s *Snapshot, edits []Edit) string {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start > sorted[j].Range.Start
	})

	runes := []rune(s.Text())
	for _, e := range sorted {
		r := e.Range.Clamp(CharOffset(len(runes)))
		if !r.IsValid() {
			continue
		}
		out := make([]rune, 0, len(runes)+len(e.NewText))
		out = append(out, runes[:r.Start]...)
		out = append(out, []rune(e.NewText)...)
		out = append(out, runes[r.End:]...)
		runes = out
	}
	return string(runes)
}
