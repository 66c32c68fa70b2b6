package editor

import "github.com/dshills/wordmine/internal/engine/buffer"

// ViewID identifies a view within an editor.
type ViewID int

// View is one visible window onto a document. Several views may show the
// same document at different scroll positions. A view exposes exactly what
// the completion engine needs from a viewport: which document it shows, the
// scroll anchor and an estimate of the last visible line.
type View struct {
	id     ViewID
	doc    DocumentID
	anchor buffer.CharOffset // character offset of the first visible position
	height int               // visible lines
}

// NewView creates a view over the given document.
// Height is clamped to a minimum of 1.
func NewView(id ViewID, doc DocumentID, height int) *View {
	if height < 1 {
		height = 1
	}
	return &View{id: id, doc: doc, height: height}
}

// ID returns the view's identifier.
func (v *View) ID() ViewID {
	return v.id
}

// Document returns the ID of the document this view shows.
func (v *View) Document() DocumentID {
	return v.doc
}

// Anchor returns the view's scroll anchor: the character offset of the first
// visible position.
func (v *View) Anchor() buffer.CharOffset {
	return v.anchor
}

// Height returns the number of visible lines.
func (v *View) Height() int {
	return v.height
}

// ScrollTo moves the scroll anchor to the given character offset.
// Negative offsets clamp to 0.
func (v *View) ScrollTo(anchor buffer.CharOffset) {
	if anchor < 0 {
		anchor = 0
	}
	v.anchor = anchor
}

// Resize sets the number of visible lines, clamped to a minimum of 1.
func (v *View) Resize(height int) {
	if height < 1 {
		height = 1
	}
	v.height = height
}

// FirstLine returns the first visible line of the given snapshot.
func (v *View) FirstLine(s *buffer.Snapshot) uint32 {
	return s.CharToLine(v.anchor)
}

// EstimateLastLine estimates the last visible line of the given snapshot:
// the first visible line plus the view height, capped at the last line of
// the document.
func (v *View) EstimateLastLine(s *buffer.Snapshot) uint32 {
	first := v.FirstLine(s)
	last := first + uint32(v.height) - 1
	if max := s.LineCount() - 1; last > max {
		last = max
	}
	return last
}

// VisibleLineRange returns the half-open line range [start, end) visible in
// this view for the given snapshot.
func (v *View) VisibleLineRange(s *buffer.Snapshot) (start, end uint32) {
	start = v.FirstLine(s)
	end = v.EstimateLastLine(s) + 1
	return start, end
}
