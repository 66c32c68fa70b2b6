package buffer

import "sort"

// Snapshot is an immutable view of a document's text at a specific revision.
// It is safe for concurrent access and will not change even if the document
// it was taken from is modified. Snapshots index text by character (rune)
// offset and convert between character offsets and lines.
type Snapshot struct {
	runes      []rune
	lineStarts []CharOffset
	revisionID RevisionID
}

// NewSnapshot creates a snapshot of the given text with a fresh revision ID.
func NewSnapshot(text string) *Snapshot {
	return NewSnapshotAt(text, NewRevisionID())
}

// NewSnapshotAt creates a snapshot of the given text at a specific revision.
func NewSnapshotAt(text string, rev RevisionID) *Snapshot {
	runes := []rune(text)
	lineStarts := []CharOffset{0}
	for i, r := range runes {
		if r == '\n' {
			lineStarts = append(lineStarts, CharOffset(i)+1)
		}
	}
	return &Snapshot{
		runes:      runes,
		lineStarts: lineStarts,
		revisionID: rev,
	}
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return string(s.runes)
}

// Len returns the total character length of the snapshot.
func (s *Snapshot) Len() CharOffset {
	return CharOffset(len(s.runes))
}

// IsEmpty returns true if the snapshot is empty.
func (s *Snapshot) IsEmpty() bool {
	return len(s.runes) == 0
}

// RevisionID returns the revision ID of this snapshot.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// RuneAt returns the rune at the given character offset.
// The second return value is false if the offset is out of range.
func (s *Snapshot) RuneAt(offset CharOffset) (rune, bool) {
	if offset < 0 || offset >= s.Len() {
		return 0, false
	}
	return s.runes[offset], true
}

// Slice returns the text in [start, end), clamped to the snapshot bounds.
func (s *Snapshot) Slice(start, end CharOffset) string {
	r := Range{Start: start, End: end}.Clamp(s.Len())
	if !r.IsValid() || r.IsEmpty() {
		return ""
	}
	return string(s.runes[r.Start:r.End])
}

// LineCount returns the number of lines. An empty snapshot has one line.
func (s *Snapshot) LineCount() uint32 {
	return uint32(len(s.lineStarts))
}

// LineStartOffset returns the character offset of the start of a line.
// Lines at or past LineCount map to the end of the snapshot.
func (s *Snapshot) LineStartOffset(line uint32) CharOffset {
	if int(line) >= len(s.lineStarts) {
		return s.Len()
	}
	return s.lineStarts[line]
}

// CharToLine returns the line containing the given character offset.
// Offsets before the buffer map to line 0; offsets at or past the end map
// to the last line.
func (s *Snapshot) CharToLine(offset CharOffset) uint32 {
	if offset <= 0 {
		return 0
	}
	if offset >= s.Len() {
		return s.LineCount() - 1
	}
	// First line start strictly greater than offset, minus one.
	i := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	})
	return uint32(i - 1)
}

// OffsetToPoint converts a character offset to a line/column point.
func (s *Snapshot) OffsetToPoint(offset CharOffset) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > s.Len() {
		offset = s.Len()
	}
	line := s.CharToLine(offset)
	return Point{Line: line, Column: uint32(offset - s.lineStarts[line])}
}

// PointToOffset converts a line/column point to a character offset,
// clamped to the snapshot bounds.
func (s *Snapshot) PointToOffset(p Point) CharOffset {
	offset := s.LineStartOffset(p.Line) + CharOffset(p.Column)
	if offset > s.Len() {
		offset = s.Len()
	}
	return offset
}
