package buffer

import "github.com/rivo/uniseg"

// GraphemeIterator walks grapheme clusters forward over a slice of the
// snapshot. Clusters are yielded lazily, so callers that only need the first
// few clusters of a large slice pay only for what they consume.
type GraphemeIterator struct {
	rest  string
	state int
}

// Graphemes returns a forward grapheme-cluster iterator over [start, end),
// clamped to the snapshot bounds.
func (s *Snapshot) Graphemes(start, end CharOffset) *GraphemeIterator {
	return &GraphemeIterator{rest: s.Slice(start, end), state: -1}
}

// GraphemesFrom returns a forward grapheme-cluster iterator from start to the
// end of the snapshot.
func (s *Snapshot) GraphemesFrom(start CharOffset) *GraphemeIterator {
	return s.Graphemes(start, s.Len())
}

// Next returns the next grapheme cluster. The second return value is false
// when the iterator is exhausted.
func (it *GraphemeIterator) Next() (string, bool) {
	if len(it.rest) == 0 {
		return "", false
	}
	cluster, rest, _, state := uniseg.FirstGraphemeClusterInString(it.rest, it.state)
	it.rest = rest
	it.state = state
	return cluster, true
}

// ReverseGraphemeIterator walks grapheme clusters backward from a fixed
// offset. Iteration is bounded by the start of the line containing the
// offset: a line start is always a cluster boundary, and the word characters
// the completion engine counts never cross a line break, so the bound does
// not change any word-run measurement.
type ReverseGraphemeIterator struct {
	clusters []string
	idx      int
}

// GraphemesBefore returns a reverse grapheme-cluster iterator over the text
// between the start of the line containing offset and offset itself. The
// first cluster yielded is the one immediately preceding offset.
func (s *Snapshot) GraphemesBefore(offset CharOffset) *ReverseGraphemeIterator {
	if offset < 0 {
		offset = 0
	}
	if offset > s.Len() {
		offset = s.Len()
	}
	lineStart := s.LineStartOffset(s.CharToLine(saturatingSub(offset, 1)))
	if lineStart > offset {
		lineStart = offset
	}

	var clusters []string
	it := &GraphemeIterator{rest: s.Slice(lineStart, offset), state: -1}
	for {
		cluster, ok := it.Next()
		if !ok {
			break
		}
		clusters = append(clusters, cluster)
	}
	return &ReverseGraphemeIterator{clusters: clusters, idx: len(clusters) - 1}
}

// Next returns the previous grapheme cluster. The second return value is
// false when the iterator is exhausted.
func (it *ReverseGraphemeIterator) Next() (string, bool) {
	if it.idx < 0 {
		return "", false
	}
	cluster := it.clusters[it.idx]
	it.idx--
	return cluster, true
}

// saturatingSub returns a-b, clamped at zero.
func saturatingSub(a, b CharOffset) CharOffset {
	if b > a {
		return 0
	}
	return a - b
}
