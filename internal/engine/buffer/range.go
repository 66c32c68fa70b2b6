package buffer

import "fmt"

// Range represents a character range in the buffer.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start CharOffset // Inclusive start position
	End   CharOffset // Exclusive end position
}

// NewRange creates a new Range from start and end offsets.
func NewRange(start, end CharOffset) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in characters.
func (r Range) Len() CharOffset {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is valid (Start <= End).
func (r Range) IsValid() bool {
	return r.Start <= r.End
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset CharOffset) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsRange returns true if the given range is entirely within this range.
func (r Range) ContainsRange(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Overlaps returns true if this range overlaps with another range.
// Two ranges overlap when they share a start position (including two
// zero-length ranges at the same offset) or strictly interpenetrate.
// Ranges that merely touch at an endpoint do not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.Start == other.Start || (r.End > other.Start && other.End > r.Start)
}

// Union returns the smallest range covering both ranges.
func (r Range) Union(other Range) Range {
	start := r.Start
	if other.Start < start {
		start = other.Start
	}
	end := r.End
	if other.End > end {
		end = other.End
	}
	return Range{Start: start, End: end}
}

// Intersect returns the intersection of two ranges, or an empty range at the
// clamped start if they do not overlap.
func (r Range) Intersect(other Range) Range {
	start := r.Start
	if other.Start > start {
		start = other.Start
	}
	end := r.End
	if other.End < end {
		end = other.End
	}
	if end < start {
		end = start
	}
	return Range{Start: start, End: end}
}

// Clamp returns a range clamped to [0, maxOffset].
func (r Range) Clamp(maxOffset CharOffset) Range {
	start := r.Start
	end := r.End
	if start < 0 {
		start = 0
	} else if start > maxOffset {
		start = maxOffset
	}
	if end < 0 {
		end = 0
	} else if end > maxOffset {
		end = maxOffset
	}
	return Range{Start: start, End: end}
}
