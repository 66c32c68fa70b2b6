package motion

import (
	"unicode"

	"github.com/dshills/wordmine/internal/engine/buffer"
	"github.com/dshills/wordmine/internal/engine/cursor"
)

// Target identifies a word-motion destination.
type Target uint8

const (
	// TargetNextWordStart moves forward to the start of the next word.
	TargetNextWordStart Target = iota
	// TargetNextWordEnd moves forward past the end of the current or next word.
	TargetNextWordEnd
	// TargetPrevWordStart moves backward to the start of the previous word.
	TargetPrevWordStart
	// TargetPrevWordEnd moves backward past the end of the previous word.
	TargetPrevWordEnd
)

// isPrev returns true for backward-moving targets.
func (t Target) isPrev() bool {
	return t == TargetPrevWordStart || t == TargetPrevWordEnd
}

// PrevWordStart moves the selection head backward to the start of the
// previous word, count times. The anchor of the returned selection marks
// where the motion began. If the head is already at the buffer start, the
// selection is returned unchanged.
func PrevWordStart(s *buffer.Snapshot, sel cursor.Selection, count int) cursor.Selection {
	return wordMove(s, sel, count, TargetPrevWordStart)
}

// NextWordEnd moves the selection head forward past the end of the current or
// next word, count times. The anchor of the returned selection marks the
// start of the region moved over. If the head is already at the buffer end,
// the selection is returned unchanged.
func NextWordEnd(s *buffer.Snapshot, sel cursor.Selection, count int) cursor.Selection {
	return wordMove(s, sel, count, TargetNextWordEnd)
}

// NextWordStart moves the selection head forward to the start of the next
// word, count times.
func NextWordStart(s *buffer.Snapshot, sel cursor.Selection, count int) cursor.Selection {
	return wordMove(s, sel, count, TargetNextWordStart)
}

// PrevWordEnd moves the selection head backward past the end of the previous
// word, count times.
func PrevWordEnd(s *buffer.Snapshot, sel cursor.Selection, count int) cursor.Selection {
	return wordMove(s, sel, count, TargetPrevWordEnd)
}

func wordMove(s *buffer.Snapshot, sel cursor.Selection, count int, target Target) cursor.Selection {
	isPrev := target.isPrev()

	// Already at the relevant buffer edge: nothing to do.
	if (isPrev && sel.Head == 0) || (!isPrev && sel.Head == s.Len()) {
		return sel
	}

	// Orient the selection in the motion direction so the anchor tracks the
	// region moved over rather than the prior selection extent.
	rng := sel
	if isPrev {
		if rng.Anchor < rng.Head {
			rng = rng.Flip()
		}
	} else {
		if rng.Head < rng.Anchor {
			rng = rng.Flip()
		}
	}

	for i := 0; i < count; i++ {
		next := rangeToTarget(s, rng, target)
		if next.Equals(rng) {
			break
		}
		rng = next
	}
	return rng
}

// rangeToTarget advances the selection to the next motion target. Characters
// are walked one at a time in the motion direction; the walk tracks the pair
// of characters straddling the head so category boundaries can be detected.
func rangeToTarget(s *buffer.Snapshot, origin cursor.Selection, target Target) cursor.Selection {
	isPrev := target.isPrev()

	var dir buffer.CharOffset = 1
	if isPrev {
		dir = -1
	}

	// peek returns the character crossed when stepping from head in the
	// motion direction.
	peek := func(head buffer.CharOffset) (rune, bool) {
		if isPrev {
			if head == 0 {
				return 0, false
			}
			return s.RuneAt(head - 1)
		}
		return s.RuneAt(head)
	}

	anchor := origin.Anchor
	head := origin.Head

	// prevCh is the character on the origin side of the head.
	var prevCh rune
	var hasPrev bool
	if isPrev {
		prevCh, hasPrev = s.RuneAt(head)
	} else {
		if head > 0 {
			prevCh, hasPrev = s.RuneAt(head - 1)
		}
	}

	// Skip any initial line-ending characters.
	for {
		ch, ok := peek(head)
		if !ok || !IsLineEnding(ch) {
			break
		}
		prevCh, hasPrev = ch, true
		head += dir
	}
	if hasPrev && IsLineEnding(prevCh) {
		anchor = head
	}

	// Find the target position.
	headStart := head
	for {
		nextCh, ok := peek(head)
		if !ok {
			break
		}
		if !hasPrev || reachedTarget(target, prevCh, nextCh) {
			if head == headStart {
				anchor = head
			} else {
				break
			}
		}
		prevCh, hasPrev = nextCh, true
		head += dir
	}

	return cursor.Selection{Anchor: anchor, Head: head}
}

// reachedTarget reports whether crossing from prevCh to nextCh lands on the
// given motion target. prevCh is always the character nearer the motion
// origin.
func reachedTarget(target Target, prevCh, nextCh rune) bool {
	switch target {
	case TargetNextWordStart, TargetPrevWordEnd:
		return isWordBoundary(prevCh, nextCh) &&
			(IsLineEnding(nextCh) || !unicode.IsSpace(nextCh))
	case TargetNextWordEnd, TargetPrevWordStart:
		return isWordBoundary(prevCh, nextCh) &&
			(!unicode.IsSpace(prevCh) || IsLineEnding(nextCh))
	default:
		return false
	}
}
