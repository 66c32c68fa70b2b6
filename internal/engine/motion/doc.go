// Package motion implements word-boundary motions over buffer snapshots.
//
// Characters are classified into four categories (whitespace, line ending,
// word, punctuation). A word is a maximal run of same-category word or
// punctuation characters; motions skip whitespace between words. The word
// predicate is language-agnostic: Unicode letters, numbers and underscore.
//
// Motions take and return cursor.Selection values. The head of the returned
// selection is the motion destination; the anchor marks the start of the
// region moved over, which lets callers recover the span of the last word a
// forward motion crossed.
//
// The completion engine uses PrevWordStart to locate the word fragment
// already typed before the trigger position, and NextWordEnd to walk the
// words inside visible viewport ranges.
package motion
