package motion

import "unicode"

// Category classifies a character for word-motion purposes.
type Category uint8

const (
	// CatWhitespace is horizontal whitespace (spaces, tabs and similar).
	CatWhitespace Category = iota
	// CatEol is a line-ending character.
	CatEol
	// CatWord is an identifier-like character: letters, numbers, underscore.
	CatWord
	// CatPunctuation is everything else.
	CatPunctuation
)

// IsWordChar returns true if the rune is part of an identifier-like token.
// The predicate is language-agnostic: any Unicode letter or number, plus
// underscore.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// IsLineEnding returns true if the rune terminates a line.
func IsLineEnding(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Categorize returns the word-motion category of a rune.
func Categorize(r rune) Category {
	switch {
	case IsLineEnding(r):
		return CatEol
	case unicode.IsSpace(r):
		return CatWhitespace
	case IsWordChar(r):
		return CatWord
	default:
		return CatPunctuation
	}
}

// isWordBoundary returns true if a and b fall into different categories.
func isWordBoundary(a, b rune) bool {
	return Categorize(a) != Categorize(b)
}
