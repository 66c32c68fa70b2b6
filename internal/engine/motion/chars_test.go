package motion

import "testing"

func TestIsWordChar(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'9', true},
		{'_', true},
		{'é', true},
		{'λ', true},
		{'世', true},
		{'-', false},
		{'.', false},
		{' ', false},
		{'\n', false},
	}

	for _, tt := range tests {
		if got := IsWordChar(tt.r); got != tt.want {
			t.Errorf("IsWordChar(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		r    rune
		want Category
	}{
		{' ', CatWhitespace},
		{'\t', CatWhitespace},
		{'\n', CatEol},
		{'\r', CatEol},
		{'\u2028', CatEol},
		{'a', CatWord},
		{'_', CatWord},
		{'7', CatWord},
		{'.', CatPunctuation},
		{'+', CatPunctuation},
	}

	for _, tt := range tests {
		if got := Categorize(tt.r); got != tt.want {
			t.Errorf("Categorize(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestIsWordBoundary(t *testing.T) {
	if isWordBoundary('a', 'b') {
		t.Error("two word chars should not form a boundary")
	}
	if !isWordBoundary('a', ' ') {
		t.Error("word char and whitespace should form a boundary")
	}
	if !isWordBoundary('a', '.') {
		t.Error("word char and punctuation should form a boundary")
	}
	if !isWordBoundary(' ', '\n') {
		t.Error("whitespace and line ending should form a boundary")
	}
}
