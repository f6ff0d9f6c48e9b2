package wordscan

import (
	"testing"
)

func TestExtractWord(t *testing.T) {
	tests := []struct {
		text     string
		offset   int
		expected Span
		ok       bool
		desc     string
	}{
		{
			text:     "hello world",
			offset:   2,
			expected: Span{Left: 0, Right: 5, Word: "hello"},
			ok:       true,
			desc:     "caret inside first word",
		},
		{
			text:     "hello world",
			offset:   9,
			expected: Span{Left: 6, Right: 11, Word: "world"},
			ok:       true,
			desc:     "last word: right boundary is length",
		},
		{
			text:     "hello world",
			offset:   0,
			expected: Span{Left: 0, Right: 5, Word: "hello"},
			ok:       true,
			desc:     "caret at offset zero",
		},
		{
			text:     "hello",
			offset:   5,
			expected: Span{Left: 0, Right: 5, Word: "hello"},
			ok:       true,
			desc:     "caret at end of string clamps to last character",
		},
		{
			text:     "price 3.14 end",
			offset:   8,
			expected: Span{Left: 6, Right: 10, Word: "3.14"},
			ok:       true,
			desc:     "decimal token stays intact",
		},
		{
			text:     "price 3.14 end",
			offset:   6,
			expected: Span{Left: 6, Right: 7, Word: "3"},
			ok:       true,
			desc:     "caret on leading digit: right scan stops at the dot",
		},
		{
			text:   "hello world",
			offset: 5,
			ok:     false,
			desc:   "caret on the space between words",
		},
		{
			text:   ".,;: !?",
			offset: 3,
			ok:     false,
			desc:   "all separators",
		},
		{
			text:   "",
			offset: 0,
			ok:     false,
			desc:   "empty text",
		},
		{
			text:     "a b",
			offset:   0,
			expected: Span{Left: 0, Right: 1, Word: "a"},
			ok:       true,
			desc:     "single character word",
		},
		{
			text:   "abc,def",
			offset: 3,
			ok:     false,
			desc:   "caret on a comma",
		},
		{
			text:     "abc,def",
			offset:   4,
			expected: Span{Left: 4, Right: 7, Word: "def"},
			ok:       true,
			desc:     "caret immediately after a separator",
		},
		{
			text:     "abc,def",
			offset:   2,
			expected: Span{Left: 0, Right: 3, Word: "abc"},
			ok:       true,
			desc:     "caret immediately before a separator",
		},
		{
			text:     "one two three",
			offset:   -3,
			expected: Span{Left: 0, Right: 3, Word: "one"},
			ok:       true,
			desc:     "negative offset clamps to zero",
		},
		{
			text:     "tab\tsplit",
			offset:   6,
			expected: Span{Left: 4, Right: 9, Word: "split"},
			ok:       true,
			desc:     "tab is whitespace, word after it found",
		},
	}

	for _, tt := range tests {
		got, ok := ExtractWord(tt.text, tt.offset)
		if ok != tt.ok {
			t.Errorf("ExtractWord(%q, %d) ok=%v, expected %v (%s)",
				tt.text, tt.offset, ok, tt.ok, tt.desc)
			continue
		}
		if ok && got != tt.expected {
			t.Errorf("ExtractWord(%q, %d) = {%d, %d, %q}, expected {%d, %d, %q} (%s)",
				tt.text, tt.offset, got.Left, got.Right, got.Word,
				tt.expected.Left, tt.expected.Right, tt.expected.Word, tt.desc)
		}
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		line     string
		expected []Span
		desc     string
	}{
		{
			line: "hello world",
			expected: []Span{
				{Left: 0, Right: 5, Word: "hello"},
				{Left: 6, Right: 11, Word: "world"},
			},
			desc: "two plain words",
		},
		{
			line: "price 3.14 end",
			expected: []Span{
				{Left: 0, Right: 5, Word: "price"},
				{Left: 6, Right: 10, Word: "3.14"},
				{Left: 11, Right: 14, Word: "end"},
			},
			desc: "decimal token in the middle",
		},
		{
			line:     "",
			expected: nil,
			desc:     "empty line",
		},
		{
			line:     " .,! ",
			expected: nil,
			desc:     "separators only",
		},
		{
			line: "don't",
			expected: []Span{
				{Left: 0, Right: 3, Word: "don"},
				{Left: 4, Right: 5, Word: "t"},
			},
			desc: "apostrophe is a separator",
		},
		{
			line: "v1.2beta",
			expected: []Span{
				{Left: 0, Right: 2, Word: "v1"},
				{Left: 2, Right: 8, Word: ".2beta"},
			},
			desc: "dot followed by a digit starts a decimal token",
		},
	}

	for _, tt := range tests {
		got := Words(tt.line)
		if len(got) != len(tt.expected) {
			t.Errorf("Words(%q) returned %d spans, expected %d (%s): %v",
				tt.line, len(got), len(tt.expected), tt.desc, got)
			continue
		}
		for i, span := range got {
			if span != tt.expected[i] {
				t.Errorf("Words(%q)[%d] = {%d, %d, %q}, expected {%d, %d, %q} (%s)",
					tt.line, i, span.Left, span.Right, span.Word,
					tt.expected[i].Left, tt.expected[i].Right, tt.expected[i].Word, tt.desc)
			}
		}
	}
}

func TestIsSeparator(t *testing.T) {
	separators := []rune{' ', '\t', '\n', '`', '~', '!', '@', '#', '$', '%', '^',
		'&', '*', '(', ')', '-', '=', '+', '[', '{', ']', '}', '\\', '|',
		';', ':', '\'', '"', ',', '.', '<', '>', '/', '?'}
	for _, r := range separators {
		if !IsSeparator(r) {
			t.Errorf("IsSeparator(%q) = false, expected true", r)
		}
	}

	words := []rune{'a', 'Z', '0', '9', '_', 'é', 'ü', '漢'}
	for _, r := range words {
		if IsSeparator(r) {
			t.Errorf("IsSeparator(%q) = true, expected false", r)
		}
	}
}

func TestExtractWordUnicode(t *testing.T) {
	// Offsets are rune indices, not byte indices.
	got, ok := ExtractWord("héllo wörld", 8)
	if !ok {
		t.Fatal("expected a word at offset 8")
	}
	if got.Left != 6 || got.Right != 11 || got.Word != "wörld" {
		t.Errorf("got {%d, %d, %q}, expected {6, 11, %q}", got.Left, got.Right, got.Word, "wörld")
	}
}
