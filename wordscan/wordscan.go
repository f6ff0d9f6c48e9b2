// Package wordscan locates word boundaries around caret offsets.
//
// The scanner is deliberately regex-free: characters are classified by two
// explicit predicates (separator vs. word constituent) and words are found
// by a single left-to-right token scan with an early exit. All offsets are
// rune indices.
package wordscan

import (
	"strings"
	"unicode"
)

// Span is a word located in a line: the rune range [Left, Right) and the
// text between the two boundaries.
type Span struct {
	Left  int
	Right int
	Word  string
}

// punctuation is the fixed set of non-whitespace separator characters.
const punctuation = "`~!@#$%^&*()-=+[{]}\\|;:'\",.<>/?"

// IsSeparator reports whether r terminates a word: any whitespace or one of
// the fixed punctuation characters.
func IsSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(punctuation, r)
}

// ExtractWord returns the word enclosing the given caret offset in text.
// The second return value is false when no word encloses the offset: empty
// text, or a caret sitting on or between separators. That is expected
// behavior, not an error.
//
// A caret offset may legitimately equal len(text) (caret at end of line);
// it is clamped to point at the last character.
func ExtractWord(text string, offset int) (Span, bool) {
	runes := []rune(text)
	if len(runes) == 0 {
		return Span{}, false
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes)-1 {
		offset = len(runes) - 1
	}

	// Restart tokenization just after the nearest preceding literal space.
	// This bounds the scan window for long lines. The rule is "last space",
	// not "last separator" -- words never contain whitespace, so no token
	// enclosing the offset can start before it.
	start := 0
	for i := offset - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			start = i + 1
			break
		}
	}

	// Left boundary: the start of the token that contains the offset.
	// Tokens are produced in increasing order, so stop as soon as one
	// starts past the offset.
	left := -1
	for i := start; i < len(runes); {
		tokStart, tokEnd, ok := nextToken(runes, i)
		if !ok || tokStart > offset {
			break
		}
		if tokEnd > offset {
			left = tokStart
		}
		i = tokEnd
	}
	if left < 0 {
		return Span{}, false
	}

	// Right boundary: the nearest separator at or after the offset. The two
	// passes are intentionally asymmetric: the left boundary respects the
	// maximal-token rule so numeric tokens stay intact, the right boundary
	// only needs the next separator.
	right := len(runes)
	for i := offset; i < len(runes); i++ {
		if IsSeparator(runes[i]) {
			right = i
			break
		}
	}
	if right <= left {
		return Span{}, false
	}

	return Span{Left: left, Right: right, Word: string(runes[left:right])}, true
}

// Words tokenizes a full line, returning every word-constituent token with
// its boundaries.
func Words(text string) []Span {
	runes := []rune(text)
	var spans []Span
	for i := 0; i < len(runes); {
		start, end, ok := nextToken(runes, i)
		if !ok {
			break
		}
		spans = append(spans, Span{Left: start, Right: end, Word: string(runes[start:end])})
		i = end
	}
	return spans
}

// nextToken finds the next maximal word-constituent token at or after i.
// A token is either a decimal-number-like run (an optional run of digits, a
// literal '.', a digit, then any run of non-separator characters, keeping
// tokens like "3.14" intact) or a maximal run of non-separator characters.
func nextToken(runes []rune, i int) (start, end int, ok bool) {
	for i < len(runes) {
		if end, ok := decimalToken(runes, i); ok {
			return i, end, true
		}
		if !IsSeparator(runes[i]) {
			end := i + 1
			for end < len(runes) && !IsSeparator(runes[end]) {
				end++
			}
			return i, end, true
		}
		i++
	}
	return 0, 0, false
}

// decimalToken matches a decimal-number-like token starting at i and
// returns its end. Matches fail unless a '.' directly followed by a digit
// appears after the leading digit run.
func decimalToken(runes []rune, i int) (end int, ok bool) {
	j := i
	for j < len(runes) && unicode.IsDigit(runes[j]) {
		j++
	}
	if j+1 >= len(runes) || runes[j] != '.' || !unicode.IsDigit(runes[j+1]) {
		return 0, false
	}
	end = j + 2
	for end < len(runes) && !IsSeparator(runes[end]) {
		end++
	}
	return end, true
}
