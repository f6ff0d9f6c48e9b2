// Package cursor models caret and selection state as explicit value types.
// A Position pins a rune offset to a line key; a LineCursor is a start/end
// pair on a single line; a WordCursor is the same shape narrowed to exactly
// one word. Key-equality invariants are enforced by constructors rather
// than scattered field checks.
package cursor

import (
	"errors"

	"github.com/JackWReid/redline/document"
)

// Position is a caret location: a line key, a rune offset into that line's
// text, and an optional non-owning reference to the owning block.
type Position struct {
	Key    string
	Offset int
	Block  *document.Block
}

// LineCursor is a caret or selection confined to a single line.
// Affiliations carry structural context tags supplied by the host, opaque
// except to ValidateLineCursor.
type LineCursor struct {
	Start        Position
	End          Position
	Affiliations []string
}

// WordCursor is a start/end pair scoped to exactly one word on one line.
type WordCursor struct {
	Start Position
	End   Position
}

// ErrCrossLine is returned by NewLineCursor when the two positions sit on
// different lines.
var ErrCrossLine = errors.New("cursor: start and end on different lines")

// NewLineCursor builds a single-line cursor, rejecting cross-line pairs.
func NewLineCursor(start, end Position, affiliations ...string) (LineCursor, error) {
	if start.Key != end.Key {
		return LineCursor{}, ErrCrossLine
	}
	return LineCursor{Start: start, End: end, Affiliations: affiliations}, nil
}

// Collapsed returns a cursor with both ends at pos.
func Collapsed(pos Position) LineCursor {
	return LineCursor{Start: pos, End: pos}
}

// ToWordCursor copies the endpoints of lc and pins them to the rune range
// [left, right). The result shares no mutable state with lc: changing its
// offsets never affects the caller's cursor. No validation is performed
// here; callers gate eligibility through ValidateLineCursor first.
func ToWordCursor(lc LineCursor, left, right int) WordCursor {
	wc := WordCursor{Start: lc.Start, End: lc.End}
	wc.Start.Offset = left
	wc.End.Offset = right
	return wc
}

// ValidateLineCursor reports whether the selection is eligible for
// word-level correction. It fails closed: a false result means "silently
// skip correction", never an error. Ineligible selections are those that
// span lines, carry no resolvable owning block, sit inside a code block
// with a defined language, or carry exactly one "preformatted" affiliation
// tag (language identifiers and similar pre-element text are not prose).
func ValidateLineCursor(lc LineCursor) bool {
	if lc.Start.Key == "" || lc.End.Key == "" {
		return false
	}
	if lc.Start.Key != lc.End.Key {
		return false
	}
	if lc.Start.Block == nil {
		return false
	}
	if lc.Start.Block.IsCode() {
		return false
	}
	if len(lc.Affiliations) == 1 && lc.Affiliations[0] == document.AffiliationPre {
		return false
	}
	return true
}
