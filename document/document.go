// Package document defines the collaborator-facing document surface the
// correction engine works against: blocks of text, render regions, and the
// change events published after an edit. The document tree itself lives in
// the host application; these types only describe the narrow slice of it
// the engine reads and writes.
package document

// Block function types and affiliation tags the engine recognizes.
const (
	// FunctionCode tags a block as verbatim code content. Blocks with this
	// function type and a concrete language are never spell-corrected.
	FunctionCode = "codeContent"

	// AffiliationPre tags a selection as sitting inside a preformatted
	// structural context, such as the language identifier of a code fence.
	AffiliationPre = "pre"
)

// Block is the owning entity of a line's text. The engine holds only
// non-owning references to blocks and never assumes one outlives a single
// operation.
type Block struct {
	Key          string
	Text         string
	FunctionType string
	Lang         string
}

// IsCode reports whether the block is a code region with a defined
// language.
func (b *Block) IsCode() bool {
	return b != nil && b.FunctionType == FunctionCode && b.Lang != ""
}

// Region identifies the part of a block affected by an edit, for partial
// re-rendering. Left and Right are rune offsets.
type Region struct {
	Key   string
	Left  int
	Right int
}

// Topic names one of the change notifications fired after a splice.
type Topic string

const (
	TopicRender    Topic = "render"
	TopicSelection Topic = "selection"
	TopicContent   Topic = "content"
)

// Event is the payload published to collaborators when the engine changes
// document state.
type Event struct {
	Topic  Topic
	Region Region
}

// Splice replaces the rune range [left, right) of text with replacement,
// as a single operation: no partial state is ever observable. Out-of-range
// boundaries are clamped.
func Splice(text string, left, right int, replacement string) string {
	runes := []rune(text)
	if left < 0 {
		left = 0
	}
	if right > len(runes) {
		right = len(runes)
	}
	if left > right {
		left = right
	}
	rep := []rune(replacement)
	out := make([]rune, 0, len(runes)-(right-left)+len(rep))
	out = append(out, runes[:left]...)
	out = append(out, rep...)
	out = append(out, runes[right:]...)
	return string(out)
}
