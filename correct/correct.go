// Package correct performs in-place word replacement inside a document
// line. It is the write path of the correction flow: the selection is gated
// by cursor.ValidateLineCursor, the word under the caret is located by
// wordscan.ExtractWord, and the engine here splices the replacement into
// the owning block and reports the change to the host.
//
// Failures come in two tiers. Malformed cursors are caller bugs and surface
// as named errors before any mutation. Ineligible or stale selections are
// expected conditions arising from races between live editing and an
// external spell-check pass; they are logged and surfaced as a boolean
// false, and never mutate the buffer.
package correct

import (
	"errors"

	"github.com/JackWReid/redline/cursor"
	"github.com/JackWReid/redline/document"
	"github.com/JackWReid/redline/internal/log"
	"github.com/JackWReid/redline/wordscan"
)

// Precondition failures for ReplaceWordInline. Each aborts the call before
// any mutation.
var (
	// ErrWordCursorSpansLines: the word cursor's endpoints sit on different lines.
	ErrWordCursorSpansLines = errors.New("correct: word cursor spans lines")
	// ErrLineCursorSpansLines: the supplied line cursor spans lines.
	ErrLineCursorSpansLines = errors.New("correct: line cursor spans lines")
	// ErrOffsetOrder: the word cursor's start offset is after its end offset.
	ErrOffsetOrder = errors.New("correct: word start offset after end offset")
	// ErrCursorMismatch: the word cursor is not anchored to the supplied line.
	ErrCursorMismatch = errors.New("correct: word cursor not anchored to line")
	// ErrOutOfBounds: the owning block's text is shorter than the word range.
	ErrOutOfBounds = errors.New("correct: word cursor past end of block text")
)

// Host is the capability the engine needs from the owning document system:
// block resolution, the live selection, and the three change notifications
// fired after every successful splice. The engine holds no document state
// of its own.
type Host interface {
	// Block resolves a line key to its owning block, or nil.
	Block(key string) *document.Block
	// Selection returns the current active cursor, if any.
	Selection() (cursor.LineCursor, bool)
	// SetSelection replaces the active cursor.
	SetSelection(cursor.LineCursor)
	// PartialRender requests a re-render of the affected region.
	PartialRender(document.Region)
	// SelectionDidChange tells collaborators the selection may have moved.
	SelectionDidChange()
	// ContentDidChange tells collaborators document content changed, for
	// downstream persistence and undo tracking.
	ContentDidChange()
}

// Engine applies word replacements against a Host.
type Engine struct {
	host Host
}

// New creates an engine bound to the given host.
func New(host Host) *Engine {
	return &Engine{host: host}
}

// ReplaceWordInline atomically replaces the word range of wc inside the
// block owning line with replacement. When setCursor is true the caret is
// collapsed to the end of the inserted text, on both the line cursor and
// the host's active selection. Regardless of setCursor, a successful
// splice always fires the render, selection-changed and content-changed
// notifications, in that order, after the text is already swapped: any
// listener observes the splice and the notifications as one unit.
func (e *Engine) ReplaceWordInline(line cursor.LineCursor, wc cursor.WordCursor, replacement string, setCursor bool) error {
	if wc.Start.Key != wc.End.Key {
		return ErrWordCursorSpansLines
	}
	if line.Start.Key != line.End.Key {
		return ErrLineCursorSpansLines
	}
	if wc.Start.Offset > wc.End.Offset {
		return ErrOffsetOrder
	}
	if line.Start.Key != wc.End.Key {
		return ErrCursorMismatch
	}

	block := line.Start.Block
	if block == nil {
		block = e.host.Block(line.Start.Key)
	}
	left, right := wc.Start.Offset, wc.End.Offset
	if block == nil || len([]rune(block.Text)) < right {
		return ErrOutOfBounds
	}

	block.Text = document.Splice(block.Text, left, right, replacement)

	repLen := len([]rune(replacement))
	if setCursor {
		pos := wc.Start
		pos.Offset = left + repLen
		pos.Block = block
		e.host.SetSelection(cursor.Collapsed(pos))
	}

	e.host.PartialRender(document.Region{Key: block.Key, Left: left, Right: left + repLen})
	e.host.SelectionDidChange()
	e.host.ContentDidChange()
	return nil
}

// ReplaceCurrentWord replaces the word under the host's live caret with
// replacement, after verifying that the word actually under the caret
// still equals word. External spell-check UIs can report a word that has
// since been edited away; a mismatch is a silent skip, never a mutation.
// Returns true only when a replacement happened.
func (e *Engine) ReplaceCurrentWord(word, replacement string) bool {
	sel, ok := e.host.Selection()
	if !ok {
		log.Warn(log.CatCorrect, "no active selection for word replacement")
		return false
	}
	if sel.Start.Block == nil {
		sel.Start.Block = e.host.Block(sel.Start.Key)
	}

	if !cursor.ValidateLineCursor(sel) {
		log.Warn(log.CatCorrect, "selection not eligible for word replacement", "key", sel.Start.Key)
		return false
	}

	span, ok := wordscan.ExtractWord(sel.Start.Block.Text, sel.Start.Offset)
	if !ok {
		log.Debug(log.CatCorrect, "no word under caret", "key", sel.Start.Key, "offset", sel.Start.Offset)
		return false
	}

	if span.Word != word {
		log.Warn(log.CatCorrect, "word under caret desynced from reported word",
			"have", span.Word, "want", word)
		return false
	}

	wc := cursor.ToWordCursor(sel, span.Left, span.Right)
	if err := e.ReplaceWordInline(sel, wc, replacement, true); err != nil {
		log.ErrorErr(log.CatCorrect, "word replacement failed", err, "key", sel.Start.Key)
		return false
	}
	return true
}
