// Package session provides an in-memory document host: an ordered set of
// line blocks loaded from a plain text file, the active selection, and the
// change notifications the correction engine fires after a splice. It is
// the reference implementation of correct.Host used by the CLI and the
// integration tests; a rich-text application would supply its own.
package session

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/JackWReid/redline/cursor"
	"github.com/JackWReid/redline/document"
	"github.com/JackWReid/redline/internal/log"
	"github.com/JackWReid/redline/internal/pubsub"
)

// Store holds document state for one file. All access is single-threaded;
// the host application is responsible for not mutating a line from another
// path while a replacement is in flight.
type Store struct {
	keys   []string
	blocks map[string]*document.Block

	sel    cursor.LineCursor
	selSet bool

	events  *pubsub.Broker[document.Event]
	dirty   []document.Region
	changed bool
}

// New creates an empty store with a single blank line.
func New() *Store {
	s := &Store{
		blocks: make(map[string]*document.Block),
		events: pubsub.New[document.Event](),
	}
	s.appendLine("")
	return s
}

// Load reads a file into a new store, one block per hard line. A missing
// file yields an empty store. Lines inside fenced code blocks are tagged
// as code content with the fence's language so the correction flow skips
// them.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, err
	}

	s := &Store{
		blocks: make(map[string]*document.Block),
		events: pubsub.New[document.Event](),
	}

	// Strip the trailing newline to avoid a phantom empty line.
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		s.appendLine("")
		return s, nil
	}

	inFence := false
	fenceLang := ""
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if !inFence {
				inFence = true
				fenceLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			} else {
				inFence = false
				fenceLang = ""
			}
			// The fence line itself carries the language identifier; it is
			// not prose either.
			b := s.appendLine(line)
			b.FunctionType = document.FunctionCode
			b.Lang = fenceLang
			continue
		}
		b := s.appendLine(line)
		if inFence {
			b.FunctionType = document.FunctionCode
			b.Lang = fenceLang
		}
	}
	log.Debug(log.CatSession, "loaded document", "path", path, "lines", len(s.keys))
	return s, nil
}

func (s *Store) appendLine(text string) *document.Block {
	key := fmt.Sprintf("line-%d", len(s.keys)+1)
	b := &document.Block{Key: key, Text: text}
	s.keys = append(s.keys, key)
	s.blocks[key] = b
	return b
}

// Save writes the store's lines to path with a trailing newline.
func (s *Store) Save(path string) error {
	lines := make([]string, 0, len(s.keys))
	for _, key := range s.keys {
		lines = append(lines, s.blocks[key].Text)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return err
	}
	s.changed = false
	return nil
}

// Keys returns the line keys in document order.
func (s *Store) Keys() []string {
	return s.keys
}

// Block resolves a line key to its block, or nil.
func (s *Store) Block(key string) *document.Block {
	return s.blocks[key]
}

// Selection returns the active cursor, if one has been set.
func (s *Store) Selection() (cursor.LineCursor, bool) {
	return s.sel, s.selSet
}

// SetSelection replaces the active cursor.
func (s *Store) SetSelection(lc cursor.LineCursor) {
	s.sel = lc
	s.selSet = true
}

// ClearSelection drops the active cursor.
func (s *Store) ClearSelection() {
	s.sel = cursor.LineCursor{}
	s.selSet = false
}

// PartialRender records the affected region and notifies render
// collaborators.
func (s *Store) PartialRender(r document.Region) {
	s.dirty = append(s.dirty, r)
	s.events.Publish(document.Event{Topic: document.TopicRender, Region: r})
}

// SelectionDidChange notifies collaborators that the selection may have
// moved.
func (s *Store) SelectionDidChange() {
	s.events.Publish(document.Event{Topic: document.TopicSelection})
}

// ContentDidChange marks the document dirty and notifies collaborators,
// for downstream persistence and undo tracking.
func (s *Store) ContentDidChange() {
	s.changed = true
	s.events.Publish(document.Event{Topic: document.TopicContent})
}

// Changed reports whether content changed since the last Save.
func (s *Store) Changed() bool {
	return s.changed
}

// DirtyRegions returns regions touched since the last TakeDirty, in order.
func (s *Store) DirtyRegions() []document.Region {
	return s.dirty
}

// TakeDirty returns and clears the pending dirty regions.
func (s *Store) TakeDirty() []document.Region {
	d := s.dirty
	s.dirty = nil
	return d
}

// Events subscribes to document change events until ctx is done.
func (s *Store) Events(ctx context.Context) <-chan document.Event {
	return s.events.Subscribe(ctx)
}

// Close shuts down the event broker.
func (s *Store) Close() {
	s.events.Close()
}
