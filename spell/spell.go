// Package spell provides the misspelling provider consumed by the
// correction flow: a boolean "is this word misspelled" and a list of
// suggestion strings. The correction engine itself never calls a
// dictionary; it only consumes these answers.
package spell

import (
	"bufio"
	_ "embed"
	"io"
	"strings"
	"unicode"

	"github.com/sajari/fuzzy"

	"github.com/JackWReid/redline/wordscan"
)

//go:embed dictionaries/common.txt
var embeddedDictionary string

// Checker answers spelling queries for single words.
type Checker interface {
	// Misspelled reports whether word is not a known spelling.
	Misspelled(word string) bool
	// Suggest returns candidate corrections for word, best first.
	Suggest(word string) []string
}

// Misspelling is a flagged word in a checked line.
type Misspelling struct {
	Line int
	Span wordscan.Span
}

// FuzzyChecker is a Checker backed by a fuzzy language model trained on a
// word list. Lookups are case-insensitive.
type FuzzyChecker struct {
	model *fuzzy.Model

	// MinWordLength is the shortest word CheckLine will flag. Fuzzy
	// matching works poorly on very short words and they are rarely
	// misspelled anyway.
	MinWordLength int

	// SkipAllCaps makes CheckLine ignore all-uppercase words, which are
	// usually acronyms like API or HTTP.
	SkipAllCaps bool
}

// NewFuzzyChecker creates a checker trained on the embedded common-word
// dictionary.
func NewFuzzyChecker() *FuzzyChecker {
	c := newEmptyChecker()
	_ = c.Train(strings.NewReader(embeddedDictionary))
	return c
}

// NewFuzzyCheckerFrom creates a checker trained on a caller-supplied word
// list, one word per line.
func NewFuzzyCheckerFrom(r io.Reader) (*FuzzyChecker, error) {
	c := newEmptyChecker()
	if err := c.Train(r); err != nil {
		return nil, err
	}
	return c, nil
}

func newEmptyChecker() *FuzzyChecker {
	model := fuzzy.NewModel()
	// Depth 2 trades a little accuracy for much better training speed.
	model.SetDepth(2)
	// Dictionary words are trained once each, so every occurrence must
	// count as an established word.
	model.SetThreshold(1)
	return &FuzzyChecker{
		model:         model,
		MinWordLength: 3,
		SkipAllCaps:   true,
	}
}

// Train adds words from r to the model, one word per line. Blank lines are
// skipped.
func (c *FuzzyChecker) Train(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			c.model.TrainWord(strings.ToLower(word))
		}
	}
	return scanner.Err()
}

// Misspelled reports whether word is absent from the trained model. The
// model returns the word itself for known spellings, a nearby correction
// for close misses, and an empty string for unknown words.
func (c *FuzzyChecker) Misspelled(word string) bool {
	if word == "" {
		return false
	}
	lower := strings.ToLower(word)
	return c.model.SpellCheck(lower) != lower
}

// Suggest returns corrections for word ordered by the model's preference.
func (c *FuzzyChecker) Suggest(word string) []string {
	return c.model.Suggestions(strings.ToLower(word), false)
}

// CheckLine scans a line for misspelled words and returns their spans.
// Tokens below MinWordLength, all-uppercase tokens (when SkipAllCaps is
// set), and tokens with no letters at all (numbers, stray symbols) are
// never flagged.
func (c *FuzzyChecker) CheckLine(lineNum int, line string) []Misspelling {
	var flagged []Misspelling
	for _, span := range wordscan.Words(line) {
		runes := []rune(span.Word)
		if len(runes) < c.MinWordLength {
			continue
		}
		if !hasLetter(runes) {
			continue
		}
		if c.SkipAllCaps && allUpper(runes) {
			continue
		}
		if c.Misspelled(span.Word) {
			flagged = append(flagged, Misspelling{Line: lineNum, Span: span})
		}
	}
	return flagged
}

func hasLetter(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func allUpper(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
