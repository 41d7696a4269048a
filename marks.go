package phonemizer

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// defaultMarks is the punctuation alphabet used when no explicit set is given.
const defaultMarks = `;:,.!?¡¿—…"«»“”`

var (
	ErrInvalidConfiguration = errors.New("invalid punctuation configuration")
)

// DefaultMarks returns the default punctuation marks as a string.
func DefaultMarks() string {
	return defaultMarks
}

// MarkSet holds a configured punctuation alphabet and the matcher derived
// from it. A MarkSet is immutable after construction and safe to share
// across concurrent callers; changing the alphabet means building a new set.
type MarkSet struct {
	marks string
	// re is nil when the alphabet is empty, in which case nothing matches.
	re *regexp.Regexp
}

// NewMarkSet builds a MarkSet from a string of single-character marks.
// Duplicates are collapsed. The derived matcher recognizes maximal runs of
// one or more marks together with any surrounding whitespace, equivalent
// to `\s*[<marks>]+\s*`, scanned left to right without overlap.
// An empty alphabet is valid and matches nothing.
//
// Returns ErrInvalidConfiguration if marks is not a valid string of single
// characters.
func NewMarkSet(marks string) (*MarkSet, error) {
	if !utf8.ValidString(marks) {
		return nil, fmt.Errorf("%w: marks must be a valid string of single characters", ErrInvalidConfiguration)
	}
	runes := []rune(marks)
	slices.Sort(runes)
	runes = slices.Compact(runes)
	s := &MarkSet{marks: string(runes)}
	if len(runes) == 0 {
		return s, nil
	}
	re, err := regexp.Compile(`\s*[` + escapeClass(runes) + `]+\s*`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	s.re = re
	return s, nil
}

// Marks returns the deduplicated alphabet in sorted order.
func (s *MarkSet) Marks() string {
	return s.marks
}

// matches returns the byte ranges of every maximal punctuation run in
// line, left to right, non-overlapping.
func (s *MarkSet) matches(line string) [][]int {
	if s.re == nil {
		return nil
	}
	return s.re.FindAllStringIndex(line, -1)
}

// replaceAll substitutes every maximal punctuation run in line with repl.
func (s *MarkSet) replaceAll(line, repl string) string {
	if s.re == nil {
		return line
	}
	return s.re.ReplaceAllLiteralString(line, repl)
}

// escapeClass renders runes as a regexp character class body, escaping the
// characters that are special inside brackets.
func escapeClass(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
