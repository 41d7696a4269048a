package phonemizer

import (
	"fmt"
	"strings"
)

// Position classifies where a punctuation run sits within its line.
type Position uint8

const (
	// Inner marks sit between two text chunks of the same line.
	Inner Position = iota
	// Begin marks open their line.
	Begin
	// End marks terminate their line.
	End
	// Isolated marks make up their whole line.
	Isolated
)

func (p Position) String() string {
	switch p {
	case Inner:
		return "inner"
	case Begin:
		return "begin"
	case End:
		return "end"
	case Isolated:
		return "isolated"
	}
	return "unknown"
}

// Mark records one punctuation run removed by Preserve: the line it came
// from, the exact matched text including any whitespace the matcher
// consumed, and its position within the line. The ordered sequence of
// marks is the only side channel Restore needs to invert Preserve.
// A Mark is never mutated after creation.
type Mark struct {
	LineIndex int      `json:"line"`
	Text      string   `json:"text"`
	Position  Position `json:"position"`
}

// Punctuation preserves or removes punctuation in line-structured text.
// Pipeline stages behave differently with punctuation: some drop it
// silently, others reject the input outright. Punctuation hides the marks
// from such a stage and restores them afterwards.
//
// A Punctuation is immutable after construction and safe for concurrent
// use; all of its methods are pure functions of their inputs and the
// configured alphabet.
type Punctuation struct {
	set *MarkSet
}

type Option func(*Punctuation) error

// WithMarks configures the punctuation alphabet from a string of
// single-character marks.
func WithMarks(marks string) Option {
	return func(p *Punctuation) error {
		set, err := NewMarkSet(marks)
		if err != nil {
			return err
		}
		p.set = set
		return nil
	}
}

// WithMarkSet configures a prebuilt alphabet.
func WithMarkSet(set *MarkSet) Option {
	return func(p *Punctuation) error {
		if set == nil {
			return fmt.Errorf("%w: nil mark set", ErrInvalidConfiguration)
		}
		p.set = set
		return nil
	}
}

// New initializes a punctuation processor. Without options it uses the
// DefaultMarks alphabet.
func New(opts ...Option) (*Punctuation, error) {
	p := new(Punctuation)
	if err := p.init(opts...); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Punctuation) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return err
		}
	}
	if p.set == nil {
		set, err := NewMarkSet(defaultMarks)
		if err != nil {
			return err
		}
		p.set = set
	}
	return nil
}

// MarkSet returns the configured alphabet.
func (p *Punctuation) MarkSet() *MarkSet {
	return p.set
}

// Preserve removes punctuation from lines while recording everything
// needed to put it back:
//
//	"hello, my world!" -> ["hello", "my world"], [{0 ", " inner} {0 "!" end}]
//
// Chunks that come out empty are dropped from the result; line accounting
// rides on each mark's LineIndex, so the dropped chunks never
// desynchronize Restore.
func (p *Punctuation) Preserve(lines []string) (chunks []string, marks []Mark) {
	for n, line := range lines {
		lineChunks, lineMarks := p.preserveLine(line, n)
		for _, c := range lineChunks {
			if c != "" {
				chunks = append(chunks, c)
			}
		}
		marks = append(marks, lineMarks...)
	}
	return chunks, marks
}

// PreserveLine treats a single line as a one-element sequence.
func (p *Punctuation) PreserveLine(line string) ([]string, []Mark) {
	return p.Preserve([]string{line})
}

func (p *Punctuation) preserveLine(line string, n int) ([]string, []Mark) {
	spans := p.set.matches(line)
	if len(spans) == 0 {
		return []string{line}, nil
	}

	// the line is made only of punctuation marks
	if len(spans) == 1 && spans[0][0] == 0 && spans[0][1] == len(line) {
		return nil, []Mark{{LineIndex: n, Text: line, Position: Isolated}}
	}

	// classify each run: begin (opens the line), end (closes it), or
	// inner. A run that is first or last in the match list but does not
	// touch the line boundary stays inner.
	marks := make([]Mark, 0, len(spans))
	for i, span := range spans {
		text := line[span[0]:span[1]]
		position := Inner
		if i == 0 && strings.HasPrefix(line, text) {
			position = Begin
		} else if i == len(spans)-1 && strings.HasSuffix(line, text) {
			position = End
		}
		marks = append(marks, Mark{LineIndex: n, Text: text, Position: position})
	}

	// split the line into sublines, removing one recorded run at a time
	chunks := make([]string, 0, len(spans)+1)
	rest := line
	for _, m := range marks {
		prefix, suffix, _ := strings.Cut(rest, m.Text)
		chunks = append(chunks, prefix)
		rest = suffix
	}
	return append(chunks, rest), marks
}

// Preserve removes punctuation from lines with the specified options.
// This is a convenience function that creates a Punctuation instance and
// calls its Preserve method.
func Preserve(lines []string, opts ...Option) ([]string, []Mark, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, nil, err
	}
	chunks, marks := p.Preserve(lines)
	return chunks, marks, nil
}

// Remove strips punctuation from lines with the specified options.
// This is a convenience function that creates a Punctuation instance and
// calls its Remove method.
func Remove(lines []string, opts ...Option) ([]string, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return p.Remove(lines), nil
}
