package phonemizer

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrMalformedEncoding = errors.New("malformed punctuation encoding")
)

// Restore reinserts punctuation into chunks, reversing Preserve:
//
//	["hello", "my world"], [{0 ", " inner} {0 "!" end}] -> ["hello, my world!"]
//
// Restore walks the chunk and mark sequences together with a logical line
// counter, splicing each mark back at the position it was recorded with.
// It is the exact inverse of Preserve for any encoding Preserve produced;
// the chunks may have been rewritten in between as long as their count and
// line structure are unchanged. Encodings from any other source fail with
// ErrMalformedEncoding when the walk cannot place a mark.
func Restore(chunks []string, marks []Mark) ([]string, error) {
	buf := slices.Clone(chunks)
	lines := make([]string, 0, len(chunks))
	c, n := 0, 0
	for i := 0; i < len(marks); {
		m := marks[i]
		switch {
		case m.LineIndex < n:
			return nil, fmt.Errorf("%w: mark %d references already finished line %d", ErrMalformedEncoding, i, m.LineIndex)
		case m.LineIndex > n:
			// no mark left on the current line: the front chunk is a
			// whole line on its own
			if c >= len(buf) {
				return nil, fmt.Errorf("%w: mark %d references line %d past the last chunk", ErrMalformedEncoding, i, m.LineIndex)
			}
			lines = append(lines, buf[c])
			c++
			n++
		default:
			switch m.Position {
			case Begin:
				if c >= len(buf) {
					return nil, fmt.Errorf("%w: mark %d opens line %d but no chunk is left", ErrMalformedEncoding, i, m.LineIndex)
				}
				buf[c] = m.Text + buf[c]
			case End:
				if c >= len(buf) {
					return nil, fmt.Errorf("%w: mark %d closes line %d but no chunk is left", ErrMalformedEncoding, i, m.LineIndex)
				}
				lines = append(lines, buf[c]+m.Text)
				c++
				n++
			case Isolated:
				lines = append(lines, m.Text)
				n++
			case Inner:
				if c+1 >= len(buf) {
					return nil, fmt.Errorf("%w: mark %d splices line %d but fewer than two chunks are left", ErrMalformedEncoding, i, m.LineIndex)
				}
				buf[c+1] = buf[c] + m.Text + buf[c+1]
				c++
			default:
				return nil, fmt.Errorf("%w: mark %d carries unknown position %d", ErrMalformedEncoding, i, m.Position)
			}
			i++
		}
	}
	// remaining chunks are unpunctuated lines
	return append(lines, buf[c:]...), nil
}
