package phonemizer

import "strings"

// Remove returns lines with every maximal punctuation run replaced by a
// single space and each line trimmed of leading and trailing whitespace.
// The marks are discarded for good; applying Remove twice yields the same
// result as applying it once.
func (p *Punctuation) Remove(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = p.RemoveLine(line)
	}
	return out
}

// RemoveLine is Remove for a single line.
func (p *Punctuation) RemoveLine(line string) string {
	return strings.TrimSpace(p.set.replaceAll(line, " "))
}
