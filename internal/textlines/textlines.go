// Package textlines splits multi-line text into the ordered line sequence
// the punctuation core operates on, and joins it back.
package textlines

import "strings"

// Split breaks text into ordered lines, accepting both "\n" and "\r\n"
// terminators. A single trailing newline does not produce a phantom empty
// final line.
func Split(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// Join reassembles lines with "\n".
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}
