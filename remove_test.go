package phonemizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	test := []struct {
		name string
		line string
		want string
	}{
		{name: "inner and end", line: "hello, my world!", want: "hello my world"},
		{name: "no punctuation", line: "hello world", want: "hello world"},
		{name: "only punctuation", line: "!!!", want: ""},
		{name: "leading and trailing", line: "¡Hola!", want: "Hola"},
		{name: "runs collapse to one space", line: "a...b", want: "a b"},
		{name: "surrounding whitespace goes too", line: "a , b", want: "a b"},
		{name: "empty line", line: "", want: ""},
		{name: "whitespace only", line: "   ", want: ""},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.RemoveLine(tt.line))
		})
	}

	t.Run("sequence keeps its shape", func(t *testing.T) {
		lines := []string{"Hi, there.", "!!!", "ok"}
		assert.Equal(t, []string{"Hi there", "", "ok"}, p.Remove(lines))
	})

	t.Run("idempotent", func(t *testing.T) {
		lines := []string{"hello, my world!", "…", "a , b", "  padded  ", "plain"}
		once := p.Remove(lines)
		assert.Equal(t, once, p.Remove(once))
	})

	t.Run("empty alphabet only trims", func(t *testing.T) {
		out, err := Remove([]string{"  keep, marks!  "}, WithMarks(""))
		require.NoError(t, err)
		assert.Equal(t, []string{"keep, marks!"}, out)
	})
}
