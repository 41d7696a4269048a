package phonemizer

import (
	"encoding/json"
	"fmt"
)

// Encoding is the wire form of a Preserve result. It lets the
// punctuation-free chunks travel through an external pipeline stage and
// come back for restoration, with the marks riding alongside.
type Encoding struct {
	Chunks []string `json:"chunks"`
	Marks  []Mark   `json:"marks"`
}

// Restore reconstructs the original lines from the encoding.
func (e Encoding) Restore() ([]string, error) {
	return Restore(e.Chunks, e.Marks)
}

// MarshalJSON renders the position as its string form.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "inner":
		*p = Inner
	case "begin":
		*p = Begin
	case "end":
		*p = End
	case "isolated":
		*p = Isolated
	default:
		return fmt.Errorf("%w: unknown position %q", ErrMalformedEncoding, s)
	}
	return nil
}
