package value

import (
	"strings"

	"cfgcheck/internal/source"
)

// Str is a string annotated with the location it came from.
type Str struct {
	text string
	pos  source.Pos
}

// NewStr builds a synthetic Str.
func NewStr(text string) Str {
	return Str{text: text}
}

// NewStrAt builds a Str read from pos.
func NewStrAt(pos source.Pos, text string) Str {
	return Str{text: text, pos: pos}
}

// Text returns the string content.
func (s Str) Text() string { return s.text }

// Pos returns the provenance of the string.
func (s Str) Pos() source.Pos { return s.pos }

func (s Str) String() string { return s.text }

// Equal compares content only.
func (s Str) Equal(other Str) bool {
	return s.text == other.text
}

// Compare orders by content only.
func (s Str) Compare(other Str) int {
	return strings.Compare(s.text, other.text)
}
