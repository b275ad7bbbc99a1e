package value

import (
	"strings"

	"cfgcheck/internal/source"
)

// Normalized is a normalized value that may be absent.
// The zero Normalized is absent.
type Normalized struct {
	str     Str
	present bool
}

// Absent is the normalized form of a missing value.
var Absent = Normalized{}

// Present wraps an already normalized Str.
func Present(s Str) Normalized {
	return Normalized{str: s, present: true}
}

// Get returns the string and whether it is present.
func (n Normalized) Get() (Str, bool) { return n.str, n.present }

// IsPresent reports whether a value exists.
func (n Normalized) IsPresent() bool { return n.present }

// Equal is true when both sides are absent, or both present with the same text.
// Present-but-empty never equals absent.
func (n Normalized) Equal(other Normalized) bool {
	if n.present != other.present {
		return false
	}
	return !n.present || n.str.Equal(other.str)
}

// Quoted renders "text" for present values and null for absent ones.
func (n Normalized) Quoted() string {
	if !n.present {
		return "null"
	}
	return `"` + n.str.text + `"`
}

// NormalizeText collapses whitespace runs into single spaces and trims the ends.
// Only ASCII whitespace separates words; NBSP and other Unicode spaces are
// ordinary bytes to make and stay part of the word.
func NormalizeText(s string) string {
	return strings.Join(words(s), " ")
}

func words(s string) []string {
	return strings.FieldsFunc(s, isMakeSpace)
}

func isMakeSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// NormalizeStr normalizes a possibly missing scalar; nil is absent.
func NormalizeStr(s *Str) Normalized {
	if s == nil {
		return Absent
	}
	return Present(s.Normalize())
}

// NormalizeValue normalizes a possibly missing value; nil is absent.
func NormalizeValue(v Value) Normalized {
	if v == nil {
		return Absent
	}
	return Present(v.Normalize())
}

// Normalize collapses whitespace and keeps the position.
func (s Str) Normalize() Str {
	return Str{text: NormalizeText(s.text), pos: s.pos}
}

func (v ScalarValue) Normalize() Str {
	return v.str.Normalize()
}

// Normalize trims each element, drops the empty ones and joins the rest with
// single spaces. The position is that of the first surviving element.
func (v ListValue) Normalize() Str {
	words := make([]string, 0, len(v.items))
	pos := source.Synthetic
	for _, it := range v.items {
		// элементы могут содержать внутренние пробелы
		w := NormalizeText(it.text)
		if w == "" {
			continue
		}
		if len(words) == 0 {
			pos = it.pos
		}
		words = append(words, w)
	}
	return Str{text: strings.Join(words, " "), pos: pos}
}
