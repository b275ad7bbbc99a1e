package value

import (
	"slices"
	"strings"
)

// Value is the typed value of a build variable: either ScalarValue or ListValue.
// The set of implementations is closed.
type Value interface {
	// Type reports the variant.
	Type() VarType
	// Raw is the unnormalized text; list elements are joined by one space.
	Raw() string
	// Normalize returns the canonical form of the value.
	Normalize() Str

	sealed()
}

// ScalarValue holds a single string.
type ScalarValue struct {
	str Str
}

// ListValue holds an ordered sequence of strings.
type ListValue struct {
	items []Str
}

var (
	_ Value = ScalarValue{}
	_ Value = ListValue{}
)

// NewScalar wraps s as a scalar value.
func NewScalar(s Str) ScalarValue {
	return ScalarValue{str: s}
}

// NewList copies items into a list value.
func NewList(items []Str) ListValue {
	return ListValue{items: slices.Clone(items)}
}

// Empty builds the empty value of the given type. A list gets one empty
// element, which still normalizes to "".
func Empty(t VarType) Value {
	if t == List {
		return ListValue{items: []Str{NewStr("")}}
	}
	return ScalarValue{str: NewStr("")}
}

func (ScalarValue) Type() VarType { return Scalar }
func (ListValue) Type() VarType   { return List }

func (ScalarValue) sealed() {}
func (ListValue) sealed()   {}

// Str returns the wrapped string.
func (v ScalarValue) Str() Str { return v.str }

// Items returns a copy of the list elements.
func (v ListValue) Items() []Str { return slices.Clone(v.items) }

// Len returns the number of list elements, empty ones included.
func (v ListValue) Len() int { return len(v.items) }

func (v ScalarValue) Raw() string { return v.str.text }

func (v ListValue) Raw() string {
	parts := make([]string, len(v.items))
	for i, it := range v.items {
		parts[i] = it.text
	}
	return strings.Join(parts, " ")
}
