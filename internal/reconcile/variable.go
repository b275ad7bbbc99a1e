package reconcile

import (
	"cfgcheck/internal/value"
)

// Variable is the before / after state of one build variable.
type Variable struct {
	Name string
	Type value.VarType

	// Before is the legacy value; nil when the legacy side never set it.
	Before *value.Str
	// After is the computed value, or the empty placeholder when removed.
	After value.Value

	NormalizedBefore value.Normalized
	NormalizedAfter  value.Normalized
}

// NewVariable builds a record and normalizes both sides.
func NewVariable(name string, typ value.VarType, before *value.Str, after value.Value) Variable {
	return Variable{
		Name:             name,
		Type:             typ,
		Before:           before,
		After:            after,
		NormalizedBefore: value.NormalizeStr(before),
		NormalizedAfter:  value.NormalizeValue(after),
	}
}

// IsSame reports whether the normalized forms match. Exactly one absent side
// is never the same, even when the other side is empty.
func (v Variable) IsSame() bool {
	return v.NormalizedBefore.Equal(v.NormalizedAfter)
}
