package diag

import (
	"cfgcheck/internal/source"
)

// Diagnostic is one emitted entry. Severity is the level that was in
// effect for the category at the moment of emission.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Pos      source.Pos // source.Synthetic when the entry has no location
}

// HasPos reports whether the diagnostic is attached to a location.
func (d Diagnostic) HasPos() bool {
	return !d.Pos.IsSynthetic()
}
