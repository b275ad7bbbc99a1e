package diag

import (
	"fmt"
	"strings"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevHidden diagnostics are recorded but not shown.
	SevHidden Severity = iota
	// SevWarning diagnostics are shown and do not fail the run.
	SevWarning
	// SevError diagnostics are fatal.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevHidden:
		return "HIDDEN"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label is the lower-case form used in rendered output.
func (s Severity) Label() string {
	return strings.ToLower(s.String())
}

// ParseSeverity converts hidden|warning|error to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "hidden", "hide":
		return SevHidden, nil
	case "warning", "warn":
		return SevWarning, nil
	case "error":
		return SevError, nil
	default:
		return SevHidden, fmt.Errorf("invalid severity: %q (expected: hidden|warning|error)", s)
	}
}
