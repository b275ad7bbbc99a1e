package diagfmt

import (
	"fmt"
	"strings"

	"cfgcheck/internal/diag"
)

// Short renders every entry, hidden ones included, as
// "SEVERITY code pos: message" lines. The format is stable and used by tests.
func Short(items []diag.Diagnostic) string {
	var b strings.Builder
	for _, d := range items {
		fmt.Fprintf(&b, "%s %d %s: %s\n", d.Severity, int(d.Code), d.Pos, d.Message)
	}
	return b.String()
}
