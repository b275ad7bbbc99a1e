package options

import (
	"fmt"
	"io"
	"strings"

	"cfgcheck/internal/diag"
)

// WriteHelp prints the diagnostic options and the codes they accept.
// Only codes whose level can be set are listed.
func WriteHelp(w io.Writer, reg *diag.Registry) error {
	var b strings.Builder
	b.WriteString("DIAGNOSTIC OPTIONS\n")
	b.WriteString("  --hide CODE              Suppress this diagnostic.\n")
	b.WriteString("  --error CODE             Make this diagnostic fatal.\n")
	b.WriteString("  --help -h                This message.\n")
	b.WriteString("  --warning CODE           Make this diagnostic a warning.\n")
	b.WriteString("\n")
	b.WriteString("DIAGNOSTICS\n")
	b.WriteString("  The following diagnostics can be controlled on the\n")
	b.WriteString("  command line with the --hide --warning --error flags.\n")
	for _, c := range reg.Categories() {
		if !c.LevelSettable() {
			continue
		}
		help := strings.ReplaceAll(c.Help(), "\n", "\n             ")
		fmt.Fprintf(&b, "    %-3d      %s\n", int(c.Code()), help)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
