package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"cfgcheck/internal/diag"
)

var codeHeaders = []string{"CODE", "DEFAULT", "CURRENT", "SETTABLE", "DESCRIPTION"}

func codeRow(c *diag.Category) []string {
	settable := "no"
	if c.LevelSettable() {
		settable = "yes"
	}
	return []string{
		c.Code().ID(),
		c.DefaultSeverity().Label(),
		c.Severity().Label(),
		settable,
		strings.Join(strings.Fields(c.Help()), " "),
	}
}

// CodeTable lists every category. styled draws a bordered lipgloss table;
// otherwise the output is plain aligned columns.
func CodeTable(w io.Writer, cats []*diag.Category, styled bool) error {
	rows := make([][]string, len(cats))
	for i, c := range cats {
		rows[i] = codeRow(c)
	}
	if styled {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers(codeHeaders...).
			Rows(rows...)
		_, err := fmt.Fprintln(w, t.String())
		return err
	}
	if _, err := fmt.Fprintf(w, "%-6s %-8s %-8s %-9s %s\n", codeHeaders[0], codeHeaders[1], codeHeaders[2], codeHeaders[3], codeHeaders[4]); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-6s %-8s %-8s %-9s %s\n", r[0], r[1], r[2], r[3], r[4]); err != nil {
			return err
		}
	}
	return nil
}
