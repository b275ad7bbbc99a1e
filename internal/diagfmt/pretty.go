package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"cfgcheck/internal/diag"
)

type palette struct {
	pos, err, warn, code *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		pos:  color.New(color.Bold),
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		code: color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.pos, p.err, p.warn, p.code} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	if s == diag.SevError {
		return p.err
	}
	return p.warn
}

// Pretty форматирует диагностики в человекочитаемый вид, по одной на строку:
//
//	<path>:<line>: <severity>: <message> [<code>]
//
// Entries without a position omit the location prefix. Hidden entries are
// skipped.
func Pretty(w io.Writer, items []diag.Diagnostic, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	shown, omitted := 0, 0
	for _, d := range items {
		if d.Severity == diag.SevHidden {
			continue
		}
		if opts.Max > 0 && shown >= opts.Max {
			omitted++
			continue
		}
		shown++
		if loc := formatPos(d.Pos, opts.PathMode, opts.BaseDir); loc != "" {
			if _, err := pal.pos.Fprint(w, loc+": "); err != nil {
				return err
			}
		}
		if _, err := pal.severity(d.Severity).Fprint(w, d.Severity.Label()+":"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, " %s ", truncate(d.Message, opts.Width)); err != nil {
			return err
		}
		if _, err := pal.code.Fprintf(w, "[%s]\n", d.Code.ID()); err != nil {
			return err
		}
	}
	if omitted > 0 {
		if _, err := fmt.Fprintf(w, "... %d more diagnostics not shown\n", omitted); err != nil {
			return err
		}
	}
	if opts.Summary {
		return writeSummary(w, items)
	}
	return nil
}

func writeSummary(w io.Writer, items []diag.Diagnostic) error {
	var warnings, errors int
	for _, d := range items {
		switch d.Severity {
		case diag.SevWarning:
			warnings++
		case diag.SevError:
			errors++
		}
	}
	_, err := fmt.Fprintf(w, "%d %s, %d %s\n", warnings, plural(warnings, "warning"), errors, plural(errors, "error"))
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
