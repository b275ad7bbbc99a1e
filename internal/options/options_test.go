package options

import (
	"strings"
	"testing"

	"cfgcheck/internal/diag"
)

func severityOf(t *testing.T, reg *diag.Registry, code diag.Code) diag.Severity {
	t.Helper()
	c, ok := reg.Category(code)
	if !ok {
		t.Fatalf("category %d missing", code)
	}
	return c.Severity()
}

func TestParseHideSettable(t *testing.T) {
	reg := diag.NewRegistry()
	opts := Parse(reg, []string{"--hide", "1000"})
	if opts.Action != ActionDefault {
		t.Fatalf("action = %v, want default", opts.Action)
	}
	if got := severityOf(t, reg, diag.DifferentFromReference); got != diag.SevHidden {
		t.Fatalf("severity = %v, want hidden", got)
	}
	if reg.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", reg.Items())
	}
}

func TestParseWarningAndError(t *testing.T) {
	reg := diag.NewRegistry()
	Parse(reg, []string{"--error", "1000", "--warning", "6"})
	if got := severityOf(t, reg, diag.DifferentFromReference); got != diag.SevError {
		t.Fatalf("1000 severity = %v", got)
	}
	if got := severityOf(t, reg, diag.UntypedVariable); got != diag.SevWarning {
		t.Fatalf("6 severity = %v", got)
	}
}

func TestParseLastFlagWins(t *testing.T) {
	reg := diag.NewRegistry()
	Parse(reg, []string{"--error", "1000", "--hide", "1000"})
	if got := severityOf(t, reg, diag.DifferentFromReference); got != diag.SevHidden {
		t.Fatalf("severity = %v, want hidden", got)
	}
}

func TestParseNonNumeric(t *testing.T) {
	reg := diag.NewRegistry()
	opts := Parse(reg, []string{"--hide", "abc", "--error", "1000"})
	if opts.Action != ActionDefault {
		t.Fatalf("action = %v", opts.Action)
	}
	items := reg.Items()
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1: %+v", len(items), items)
	}
	if items[0].Code != diag.CommandLine || items[0].Severity != diag.SevError {
		t.Fatalf("unexpected diagnostic %+v", items[0])
	}
	if !strings.Contains(items[0].Message, "requires a numeric argument") {
		t.Fatalf("message = %q", items[0].Message)
	}
	// разбор остановился до --error
	if got := severityOf(t, reg, diag.DifferentFromReference); got != diag.SevWarning {
		t.Fatalf("parsing continued after error: severity = %v", got)
	}
}

func TestParseMissingArgument(t *testing.T) {
	cases := [][]string{
		{"--error"},
		{"--warning", "--hide", "1000"},
		{"--hide", "-3"},
	}
	for _, args := range cases {
		reg := diag.NewRegistry()
		Parse(reg, args)
		items := reg.Items()
		if len(items) != 1 || items[0].Code != diag.CommandLine {
			t.Fatalf("Parse(%q) diagnostics = %+v", args, items)
		}
		if items[0].Message != args[0]+" requires a numeric argument." {
			t.Fatalf("Parse(%q) message = %q", args, items[0].Message)
		}
	}
}

func TestParseUnknownArgument(t *testing.T) {
	reg := diag.NewRegistry()
	Parse(reg, []string{"--frobnicate", "--hide", "1000"})
	items := reg.Items()
	if len(items) != 1 || items[0].Message != "Unknown command line argument: --frobnicate" {
		t.Fatalf("diagnostics = %+v", items)
	}
	if !reg.HadFatal() {
		t.Fatalf("unknown argument must be fatal")
	}
	if got := severityOf(t, reg, diag.DifferentFromReference); got != diag.SevWarning {
		t.Fatalf("parsing continued after unknown argument")
	}
}

func TestParseUnknownCodeContinues(t *testing.T) {
	reg := diag.NewRegistry()
	opts := Parse(reg, []string{"--hide", "4242", "--error", "1000"})
	if opts.Action != ActionDefault {
		t.Fatalf("action = %v", opts.Action)
	}
	items := reg.Items()
	if len(items) != 1 || items[0].Code != diag.UnknownCommandLineCode || items[0].Severity != diag.SevWarning {
		t.Fatalf("diagnostics = %+v", items)
	}
	if reg.HadFatal() {
		t.Fatalf("unknown code must not be fatal")
	}
	if got := severityOf(t, reg, diag.DifferentFromReference); got != diag.SevError {
		t.Fatalf("parsing stopped after unknown code")
	}
}

func TestParseFixedCodeContinues(t *testing.T) {
	reg := diag.NewRegistry()
	Parse(reg, []string{"--hide", "1", "--hide", "1000"})
	items := reg.Items()
	if len(items) != 1 || items[0].Code != diag.CommandLine {
		t.Fatalf("diagnostics = %+v", items)
	}
	if got := severityOf(t, reg, diag.DifferentFromReference); got != diag.SevHidden {
		t.Fatalf("parsing stopped after fixed code")
	}
}

func TestParseHelp(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		reg := diag.NewRegistry()
		opts := Parse(reg, []string{flag, "--bogus"})
		if opts.Action != ActionHelp {
			t.Fatalf("%s: action = %v, want help", flag, opts.Action)
		}
		if reg.Len() != 0 {
			t.Fatalf("%s: parsing did not stop: %+v", flag, reg.Items())
		}
	}
}

func TestParseHelpIgnoredAfterFatal(t *testing.T) {
	reg := diag.NewRegistry()
	opts := Parse(reg, []string{"--hide", "1", "--help", "--error", "1000"})
	if opts.Action != ActionDefault {
		t.Fatalf("action = %v, want default", opts.Action)
	}
	if got := severityOf(t, reg, diag.DifferentFromReference); got != diag.SevError {
		t.Fatalf("parsing must continue past ignored --help")
	}
}

func TestParseEmpty(t *testing.T) {
	reg := diag.NewRegistry()
	if opts := Parse(reg, nil); opts.Action != ActionDefault || reg.Len() != 0 {
		t.Fatalf("empty args: %+v, %+v", opts, reg.Items())
	}
}

func TestWriteHelpListsSettableCodes(t *testing.T) {
	var b strings.Builder
	if err := WriteHelp(&b, diag.NewRegistry()); err != nil {
		t.Fatalf("WriteHelp: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "    1000      The cross-check between") {
		t.Fatalf("missing code 1000 line:\n%s", out)
	}
	if !strings.Contains(out, "\n             configuration engine differ.") {
		t.Fatalf("multi-line help not indented:\n%s", out)
	}
	if strings.Contains(out, "Error on the command line.") {
		t.Fatalf("fixed code listed:\n%s", out)
	}
	if strings.Index(out, "    2  ") > strings.Index(out, "    1000") {
		t.Fatalf("codes not sorted:\n%s", out)
	}
}
