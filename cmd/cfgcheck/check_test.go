package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSplitCheckArgs(t *testing.T) {
	args := []string{
		"--legacy", "a.toml",
		"--warning", "4",
		"--computed=b.msgpack",
		"--error", "1000",
		"--timings",
		"--jobs", "3",
		"-h",
	}
	got, err := splitCheckArgs(args)
	if err != nil {
		t.Fatalf("splitCheckArgs: %v", err)
	}
	if got.legacy != "a.toml" || got.computed != "b.msgpack" {
		t.Fatalf("inputs = %q, %q", got.legacy, got.computed)
	}
	if !got.timings || got.jobs == nil || *got.jobs != 3 {
		t.Fatalf("timings=%v jobs=%v", got.timings, got.jobs)
	}
	want := []string{"--warning", "4", "--error", "1000", "-h"}
	if !reflect.DeepEqual(got.diagnostics, want) {
		t.Fatalf("diagnostics = %q, want %q", got.diagnostics, want)
	}
}

func TestSplitCheckArgsKeepsMissingCodeArgument(t *testing.T) {
	got, err := splitCheckArgs([]string{"--hide", "--legacy", "l.toml", "1000"})
	if err != nil {
		t.Fatalf("splitCheckArgs: %v", err)
	}
	if got.legacy != "l.toml" {
		t.Fatalf("legacy = %q", got.legacy)
	}
	want := []string{"--hide", "--legacy", "1000"}
	if !reflect.DeepEqual(got.diagnostics, want) {
		t.Fatalf("diagnostics = %q, want %q", got.diagnostics, want)
	}

	got, err = splitCheckArgs([]string{"--error", "--max=5", "1000"})
	if err != nil {
		t.Fatalf("splitCheckArgs: %v", err)
	}
	want = []string{"--error", "--max", "1000"}
	if !reflect.DeepEqual(got.diagnostics, want) {
		t.Fatalf("diagnostics = %q, want %q", got.diagnostics, want)
	}
}

func TestSplitCheckArgsErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--legacy"}, "--legacy requires a value"},
		{[]string{"--jobs", "many"}, "non-negative number"},
		{[]string{"--max=-1"}, "non-negative number"},
		{[]string{"--timings=maybe"}, "invalid boolean"},
	}
	for _, tt := range tests {
		_, err := splitCheckArgs(tt.args)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("splitCheckArgs(%q) error = %v, want %q", tt.args, err, tt.want)
		}
	}
}

func runCheckForTest(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfgcheck.toml")
	if err := os.WriteFile(cfgPath, nil, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetContext(context.Background())
	err := runCheck(cmd, append([]string{"--config", cfgPath, "--color", "off"}, args...))
	return out.String(), err
}

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunCheck(t *testing.T) {
	legacy := writeSnapshot(t, "legacy.toml", "[[var]]\nname = \"A\"\ntype = \"scalar\"\nvalue = \"x\"\n")
	computed := writeSnapshot(t, "computed.toml", "[[var]]\nname = \"A\"\nvalue = \"y\"\n")

	out, err := runCheckForTest(t, "--legacy", legacy, "--computed", computed, "--format", "short")
	if err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	want := "WARNING 1000 <synthetic>: computed value differs from legacy evaluator for SCALAR variable A:\n" +
		"WARNING 1000 <synthetic>: original: \"x\"\n" +
		"WARNING 1000 <synthetic>: updated: \"y\"\n"
	if out != want {
		t.Fatalf("output mismatch:\n got: %q\nwant: %q", out, want)
	}

	_, err = runCheckForTest(t, "--legacy", legacy, "--computed", computed, "--format", "short", "--error", "1000")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("--error 1000 should fail the run, got %v", err)
	}
}

func TestRunCheckHelp(t *testing.T) {
	out, err := runCheckForTest(t, "--help")
	if err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	for _, want := range []string{"INPUT OPTIONS", "DIAGNOSTIC OPTIONS", "1000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCheckUnknownOption(t *testing.T) {
	out, err := runCheckForTest(t, "--bogus")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("unknown option should be fatal, got %v", err)
	}
	if !strings.Contains(out, "Unknown command line argument: --bogus") {
		t.Fatalf("output = %q", out)
	}
}

func TestRunCheckCodeOptionMissingNumber(t *testing.T) {
	legacy := writeSnapshot(t, "legacy.toml", "[[var]]\nname = \"A\"\ntype = \"scalar\"\nvalue = \"x\"\n")
	computed := writeSnapshot(t, "computed.toml", "[[var]]\nname = \"A\"\nvalue = \"x\"\n")

	out, err := runCheckForTest(t, "--format", "short", "--hide", "--legacy", legacy, "--computed", computed, "1000")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("missing code number should be fatal, got %v", err)
	}
	if !strings.Contains(out, "--hide requires a numeric argument.") {
		t.Fatalf("output = %q", out)
	}
}

func TestUseColor(t *testing.T) {
	if on, err := useColor("on", os.Stdout); err != nil || !on {
		t.Fatalf("on: %v %v", on, err)
	}
	if off, err := useColor("off", os.Stdout); err != nil || off {
		t.Fatalf("off: %v %v", off, err)
	}
	if _, err := useColor("rainbow", os.Stdout); err == nil {
		t.Fatalf("expected an error for an invalid mode")
	}
}

func TestUseColorFollowsWriter(t *testing.T) {
	var buf bytes.Buffer
	for _, mode := range []string{"", "auto"} {
		if on, err := useColor(mode, &buf); err != nil || on {
			t.Fatalf("%q on a buffer: %v %v", mode, on, err)
		}
	}
	if on, err := useColor("on", &buf); err != nil || !on {
		t.Fatalf("on with a buffer: %v %v", on, err)
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if on, err := useColor("auto", f); err != nil || on {
		t.Fatalf("auto on a regular file: %v %v", on, err)
	}
}

func TestRunCheckAutoColorOnBuffer(t *testing.T) {
	legacy := writeSnapshot(t, "legacy.toml", "[[var]]\nname = \"A\"\ntype = \"scalar\"\nvalue = \"x\"\n")
	computed := writeSnapshot(t, "computed.toml", "[[var]]\nname = \"A\"\nvalue = \"y\"\n")

	out, err := runCheckForTest(t, "--legacy", legacy, "--computed", computed, "--format", "pretty", "--color", "auto")
	if err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if !strings.Contains(out, "computed value differs") {
		t.Fatalf("output = %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("auto colour wrote escapes to a buffer: %q", out)
	}
}
