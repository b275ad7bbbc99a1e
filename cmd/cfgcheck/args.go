package main

import (
	"fmt"
	"strconv"
	"strings"
)

// checkArgs are the arguments consumed by the check command itself. Every
// other token is a diagnostic option and keeps its position.
type checkArgs struct {
	legacy         string
	computed       string
	config         string
	snapshotFormat string
	format         string
	color          string
	trace          string
	traceLevel     string
	cpuProfile     string
	memProfile     string
	jobs           *int
	max            *int
	width          *int
	timings        bool

	diagnostics []string
}

type argKind uint8

const (
	argString argKind = iota
	argInt
	argBool
)

var checkArgKinds = map[string]argKind{
	"--legacy":          argString,
	"--computed":        argString,
	"--config":          argString,
	"--snapshot-format": argString,
	"--format":          argString,
	"--color":           argString,
	"--trace":           argString,
	"--trace-level":     argString,
	"--cpuprofile":      argString,
	"--memprofile":      argString,
	"--jobs":            argInt,
	"--max":             argInt,
	"--width":           argInt,
	"--timings":         argBool,
}

// splitCheckArgs separates the check command's own flags from diagnostic
// options. Both "--flag value" and "--flag=value" are accepted.
//
// A check flag sitting where a code option expects its number stays in the
// diagnostic list by name, so "--hide --legacy x 1000" still reports that
// --hide lacks its argument.
func splitCheckArgs(args []string) (*checkArgs, error) {
	out := &checkArgs{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, inline, hasInline := strings.Cut(arg, "=")
		kind, ok := checkArgKinds[name]
		if !ok {
			out.diagnostics = append(out.diagnostics, arg)
			continue
		}
		if out.awaitingCode() {
			out.diagnostics = append(out.diagnostics, name)
		}
		if kind == argBool {
			if hasInline {
				b, err := strconv.ParseBool(inline)
				if err != nil {
					return nil, fmt.Errorf("%s: invalid boolean %q", name, inline)
				}
				out.timings = b
			} else {
				out.timings = true
			}
			continue
		}

		val := inline
		if !hasInline {
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a value", name)
			}
			i++
			val = args[i]
		}
		if kind == argInt {
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%s requires a non-negative number, found: %s", name, val)
			}
			out.setInt(name, n)
			continue
		}
		out.setString(name, val)
	}
	return out, nil
}

// awaitingCode reports whether the last diagnostic token is a code option
// still waiting for its number.
func (a *checkArgs) awaitingCode() bool {
	if len(a.diagnostics) == 0 {
		return false
	}
	switch a.diagnostics[len(a.diagnostics)-1] {
	case "--hide", "--warning", "--error":
		return true
	}
	return false
}

func (a *checkArgs) setString(name, val string) {
	switch name {
	case "--legacy":
		a.legacy = val
	case "--computed":
		a.computed = val
	case "--config":
		a.config = val
	case "--snapshot-format":
		a.snapshotFormat = val
	case "--format":
		a.format = val
	case "--color":
		a.color = val
	case "--trace":
		a.trace = val
	case "--trace-level":
		a.traceLevel = val
	case "--cpuprofile":
		a.cpuProfile = val
	case "--memprofile":
		a.memProfile = val
	}
}

func (a *checkArgs) setInt(name string, n int) {
	switch name {
	case "--jobs":
		a.jobs = &n
	case "--max":
		a.max = &n
	case "--width":
		a.width = &n
	}
}
