// Package options resolves the diagnostic-control command line.
//
// The grammar is a single, order-independent pass:
//
//	--hide CODE      suppress diagnostics with CODE
//	--warning CODE   make CODE a warning
//	--error CODE     make CODE fatal
//	--help, -h       select the help action
//
// Every problem is reported into the diag.Registry; Parse never fails.
package options

import (
	"fmt"
	"strconv"
	"strings"

	"cfgcheck/internal/diag"
)

// Action selects what the caller should do after parsing.
type Action uint8

const (
	ActionDefault Action = iota
	ActionHelp
)

func (a Action) String() string {
	if a == ActionHelp {
		return "help"
	}
	return "default"
}

// Options is the result of parsing.
type Options struct {
	Action Action
}

// errStop aborts parsing; its message becomes a CommandLine diagnostic.
type errStop struct{ msg string }

func (e errStop) Error() string { return e.msg }

type parser struct {
	reg  *diag.Registry
	args []string
	idx  int
	res  Options
}

// Parse applies severity overrides from args to reg and returns the selected
// action. Malformed input is reported as diag.CommandLine and stops parsing.
func Parse(reg *diag.Registry, args []string) Options {
	p := &parser{reg: reg, args: args}
	if err := p.run(); err != nil {
		reg.Emit(diag.CommandLine, err.Error())
	}
	return p.res
}

func (p *parser) run() error {
	for ; p.idx < len(p.args); p.idx++ {
		arg := p.args[p.idx]
		switch arg {
		case "--hide":
			if err := p.handleCode(arg, diag.SevHidden); err != nil {
				return err
			}
		case "--warning":
			if err := p.handleCode(arg, diag.SevWarning); err != nil {
				return err
			}
		case "--error":
			if err := p.handleCode(arg, diag.SevError); err != nil {
				return err
			}
		case "--help", "-h":
			// help wins unless something fatal already happened; then keep
			// going so the failure is still surfaced
			if !p.reg.HadFatal() {
				p.res.Action = ActionHelp
				return nil
			}
		default:
			return errStop{msg: "Unknown command line argument: " + arg}
		}
	}
	return nil
}

func (p *parser) nextNonFlag() (string, bool) {
	if p.idx >= len(p.args)-1 {
		return "", false
	}
	next := p.args[p.idx+1]
	if strings.HasPrefix(next, "-") {
		return "", false
	}
	p.idx++
	return next, true
}

func (p *parser) requireNumber(arg string) (int, error) {
	val, ok := p.nextNonFlag()
	if !ok {
		return 0, errStop{msg: arg + " requires a numeric argument."}
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, errStop{msg: fmt.Sprintf("%s requires a numeric argument. found: %s", arg, val)}
	}
	return n, nil
}

func (p *parser) handleCode(arg string, sev diag.Severity) error {
	code, err := p.requireNumber(arg)
	if err != nil {
		return err
	}
	// неизвестные и фиксированные коды регистр сообщает сам
	p.reg.SetSeverity(diag.Code(code), sev)
	return nil
}
