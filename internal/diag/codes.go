package diag

import (
	"fmt"
)

// Code identifies a class of diagnostics. Codes are stable across releases
// because users pass them on the command line.
type Code int

const (
	UnknownCode Code = 0

	// Командная строка и конфигурация
	CommandLine            Code = 1
	UnknownCommandLineCode Code = 2

	// Чтение снимков
	SnapshotRead    Code = 3
	SnapshotAnomaly Code = 4
	ConfigFile      Code = 5

	UntypedVariable Code = 6

	// Сверка с эталоном
	DifferentFromReference Code = 1000
)

type categoryDef struct {
	code     Code
	settable bool
	level    Severity
	help     string
}

// catalog is the fixed set of categories a Registry starts with.
var catalog = []categoryDef{
	{CommandLine, false, SevError,
		"Error on the command line."},
	{UnknownCommandLineCode, true, SevWarning,
		"Passing unknown diagnostic codes on the command line. Downgrade to hidden\n" +
			"for forward compatibility with newer releases."},
	{SnapshotRead, false, SevError,
		"Error reading a variable snapshot."},
	{SnapshotAnomaly, true, SevWarning,
		"Anomalies in a variable snapshot, such as duplicate variables."},
	{ConfigFile, false, SevError,
		"Error in the cfgcheck.toml configuration."},
	{UntypedVariable, true, SevHidden,
		"A variable has no declared type in either snapshot."},
	{DifferentFromReference, true, SevWarning,
		"The cross-check between the legacy make evaluator and the new\n" +
			"configuration engine differ."},
}

// ID returns the printable form of the code.
func (c Code) ID() string {
	return fmt.Sprintf("%d", int(c))
}

// Title returns the first line of the code's help text.
func (c Code) Title() string {
	for _, def := range catalog {
		if def.code == c {
			return firstLine(def.help)
		}
	}
	return "Unknown diagnostic"
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
