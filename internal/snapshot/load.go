package snapshot

import (
	"fmt"
	"strings"

	"cfgcheck/internal/diag"
	"cfgcheck/internal/value"
)

// Legacy is the snapshot of the legacy evaluator: every variable is a plain
// string, list words already joined.
type Legacy struct {
	Vars  map[string]value.Str
	Types map[string]value.VarType
}

// Computed is the snapshot of the new configuration engine.
type Computed struct {
	Vars  map[string]value.Value
	Types map[string]value.VarType
}

// Options select the snapshot encoding; FormatAuto uses the file extension.
type Options struct {
	Format Format
}

// LoadLegacy reads a legacy snapshot. Anomalies go to r; read and decode
// failures are returned.
func LoadLegacy(path string, opts Options, r diag.Reporter) (*Legacy, error) {
	doc, err := readDocument(path, opts.Format, r)
	if err != nil {
		return nil, err
	}
	out := &Legacy{
		Vars:  make(map[string]value.Str, len(doc.Vars)),
		Types: make(map[string]value.VarType),
	}
	for _, e := range accepted(doc, r) {
		if t, ok := declaredType(&e, r); ok {
			out.Types[e.Name] = t
		}
		if e.Value != nil {
			out.Vars[e.Name] = value.NewStrAt(e.pos(), *e.Value)
			continue
		}
		strs := e.strs()
		texts := make([]string, len(strs))
		for i, s := range strs {
			texts[i] = s.Text()
		}
		out.Vars[e.Name] = value.NewStrAt(e.pos(), strings.Join(texts, " "))
	}
	return out, nil
}

// LoadComputed reads a snapshot of the new engine. A variable without a
// declared type takes the type of its shape.
func LoadComputed(path string, opts Options, r diag.Reporter) (*Computed, error) {
	doc, err := readDocument(path, opts.Format, r)
	if err != nil {
		return nil, err
	}
	out := &Computed{
		Vars:  make(map[string]value.Value, len(doc.Vars)),
		Types: make(map[string]value.VarType),
	}
	for _, e := range accepted(doc, r) {
		var v value.Value
		if e.Value != nil {
			v = value.NewScalar(value.NewStrAt(e.pos(), *e.Value))
		} else {
			v = value.NewList(e.strs())
		}
		out.Vars[e.Name] = v

		t, ok := declaredType(&e, r)
		if !ok {
			t = v.Type()
		} else if t == value.Scalar && v.Type() == value.List {
			r.Report(diag.SnapshotAnomaly, e.pos(), fmt.Sprintf("variable %s is declared SCALAR but given as a list", e.Name))
		}
		out.Types[e.Name] = t
	}
	return out, nil
}

// MergeTypes overlays computed types on legacy ones. The result is a new map.
func MergeTypes(legacy, computed map[string]value.VarType) map[string]value.VarType {
	out := make(map[string]value.VarType, len(legacy)+len(computed))
	for name, t := range legacy {
		out[name] = t
	}
	for name, t := range computed {
		if t != value.Untyped {
			out[name] = t
		}
	}
	return out
}

// accepted filters out malformed entries and resolves duplicates: the last
// assignment of a name wins, as in make.
func accepted(doc *document, r diag.Reporter) []entry {
	index := make(map[string]int, len(doc.Vars))
	out := make([]entry, 0, len(doc.Vars))
	for _, e := range doc.Vars {
		pos := e.pos()
		name := strings.TrimSpace(e.Name)
		switch {
		case name == "":
			r.Report(diag.SnapshotAnomaly, pos, "variable with an empty name ignored")
			continue
		case name != e.Name:
			r.Report(diag.SnapshotAnomaly, pos, fmt.Sprintf("variable name %q has surrounding whitespace", e.Name))
			e.Name = name
		}
		switch e.shapes() {
		case 0:
			r.Report(diag.SnapshotAnomaly, pos, fmt.Sprintf("variable %s has no value, words or items; ignored", name))
			continue
		case 1:
		default:
			r.Report(diag.SnapshotAnomaly, pos, fmt.Sprintf("variable %s sets more than one of value, words and items; ignored", name))
			continue
		}
		if i, dup := index[name]; dup {
			r.Report(diag.SnapshotAnomaly, pos, fmt.Sprintf("variable %s defined more than once; last definition wins", name))
			out[i] = e
			continue
		}
		index[name] = len(out)
		out = append(out, e)
	}
	return out
}

func declaredType(e *entry, r diag.Reporter) (value.VarType, bool) {
	if e.Type == "" {
		return value.Untyped, false
	}
	t, err := value.ParseVarType(e.Type)
	if err != nil {
		r.Report(diag.SnapshotAnomaly, e.pos(), fmt.Sprintf("variable %s: %v", e.Name, err))
		return value.Untyped, false
	}
	return t, t != value.Untyped
}
