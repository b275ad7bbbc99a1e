package diag

import (
	"fmt"
	"sort"

	"cfgcheck/internal/source"
)

// Registry owns the diagnostic catalog and every diagnostic emitted during
// one run. It is created per invocation and is not safe for concurrent use.
type Registry struct {
	categories map[Code]*Category
	items      []Diagnostic
	hadError   bool
	hadWarning bool
}

// NewRegistry returns a registry with the full catalog at default severities.
func NewRegistry() *Registry {
	r := &Registry{
		categories: make(map[Code]*Category, len(catalog)),
		items:      make([]Diagnostic, 0, 16),
	}
	for _, def := range catalog {
		r.categories[def.code] = newCategory(def)
	}
	return r
}

// Category looks up a category by code.
func (r *Registry) Category(code Code) (*Category, bool) {
	c, ok := r.categories[code]
	return c, ok
}

// Categories returns every category sorted by code.
func (r *Registry) Categories() []*Category {
	out := make([]*Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].code < out[j].code })
	return out
}

// Emit records a diagnostic without a location.
func (r *Registry) Emit(code Code, msg string) {
	r.EmitAt(code, source.Synthetic, msg)
}

// EmitAt records a diagnostic at pos. Error severity makes the run fatal.
// Emitting a code that is not in the catalog is a programming error.
func (r *Registry) EmitAt(code Code, pos source.Pos, msg string) {
	c, ok := r.categories[code]
	if !ok {
		panic(fmt.Sprintf("diag: emit with unregistered code %d", code))
	}
	r.items = append(r.items, Diagnostic{
		Severity: c.level,
		Code:     code,
		Message:  msg,
		Pos:      pos,
	})
	switch c.level {
	case SevError:
		r.hadError = true
	case SevWarning:
		r.hadWarning = true
	}
}

// Report implements Reporter.
func (r *Registry) Report(code Code, pos source.Pos, msg string) {
	r.EmitAt(code, pos, msg)
}

// SetSeverity overrides the severity of code. Failures are reported into the
// registry itself: an unknown code yields UnknownCommandLineCode, a fixed
// category yields CommandLine. It returns whether the override was applied.
func (r *Registry) SetSeverity(code Code, sev Severity) bool {
	c, ok := r.categories[code]
	if !ok {
		r.Emit(UnknownCommandLineCode, fmt.Sprintf("Unknown diagnostic code: %d", int(code)))
		return false
	}
	if !c.settable {
		r.Emit(CommandLine, fmt.Sprintf("Can't set level for diagnostic %d", int(code)))
		return false
	}
	c.level = sev
	return true
}

// HadFatal reports whether any Error-severity diagnostic was emitted.
func (r *Registry) HadFatal() bool {
	return r.hadError
}

// HadWarningOrError reports whether anything visible was emitted.
func (r *Registry) HadWarningOrError() bool {
	return r.hadError || r.hadWarning
}

// Len returns the number of recorded diagnostics, hidden ones included.
func (r *Registry) Len() int {
	return len(r.items)
}

// Items returns the recorded diagnostics in emission order.
// Не модифицируйте возвращаемый срез: он указывает на внутренний массив.
func (r *Registry) Items() []Diagnostic {
	return r.items
}

// Visible returns a copy of the diagnostics whose severity is not hidden.
func (r *Registry) Visible() []Diagnostic {
	out := make([]Diagnostic, 0, len(r.items))
	for _, d := range r.items {
		if d.Severity != SevHidden {
			out = append(out, d)
		}
	}
	return out
}

// Count returns how many diagnostics were emitted at sev.
func (r *Registry) Count(sev Severity) int {
	n := 0
	for i := range r.items {
		if r.items[i].Severity == sev {
			n++
		}
	}
	return n
}
