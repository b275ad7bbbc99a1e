package reconcile

import (
	"fmt"

	"cfgcheck/internal/diag"
	"cfgcheck/internal/source"
	"cfgcheck/internal/value"
)

// Report emits one DifferentFromReference header per variable, followed by
// the normalized original and updated values at their own positions.
// vars must already be sorted; Report keeps their order.
func Report(r diag.Reporter, vars []Variable) {
	for _, v := range vars {
		r.Report(diag.DifferentFromReference, source.Synthetic, fmt.Sprintf(
			"computed value differs from legacy evaluator for %s variable %s:", v.Type, v.Name))
		reportSide(r, "original", v.NormalizedBefore)
		reportSide(r, "updated", v.NormalizedAfter)
	}
}

func reportSide(r diag.Reporter, label string, n value.Normalized) {
	pos := source.Synthetic
	if s, ok := n.Get(); ok {
		pos = s.Pos()
	}
	r.Report(diag.DifferentFromReference, pos, label+": "+n.Quoted())
}

// ReportUntyped emits UntypedVariable for every record without a declared
// type. The category is hidden by default.
func ReportUntyped(r diag.Reporter, vars []Variable) {
	for _, v := range vars {
		if v.Type != value.Untyped {
			continue
		}
		pos := source.Synthetic
		if v.Before != nil {
			pos = v.Before.Pos()
		}
		r.Report(diag.UntypedVariable, pos, fmt.Sprintf("variable %s has no declared type", v.Name))
	}
}
