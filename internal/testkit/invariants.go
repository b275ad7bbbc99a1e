// Package testkit holds checks shared by tests of several packages.
package testkit

import (
	"fmt"

	"cfgcheck/internal/reconcile"
	"cfgcheck/internal/value"
)

// CheckResult runs a minimal set of invariants on a reconciliation:
// 1) records are sorted by name and unique
// 2) every record's Before matches the input and normalization is idempotent
// 3) Differences is exactly the records that are not IsSame, in order
func CheckResult(in reconcile.Input, res *reconcile.Result) error {
	if res == nil {
		return fmt.Errorf("nil result")
	}

	// 1) order
	for i := 1; i < len(res.Variables); i++ {
		if res.Variables[i-1].Name >= res.Variables[i].Name {
			return fmt.Errorf("variables out of order at %d: %q >= %q", i, res.Variables[i-1].Name, res.Variables[i].Name)
		}
	}

	// 2) records
	for _, v := range res.Variables {
		bv, ok := in.Before[v.Name]
		if ok != (v.Before != nil) {
			return fmt.Errorf("%s: before presence %v, input presence %v", v.Name, v.Before != nil, ok)
		}
		if ok && bv.Text() != v.Before.Text() {
			return fmt.Errorf("%s: before text %q, input %q", v.Name, v.Before.Text(), bv.Text())
		}
		for _, n := range []value.Normalized{v.NormalizedBefore, v.NormalizedAfter} {
			s, present := n.Get()
			if present && value.NormalizeText(s.Text()) != s.Text() {
				return fmt.Errorf("%s: normalized form %q is not stable", v.Name, s.Text())
			}
		}
	}

	// 3) differences
	j := 0
	for _, v := range res.Variables {
		if v.IsSame() {
			continue
		}
		if j >= len(res.Differences) || res.Differences[j].Name != v.Name {
			return fmt.Errorf("difference %s missing or out of order", v.Name)
		}
		j++
	}
	if j != len(res.Differences) {
		return fmt.Errorf("%d differences reported, %d expected", len(res.Differences), j)
	}
	return nil
}
