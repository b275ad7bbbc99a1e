package reconcile

import (
	"context"
	"runtime"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"cfgcheck/internal/trace"
	"cfgcheck/internal/value"
)

// Input holds the two snapshots and the declared types.
type Input struct {
	Before map[string]value.Str
	After  map[string]value.Value
	Types  map[string]value.VarType
}

// TypeOf returns the declared type of name, or value.Untyped.
func (in Input) TypeOf(name string) value.VarType {
	return in.Types[name]
}

// Options tune how records are computed.
type Options struct {
	// Jobs bounds the number of goroutines; 0 means GOMAXPROCS, 1 is sequential.
	Jobs int
}

// Result holds every examined variable and the ones that differ, both sorted
// by name.
type Result struct {
	Variables   []Variable
	Differences []Variable
}

// Variables builds the records of every examined name, sorted by name.
func Variables(in Input) []Variable {
	vars, _ := build(context.Background(), in, 1)
	return vars
}

// Differences returns the examined variables whose normalized forms differ.
func Differences(ctx context.Context, in Input, opts Options) ([]Variable, error) {
	res, err := Reconcile(ctx, in, opts)
	if err != nil {
		return nil, err
	}
	return res.Differences, nil
}

// Reconcile computes the records in parallel and keeps name order for the
// result. It only fails when ctx is cancelled.
func Reconcile(ctx context.Context, in Input, opts Options) (*Result, error) {
	ctx, span := trace.StartSpan(ctx, trace.ScopePass, "reconcile")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	vars, err := build(ctx, in, jobs)
	if err != nil {
		span.End("cancelled")
		return nil, err
	}

	res := &Result{Variables: vars}
	for _, v := range vars {
		if !v.IsSame() {
			res.Differences = append(res.Differences, v)
		}
	}
	traceDifferences(trace.FromContext(ctx), span.ID(), res.Differences)

	span.WithExtra("examined", strconv.Itoa(len(vars))).
		WithExtra("different", strconv.Itoa(len(res.Differences))).
		End("")
	return res, nil
}

func build(ctx context.Context, in Input, jobs int) ([]Variable, error) {
	modified := ModifiedVars(in.Before, in.After)
	names := make([]string, 0, len(modified))
	for name := range modified {
		names = append(names, name)
	}
	sort.Strings(names)

	record := func(name string) Variable {
		var before *value.Str
		if bv, ok := in.Before[name]; ok {
			before = &bv
		}
		return NewVariable(name, in.TypeOf(name), before, modified[name])
	}

	vars := make([]Variable, len(names))
	if jobs <= 1 || len(names) < 2 {
		for i, name := range names {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			vars[i] = record(name)
		}
		return vars, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(names)))
	for i, name := range names {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// каждый индекс пишет только одна горутина
			vars[i] = record(name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vars, nil
}

// traceDifferences emits one variable span per difference with both sides
// attached. Only the debug level keeps variable scope.
func traceDifferences(t trace.Tracer, parent uint64, diffs []Variable) {
	if !t.Enabled() || !t.Level().ShouldEmit(trace.ScopeVariable) {
		return
	}
	for _, v := range diffs {
		trace.Begin(t, trace.ScopeVariable, v.Name, parent).
			WithExtra("legacy", strconv.Quote(value.OneLinePerWord(v.NormalizedBefore))).
			WithExtra("computed", value.Debug(v.After)).
			End(v.Type.String())
	}
}
