// Package driver runs one reconciliation: it resolves diagnostic options,
// loads both snapshots, compares them and records the outcome in a fresh
// diag.Registry.
package driver

import (
	"context"
	"fmt"
	"strconv"

	"cfgcheck/internal/config"
	"cfgcheck/internal/diag"
	"cfgcheck/internal/observ"
	"cfgcheck/internal/options"
	"cfgcheck/internal/reconcile"
	"cfgcheck/internal/snapshot"
	"cfgcheck/internal/source"
	"cfgcheck/internal/trace"
)

// Request describes one run. Empty snapshot paths fall back to the [inputs]
// section of the configuration.
type Request struct {
	// Args are the diagnostic options, in command-line order.
	Args     []string
	Legacy   string
	Computed string
	Format   snapshot.Format
	Config   *config.Config
	// ConfigError is a failure to load the configuration. It is reported as
	// diag.ConfigFile and the run goes on with Config.
	ConfigError error
	// Jobs overrides [run].jobs when positive.
	Jobs    int
	Timings bool
}

// Result is what the caller needs to render output and choose an exit code.
type Result struct {
	Registry    *diag.Registry
	Options     options.Options
	Config      *config.Config
	Examined    int
	Differences []reconcile.Variable
	// Timer is nil unless timings were requested.
	Timer *observ.Timer
}

// Failed reports whether the run recorded a fatal diagnostic.
func (r *Result) Failed() bool {
	return r.Registry.HadFatal()
}

// Run executes a request. Domain problems end up in the registry; the
// returned error is non-nil only when ctx is cancelled.
func Run(ctx context.Context, req Request) (*Result, error) {
	cfg := req.Config
	if cfg == nil {
		cfg = config.Default()
	}
	reg := diag.NewRegistry()
	res := &Result{Registry: reg, Config: cfg}
	if req.Timings || cfg.Run.Timings {
		res.Timer = observ.NewTimer()
	}

	tracer := trace.FromContext(ctx)
	ctx, span := trace.StartSpan(ctx, trace.ScopeDriver, "check")
	defer func() {
		span.WithExtra("diagnostics", strconv.Itoa(reg.Len())).End("")
	}()

	if req.ConfigError != nil {
		reg.EmitAt(diag.ConfigFile, config.ErrorPos(req.ConfigError), req.ConfigError.Error())
	}
	// конфиг применяется раньше командной строки, чтобы та имела приоритет
	cfg.Apply(reg)
	res.Options = options.Parse(reg, req.Args)
	if res.Options.Action == options.ActionHelp {
		return res, nil
	}
	if reg.HadFatal() {
		return res, nil
	}

	in, ok := load(ctx, req, cfg, res)
	if !ok {
		return res, nil
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = cfg.Run.Jobs
	}
	var (
		out *reconcile.Result
		err error
	)
	phase(res.Timer, "reconcile", func() string {
		out, err = reconcile.Reconcile(ctx, in, reconcile.Options{Jobs: jobs})
		if err != nil {
			return "cancelled"
		}
		return fmt.Sprintf("examined=%d different=%d", len(out.Variables), len(out.Differences))
	})
	if err != nil {
		trace.Error(tracer, "reconcile", err)
		return nil, err
	}
	res.Examined = len(out.Variables)
	res.Differences = out.Differences

	phase(res.Timer, "report", func() string {
		_, rspan := trace.StartSpan(ctx, trace.ScopePass, "report")
		before := reg.Len()
		reconcile.Report(reg, out.Differences)
		reconcile.ReportUntyped(reg, out.Variables)
		rspan.End("")
		return fmt.Sprintf("diagnostics=%d", reg.Len()-before)
	})
	return res, nil
}

// load reads both snapshots. Both are attempted so that every unreadable
// input is reported in one run.
func load(ctx context.Context, req Request, cfg *config.Config, res *Result) (reconcile.Input, bool) {
	reg := res.Registry
	tracer := trace.FromContext(ctx)
	_, span := trace.StartSpan(ctx, trace.ScopePass, "load")
	defer span.End("")

	legacyPath := firstNonEmpty(req.Legacy, cfg.Resolve(cfg.Inputs.Legacy))
	computedPath := firstNonEmpty(req.Computed, cfg.Resolve(cfg.Inputs.Computed))
	if legacyPath == "" {
		reg.Emit(diag.CommandLine, "Missing legacy snapshot: pass --legacy FILE")
	}
	if computedPath == "" {
		reg.Emit(diag.CommandLine, "Missing computed snapshot: pass --computed FILE")
	}
	if legacyPath == "" || computedPath == "" {
		return reconcile.Input{}, false
	}

	format := req.Format
	if format == snapshot.FormatAuto && cfg.Inputs.Format != "" {
		if f, err := snapshot.ParseFormat(cfg.Inputs.Format); err == nil {
			format = f
		} else {
			reg.EmitAt(diag.ConfigFile, source.At(cfg.Path, 0), err.Error())
			return reconcile.Input{}, false
		}
	}
	opts := snapshot.Options{Format: format}
	anomalies := diag.NewDedupReporter(reg)

	var (
		legacy   *snapshot.Legacy
		computed *snapshot.Computed
	)
	phase(res.Timer, "load_legacy", func() string {
		var err error
		legacy, err = snapshot.LoadLegacy(legacyPath, opts, anomalies)
		if err != nil {
			reportReadError(reg, tracer, err)
			return "failed"
		}
		trace.Point(tracer, trace.ScopeFile, "legacy", legacyPath)
		return fmt.Sprintf("vars=%d", len(legacy.Vars))
	})
	phase(res.Timer, "load_computed", func() string {
		var err error
		computed, err = snapshot.LoadComputed(computedPath, opts, anomalies)
		if err != nil {
			reportReadError(reg, tracer, err)
			return "failed"
		}
		trace.Point(tracer, trace.ScopeFile, "computed", computedPath)
		return fmt.Sprintf("vars=%d", len(computed.Vars))
	})
	if legacy == nil || computed == nil {
		return reconcile.Input{}, false
	}
	return reconcile.Input{
		Before: legacy.Vars,
		After:  computed.Vars,
		Types:  snapshot.MergeTypes(legacy.Types, computed.Types),
	}, true
}

func reportReadError(reg *diag.Registry, tracer trace.Tracer, err error) {
	trace.Error(tracer, "load", err)
	reg.EmitAt(diag.SnapshotRead, snapshot.ErrorPos(err), err.Error())
}

// phase runs fn under timer when timings are enabled.
func phase(timer *observ.Timer, name string, fn func() string) {
	if timer == nil {
		fn()
		return
	}
	timer.Track(name, fn)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
