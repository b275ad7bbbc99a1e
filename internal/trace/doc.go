// Package trace provides lightweight tracing for cfgcheck runs.
//
// The driver opens a span per phase (config, load, reconcile, report) and
// per snapshot file; the reconciler adds counters to its span. Output goes
// to stderr or a file, as text or NDJSON.
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only error points
//   - LevelPhase: Driver and phase boundaries
//   - LevelDetail: Per-file events
//   - LevelDebug: Everything including per-variable events
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//
//	ctx, span := trace.StartSpan(ctx, trace.ScopePass, "load")
//	defer span.End("")
package trace
