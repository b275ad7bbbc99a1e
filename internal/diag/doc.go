// Package diag defines the diagnostic model shared by every cfgcheck component.
//
// # Data model
//
//   - Code – stable numeric identifier (see codes.go). Users refer to codes on
//     the command line, so values never change once released.
//   - Severity – tri-level enum (Hidden, Warning, Error) defined in severity.go.
//   - Category – catalog entry: code, default severity, current severity,
//     whether the severity may be overridden, and help text.
//   - Diagnostic – one emitted entry: code, the severity in effect when it was
//     emitted, message and an optional source.Pos.
//
// # Registry
//
// Registry is the per-run state: the catalog plus the ordered list of emitted
// diagnostics. Components receive it (or the narrower Reporter interface) from
// the driver; there is no package-level registry. Emitting at Error severity
// marks the run as fatal, and the caller decides the exit status from
// HadFatal once all components have run. Nothing is ever rolled back.
//
// Severity overrides come from the configuration file and the command line,
// both through SetSeverity, which reports its own failures as diagnostics
// instead of returning errors.
//
// # Scope
//
// Package diag does not format or print anything. Rendering lives in
// internal/diagfmt.
package diag
