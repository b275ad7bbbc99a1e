package diag

import "cfgcheck/internal/source"

// Reporter: минимальный контракт получения диагностик от компонентов.
// Реализации: *Registry, DedupReporter, NopReporter.
type Reporter interface {
	Report(code Code, pos source.Pos, msg string)
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, source.Pos, string) {}
