package diagfmt

import (
	"encoding/json"
	"io"

	"cfgcheck/internal/diag"
	"cfgcheck/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File string `json:"file"`
	Line uint32 `json:"line,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string        `json:"severity"`
	Code     int           `json:"code"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Fatal       bool             `json:"fatal"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
// Fatal reflects every entry, including the ones cut by Max.
func BuildDiagnosticsOutput(items []diag.Diagnostic, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(items))}
	for _, d := range items {
		if d.Severity == diag.SevError {
			out.Fatal = true
		}
		if d.Severity == diag.SevHidden && !opts.IncludeHidden {
			continue
		}
		if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
			continue
		}
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     int(d.Code),
			Title:    d.Code.Title(),
			Message:  d.Message,
		}
		if d.HasPos() {
			dj.Location = &LocationJSON{
				File: source.DisplayPath(d.Pos.File, opts.PathMode, opts.BaseDir),
				Line: d.Pos.Line,
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, items []diag.Diagnostic, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(items, opts))
}
