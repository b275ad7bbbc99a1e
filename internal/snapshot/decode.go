package snapshot

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"

	"cfgcheck/internal/diag"
	"cfgcheck/internal/source"
)

// ParseError is a decode failure at a known position in a snapshot file.
// Error does not repeat the position.
type ParseError struct {
	Pos source.Pos
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrorPos returns the snapshot position of err, or source.Synthetic.
func ErrorPos(err error) source.Pos {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Pos
	}
	return source.Synthetic
}

func readDocument(path string, format Format, r diag.Reporter) (*document, error) {
	if format == FormatAuto {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	content, _, err := source.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var doc document
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(content), &doc)
		if err != nil {
			pos := source.At(path, 0)
			var perr toml.ParseError
			if errors.As(err, &perr) {
				pos = source.At(path, perr.Position.Line)
			}
			return nil, &ParseError{Pos: pos, Err: fmt.Errorf("failed to parse TOML: %w", err)}
		}
		for _, key := range meta.Undecoded() {
			r.Report(diag.SnapshotAnomaly, source.At(path, 0), fmt.Sprintf("unknown key %q ignored", key.String()))
		}
	case FormatMsgpack:
		if err := msgpack.Unmarshal(content, &doc); err != nil {
			return nil, &ParseError{Pos: source.At(path, 0), Err: fmt.Errorf("failed to decode msgpack: %w", err)}
		}
	default:
		return nil, fmt.Errorf("%s: unsupported snapshot format %s", path, format)
	}
	return &doc, nil
}
