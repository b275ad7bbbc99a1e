package snapshot

import (
	"fmt"
	"path/filepath"
	"strings"

	"cfgcheck/internal/source"
	"cfgcheck/internal/value"
)

// Format is the on-disk encoding of a snapshot.
type Format uint8

const (
	FormatAuto Format = iota
	FormatTOML
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatMsgpack:
		return "msgpack"
	}
	return "auto"
}

// ParseFormat converts auto|toml|msgpack to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "toml":
		return FormatTOML, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	}
	return FormatAuto, fmt.Errorf("invalid snapshot format: %q (expected: auto|toml|msgpack)", s)
}

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	}
	return FormatAuto, fmt.Errorf("%s: cannot infer snapshot format from extension (use .toml or .msgpack)", path)
}

type document struct {
	Vars []entry `toml:"var" msgpack:"var"`
}

type entry struct {
	Name  string   `toml:"name" msgpack:"name"`
	Type  string   `toml:"type" msgpack:"type"`
	File  string   `toml:"file" msgpack:"file"`
	Line  int      `toml:"line" msgpack:"line"`
	Value *string  `toml:"value" msgpack:"value"`
	Words []string `toml:"words" msgpack:"words"`
	Items []item   `toml:"items" msgpack:"items"`
}

type item struct {
	Value string `toml:"value" msgpack:"value"`
	File  string `toml:"file" msgpack:"file"`
	Line  int    `toml:"line" msgpack:"line"`
}

func (e *entry) pos() source.Pos {
	return source.At(e.File, e.Line)
}

// shapes returns how many of value/words/items are set.
func (e *entry) shapes() int {
	n := 0
	if e.Value != nil {
		n++
	}
	if e.Words != nil {
		n++
	}
	if e.Items != nil {
		n++
	}
	return n
}

// strs returns the list elements with their positions. Words share the
// variable's position; items without a file inherit it.
func (e *entry) strs() []value.Str {
	pos := e.pos()
	if e.Words != nil {
		out := make([]value.Str, len(e.Words))
		for i, w := range e.Words {
			out[i] = value.NewStrAt(pos, w)
		}
		return out
	}
	out := make([]value.Str, len(e.Items))
	for i, it := range e.Items {
		p := pos
		if it.File != "" {
			p = source.At(it.File, it.Line)
		} else if it.Line > 0 {
			p = source.At(e.File, it.Line)
		}
		out[i] = value.NewStrAt(p, it.Value)
	}
	return out
}
