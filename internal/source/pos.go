package source

import (
	"fmt"

	"fortio.org/safecast"
)

// NoLine marks a position that names a file but no line within it.
const NoLine uint32 = 0

// Pos is the origin of a value: a file and a 1-based line.
// The zero Pos is synthetic, i.e. the value was not read from anywhere.
type Pos struct {
	File string
	Line uint32
}

// Synthetic is the position of values that have no source location.
var Synthetic = Pos{}

// At builds a position from a file and a line as read from external input.
// Negative or oversized line numbers degrade to NoLine.
func At(file string, line int) Pos {
	if file == "" {
		return Synthetic
	}
	l, err := safecast.Conv[uint32](line)
	if err != nil {
		l = NoLine
	}
	return Pos{File: normalizePath(file), Line: l}
}

// IsSynthetic reports whether the position carries no location.
func (p Pos) IsSynthetic() bool {
	return p.File == ""
}

// HasLine reports whether the position points at a specific line.
func (p Pos) HasLine() bool {
	return !p.IsSynthetic() && p.Line != NoLine
}

// String renders the position as file:line, file, or <synthetic>.
func (p Pos) String() string {
	switch {
	case p.IsSynthetic():
		return "<synthetic>"
	case p.Line == NoLine:
		return p.File
	default:
		return fmt.Sprintf("%s:%d", p.File, p.Line)
	}
}
