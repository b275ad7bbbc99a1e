// Package diagfmt renders diagnostics recorded in a diag.Registry.
package diagfmt

import (
	"strconv"

	"cfgcheck/internal/source"
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode source.PathMode
	BaseDir  string // для PathRelative
	Width    int    // максимальная ширина сообщения, 0 - не ограничено
	Max      int    // 0 - без ограничения
	Summary  bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode      source.PathMode
	BaseDir       string
	Max           int
	IncludeHidden bool
}

func formatPos(pos source.Pos, mode source.PathMode, baseDir string) string {
	if pos.IsSynthetic() {
		return ""
	}
	path := source.DisplayPath(pos.File, mode, baseDir)
	if !pos.HasLine() {
		return path
	}
	return path + ":" + strconv.FormatUint(uint64(pos.Line), 10)
}
