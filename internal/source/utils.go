package source

import (
	"path/filepath"
	"slices"
	"strings"
)

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены (true, если хотя бы одна).
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Быстрый путь: если нет \r, возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	// Новый слайс для результата (максимум такой же длины, может быть короче).
	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		// Если встретили \r\n, заменяем на \n.
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathAsIs keeps the path exactly as recorded.
	PathAsIs PathMode = iota
	// PathRelative renders paths relative to a base directory when possible.
	PathRelative
	PathBasename
)

// DisplayPath formats p according to mode. baseDir is only used by PathRelative.
func DisplayPath(p string, mode PathMode, baseDir string) string {
	switch mode {
	case PathRelative:
		if baseDir == "" || !filepath.IsAbs(p) {
			return p
		}
		rel, err := filepath.Rel(baseDir, p)
		if err != nil || strings.HasPrefix(rel, "..") {
			// вне базовой директории оставляем абсолютный путь
			return p
		}
		return filepath.ToSlash(rel)
	case PathBasename:
		return filepath.Base(p)
	default:
		return p
	}
}
