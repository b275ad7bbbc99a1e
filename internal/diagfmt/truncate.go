package diagfmt

import "github.com/mattn/go-runewidth"

// truncate shortens value to at most width terminal columns, the "..." tail
// included.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
