package value

import (
	"strings"
)

// OneLinePerWord renders a normalized value with each word on its own line,
// joined by make line continuations. Absent values render as <null>.
func OneLinePerWord(n Normalized) string {
	s, ok := n.Get()
	if !ok {
		return "<null>"
	}
	return strings.Join(words(s.text), " \\\n  ")
}

// Debug renders a value with every element and its position.
func Debug(v Value) string {
	var b strings.Builder
	b.WriteString("Value(type=")
	if v == nil {
		b.WriteString("null)")
		return b.String()
	}
	b.WriteString(v.Type().String())
	switch v := v.(type) {
	case ScalarValue:
		b.WriteString(" str=")
		writeDebugStr(&b, v.str)
	case ListValue:
		b.WriteString(" list=[")
		for i, it := range v.items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDebugStr(&b, it)
		}
		b.WriteString("]")
	}
	b.WriteString(")")
	return b.String()
}

func writeDebugStr(b *strings.Builder, s Str) {
	b.WriteString(`"`)
	b.WriteString(s.text)
	b.WriteString(`" (`)
	b.WriteString(s.pos.String())
	b.WriteString(")")
}
