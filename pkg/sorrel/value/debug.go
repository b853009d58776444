package value

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for debug rendering. Kept minimal: a dim annotation for type names
// and a plain style carrying the wrap width.
var (
	debugKindStyle = lipgloss.NewStyle().Faint(true)
)

// DebugString renders a typed, pretty representation of a value for
// interactive inspection, wrapped to the given width. The caller passes the
// host terminal width minus its margin.
func DebugString(v Value, width int) string {
	body := debugBody(v)
	if width <= 0 {
		return body
	}
	return lipgloss.NewStyle().Width(width).Render(body)
}

func debugBody(v Value) string {
	switch v.Value.Kind {
	case ValuePrimitive:
		p := v.Value.Primitive
		switch p.Kind {
		case KindNothing:
			return debugKindStyle.Render("(nothing)")
		case KindString:
			return fmt.Sprintf("%s %q", debugKindStyle.Render("(string)"), p.Str)
		case KindBoolean:
			return fmt.Sprintf("%s %s", debugKindStyle.Render("(boolean)"), p.String())
		default:
			return fmt.Sprintf("%s %s", debugKindStyle.Render("("+p.Kind.TypeName()+")"), p.String())
		}
	case ValueRow:
		var parts []string
		for _, k := range v.Value.Row.Keys() {
			item, _ := v.Value.Row.Get(k)
			parts = append(parts, fmt.Sprintf("%s=%s", k, debugBody(item)))
		}
		return "[row " + strings.Join(parts, " ") + "]"
	case ValueTable:
		var parts []string
		for _, item := range v.Value.Table {
			parts = append(parts, debugBody(item))
		}
		return "[table " + strings.Join(parts, " ") + "]"
	case ValueError:
		return debugKindStyle.Render("(error)") + " " + v.Value.Err.String()
	case ValueBlock:
		return debugKindStyle.Render("(block)")
	default:
		return ""
	}
}
