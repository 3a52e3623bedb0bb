package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tcztzy/wenyan/hanzi"
)

const (
	listInlineMax = 10
	listPrintMax  = 100
	listRowWidth  = 5
)

// Format renders a value for 書之. Numbers come out in Arabic digits,
// whole fractions without a decimal point, and long lists as an
// aligned block capped at a hundred items.
func Format(v Value) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case hanzi.Int:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case *List:
		return formatList(x)
	case *Function:
		if x.Name != "" {
			return "[Function: " + x.Name + "]"
		}
		return "[Function]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatItem is Format with strings quoted, for list elements.
func formatItem(v Value) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return Format(v)
}

func formatList(l *List) string {
	if len(l.Items) == 0 {
		return "[]"
	}
	shown := l.Items
	more := 0
	if len(shown) > listPrintMax {
		more = len(shown) - listPrintMax
		shown = shown[:listPrintMax]
	}
	cells := make([]string, len(shown))
	width := 0
	for i, item := range shown {
		cells[i] = formatItem(item)
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}
	if len(cells) <= listInlineMax && more == 0 {
		return "[ " + strings.Join(cells, ", ") + " ]"
	}
	var sb strings.Builder
	sb.WriteString("[\n")
	for i, cell := range cells {
		if i%listRowWidth == 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(strings.Repeat(" ", width-len(cell)))
		sb.WriteString(cell)
		if i != len(cells)-1 || more > 0 {
			sb.WriteString(",")
		}
		if i%listRowWidth == listRowWidth-1 || i == len(cells)-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	if more > 0 {
		fmt.Fprintf(&sb, "  ... %d more item", more)
		if more > 1 {
			sb.WriteString("s")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("]")
	return sb.String()
}
