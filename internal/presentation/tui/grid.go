package tui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/tally/pkg/domain"
)

// RenderGrid draws a layout as an aligned text grid. Keys naming a
// conversion operation are styled differently from the numeric pad, the
// way the original desktop shell painted them white-on-olive.
func RenderGrid(layout domain.Layout, operations []string) string {
	if len(layout) == 0 {
		return ""
	}

	ops := make(map[string]bool, len(operations))
	for _, op := range operations {
		ops[op] = true
	}

	width := 0
	for _, k := range layout {
		if len(k.ID) > width {
			width = len(k.ID)
		}
	}

	cells := make(map[[2]int]domain.Key)
	for _, k := range layout {
		cells[[2]int{k.Row, k.Col}] = k
	}

	p := termenv.ColorProfile()
	var b strings.Builder
	for row := 0; row < layout.Rows(); row++ {
		for col := 0; col < layout.Cols(); col++ {
			if col > 0 {
				b.WriteString("  ")
			}
			k, ok := cells[[2]int{row, col}]
			if !ok {
				b.WriteString(strings.Repeat(" ", width+2))
				continue
			}
			label := "[" + pad(k.ID, width) + "]"
			if ops[k.ID] {
				b.WriteString(termenv.String(label).Foreground(p.Color("#FFFFFF")).String())
			} else {
				b.WriteString(termenv.String(label).Foreground(p.Color("#AEBD93")).String())
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if gap := width - len(s); gap > 0 {
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	}
	return s
}
