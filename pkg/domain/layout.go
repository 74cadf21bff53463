package domain

// Key is a single control placement within a Layout.
// ID is either a literal token ("7", "+", "."), one of the action keys
// ("C", "="), or a conversion operation id ("Mi to Km").
type Key struct {
	ID  string `json:"id" yaml:"id"`
	Row int    `json:"row" yaml:"row"`
	Col int    `json:"col" yaml:"col"`
}

// Layout is an ordered set of Key placements, unique per (row, col) pair.
// It is consumed by a renderer only; the engine never inspects geometry
// beyond producing it.
type Layout []Key

// Contains reports whether the layout holds a key with the given id.
func (l Layout) Contains(id string) bool {
	for _, k := range l {
		if k.ID == id {
			return true
		}
	}
	return false
}

// Rows returns the number of rows the layout spans.
func (l Layout) Rows() int {
	max := -1
	for _, k := range l {
		if k.Row > max {
			max = k.Row
		}
	}
	return max + 1
}

// Cols returns the number of columns the layout spans.
func (l Layout) Cols() int {
	max := -1
	for _, k := range l {
		if k.Col > max {
			max = k.Col
		}
	}
	return max + 1
}

// StandardLayout returns the fixed 5x4 grid of the Standard mode.
func StandardLayout() Layout {
	return Layout{
		{ID: "(", Row: 0, Col: 0}, {ID: ")", Row: 0, Col: 1}, {ID: "%", Row: 0, Col: 2}, {ID: "/", Row: 0, Col: 3},
		{ID: "7", Row: 1, Col: 0}, {ID: "8", Row: 1, Col: 1}, {ID: "9", Row: 1, Col: 2}, {ID: "*", Row: 1, Col: 3},
		{ID: "4", Row: 2, Col: 0}, {ID: "5", Row: 2, Col: 1}, {ID: "6", Row: 2, Col: 2}, {ID: "-", Row: 2, Col: 3},
		{ID: "1", Row: 3, Col: 0}, {ID: "2", Row: 3, Col: 1}, {ID: "3", Row: 3, Col: 2}, {ID: "+", Row: 3, Col: 3},
		{ID: "0", Row: 4, Col: 0}, {ID: "C", Row: 4, Col: 1}, {ID: ".", Row: 4, Col: 2}, {ID: "=", Row: 4, Col: 3},
	}
}

// ConvertLayout returns the Convert-mode grid: the numeric pad mirrors the
// Standard grid's digit region (rows 1-4, cols 0-2), and one key per
// conversion operation fills the remaining slots. The operation slots are
// data-driven: adding an operation only needs a registry entry, no new
// layout code.
func ConvertLayout(conversions []string) Layout {
	l := Layout{
		{ID: "7", Row: 1, Col: 0}, {ID: "8", Row: 1, Col: 1}, {ID: "9", Row: 1, Col: 2},
		{ID: "4", Row: 2, Col: 0}, {ID: "5", Row: 2, Col: 1}, {ID: "6", Row: 2, Col: 2},
		{ID: "1", Row: 3, Col: 0}, {ID: "2", Row: 3, Col: 1}, {ID: "3", Row: 3, Col: 2},
		{ID: "C", Row: 4, Col: 0}, {ID: "0", Row: 4, Col: 1}, {ID: ".", Row: 4, Col: 2},
	}
	for i, op := range conversions {
		row, col := conversionSlot(i)
		l = append(l, Key{ID: op, Row: row, Col: col})
	}
	return l
}

// conversionSlot maps the i-th operation to a grid cell: first the top row
// (cols 0-3), then the side column next to the pad (rows 1-4), then whole
// extra rows below the grid.
func conversionSlot(i int) (row, col int) {
	switch {
	case i < 4:
		return 0, i
	case i < 8:
		return i - 3, 3
	default:
		i -= 8
		return 5 + i/4, i % 4
	}
}
