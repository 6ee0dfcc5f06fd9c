package models

import (
	"strconv"
	"strings"
)

// Grid is the first sheet reduced to rows of raw cell values.
// A cell is a string, int64, float64, or nil for blank. Rows may be ragged.
type Grid [][]interface{}

// Len returns the number of rows.
func (g Grid) Len() int {
	return len(g)
}

// Row returns the row at r, or nil when r is out of range.
func (g Grid) Row(r int) []interface{} {
	if r < 0 || r >= len(g) {
		return nil
	}
	return g[r]
}

// Value returns the raw cell value at (r, c), or nil when absent.
func (g Grid) Value(r, c int) interface{} {
	row := g.Row(r)
	if c < 0 || c >= len(row) {
		return nil
	}
	return row[c]
}

// Text returns the trimmed text of the cell at (r, c).
func (g Grid) Text(r, c int) string {
	return CellText(g.Value(r, c))
}

// CellText renders a raw cell value as trimmed text.
func CellText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// CellNumber reports the numeric value of a cell holding a number.
func CellNumber(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
