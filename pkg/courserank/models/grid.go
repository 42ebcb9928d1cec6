// Package models defines data structures for course ranking analysis.
package models

// Grid is a raw table of cell values addressed by zero-based row and column.
// Rows may be ragged; a cell outside a row reads as the empty string.
type Grid [][]string

// Cell returns the value at (row, col), or "" when the position is outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
