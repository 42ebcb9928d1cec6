package parser

import (
	"math"
	"strconv"
	"strings"
)

// ParseRank attempts to parse a cell value as a rank.
// Blank, non-numeric and non-finite values are reported as missing (ok == false).
func ParseRank(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ColumnRanks collects the numeric ranks found in one column from startRow onward,
// along with the number of cells that were missing.
func ColumnRanks(rows [][]string, col, startRow int) (ranks []float64, missing int) {
	for r := startRow; r < len(rows); r++ {
		var cell string
		if col < len(rows[r]) {
			cell = rows[r][col]
		}
		if v, ok := ParseRank(cell); ok {
			ranks = append(ranks, v)
		} else {
			missing++
		}
	}
	return ranks, missing
}
