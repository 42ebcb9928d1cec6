package models

import "math"

// CourseRanking is the aggregated result for one course column.
type CourseRanking struct {
	// Course is the label taken from the header row. Duplicates are kept as-is.
	Course string `json:"course"`
	// Column is the zero-based source column index.
	Column int `json:"column"`
	// AverageRank is the mean of the numeric ranks, NaN when the column has none.
	AverageRank float64 `json:"-"`
	// Responses is the number of numeric ranks in the column.
	Responses int `json:"responses"`
}

// HasAverage reports whether the average rank is defined.
func (c CourseRanking) HasAverage() bool {
	return !math.IsNaN(c.AverageRank)
}

// Report holds the sorted rankings produced from a single input file.
type Report struct {
	// Source is the input file name (no path).
	Source string `json:"source"`
	// Sheet is the worksheet the grid was read from (empty for CSV input).
	Sheet string `json:"sheet,omitempty"`
	// Respondents is the number of data rows beneath the header.
	Respondents int `json:"respondents"`
	// Rankings is ordered best (lowest average) first.
	Rankings []CourseRanking `json:"rankings"`
}
