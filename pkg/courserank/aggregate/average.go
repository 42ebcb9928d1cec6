// Package aggregate turns per-course rank samples into sorted rankings.
package aggregate

import (
	"math"
	"sort"

	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/models"
	"github.com/montanaflynn/stats"
)

// Column is the rank sample collected for one course column.
type Column struct {
	// Index is the zero-based source column.
	Index int
	// Label is the course name.
	Label string
	// Ranks holds the numeric values; missing cells are excluded.
	Ranks []float64
	// Missing counts the cells that could not be parsed.
	Missing int
}

// Mean returns the arithmetic mean of ranks, or NaN for an empty sample.
func Mean(ranks []float64) float64 {
	m, err := stats.Mean(ranks)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Rankings builds one CourseRanking per column, in column order, then sorts them.
func Rankings(columns []Column) []models.CourseRanking {
	result := make([]models.CourseRanking, 0, len(columns))
	for _, c := range columns {
		result = append(result, models.CourseRanking{
			Course:      c.Label,
			Column:      c.Index,
			AverageRank: Mean(c.Ranks),
			Responses:   len(c.Ranks),
		})
	}
	SortByAverage(result)
	return result
}

// SortByAverage orders rankings ascending by average rank (lower is better).
// The sort is stable, so ties keep their incoming order. Undefined averages
// go last.
func SortByAverage(rankings []models.CourseRanking) {
	sort.SliceStable(rankings, func(i, j int) bool {
		a, b := rankings[i].AverageRank, rankings[j].AverageRank
		switch {
		case math.IsNaN(a):
			return false
		case math.IsNaN(b):
			return true
		default:
			return a < b
		}
	})
}
