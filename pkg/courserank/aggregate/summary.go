package aggregate

import (
	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/models"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summarize describes each ranked course's sample, following the order of rankings.
// Columns are matched to rankings by source column index.
func Summarize(rankings []models.CourseRanking, columns []Column, columnName func(int) string) []models.CourseSummary {
	byIndex := make(map[int]Column, len(columns))
	for _, c := range columns {
		byIndex[c.Index] = c
	}

	result := make([]models.CourseSummary, 0, len(rankings))
	for i, r := range rankings {
		c := byIndex[r.Column]
		s := models.CourseSummary{
			Position:   i + 1,
			Course:     r.Course,
			ColumnName: columnName(r.Column),
			Responses:  len(c.Ranks),
			Missing:    c.Missing,
		}
		if r.HasAverage() {
			s.Mean = ptr(r.AverageRank)
		}
		if median, err := stats.Median(c.Ranks); err == nil {
			s.Median = ptr(median)
		}
		if lo, err := stats.Min(c.Ranks); err == nil {
			s.Min = ptr(lo)
		}
		if hi, err := stats.Max(c.Ranks); err == nil {
			s.Max = ptr(hi)
		}
		if len(c.Ranks) > 1 {
			s.StdDev = ptr(stat.StdDev(c.Ranks, nil))
		}
		result = append(result, s)
	}
	return result
}

func ptr(v float64) *float64 {
	return &v
}
