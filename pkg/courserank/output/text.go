// Package output renders ranking reports as text, charts, JSON and workbooks.
package output

import (
	"bytes"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/models"
)

// ReportTitle heads the text report.
const ReportTitle = "Average Course Rankings (Lower score is better):"

// FormatAverage renders an average rank with two decimals, or "nan" when undefined.
func FormatAverage(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Text renders the report: title, a rule of 50 '=', then one "<course>: <avg>" line per course.
func Text(report *models.Report) []byte {
	var buf bytes.Buffer
	buf.WriteString(ReportTitle)
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat("=", 50))
	buf.WriteByte('\n')
	for _, r := range report.Rankings {
		buf.WriteString(r.Course)
		buf.WriteString(": ")
		buf.WriteString(FormatAverage(r.AverageRank))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteText writes the text report to path, replacing any existing file.
func WriteText(report *models.Report, path string) error {
	return os.WriteFile(path, Text(report), 0644)
}
