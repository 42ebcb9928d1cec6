package courserank

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// courseHeaders returns survey question cells for the given course names.
func courseHeaders(names ...string) []string {
	headers := make([]string, len(names))
	for i, name := range names {
		headers[i] = "Please rank the following courses from 1 (best) to 8 (worst) - " + name
	}
	return headers
}

// writeSurvey saves a workbook laid out like the exit survey export: a header row,
// question text in row 2, import ids in row 3 and one response per row from row 4,
// with the course questions starting at column L.
func writeSurvey(t *testing.T, dir string, headers []string, responses [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "ResponseId"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Response ID"))

	headerRow := make([]interface{}, len(headers))
	importRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
		importRow[i] = fmt.Sprintf(`{"ImportId":"QID7_%d"}`, i+1)
	}
	require.NoError(t, f.SetSheetRow(sheet, "L2", &headerRow))
	require.NoError(t, f.SetSheetRow(sheet, "L3", &importRow))

	for i, row := range responses {
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("A%d", i+4), fmt.Sprintf("R_%03d", i+1)))
		cell, err := excelize.CoordinatesToCellName(12, i+4)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	path := filepath.Join(dir, "survey.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// exampleResponses returns five responses where course A averages 1.40 and B 7.60.
func exampleResponses() [][]interface{} {
	a := []int{1, 2, 1, 2, 1}
	b := []int{8, 7, 8, 7, 8}
	g := []int{2, 3, 2, 3, 2}
	h := []int{7, 6, 7, 6, 7}

	rows := make([][]interface{}, 5)
	for i := range rows {
		rows[i] = []interface{}{a[i], b[i], 3, 4, 5, 6, g[i], h[i]}
	}
	return rows
}
