package courserank

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/models"
	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const expectedExampleReport = `Average Course Rankings (Lower score is better):
==================================================
A: 1.40
G: 2.40
C: 3.00
D: 4.00
E: 5.00
F: 6.00
H: 6.60
B: 7.60
`

func runOptions(dir string) Options {
	opts := DefaultOptions()
	opts.OutputDir = filepath.Join(dir, "outputs")
	return opts
}

func TestRunWritesReportAndChart(t *testing.T) {
	dir := t.TempDir()
	path := writeSurvey(t, dir, courseHeaders("A", "B", "C", "D", "E", "F", "G", "H"), exampleResponses())
	opts := runOptions(dir)

	result, err := Run(path, opts)
	require.NoError(t, err)
	require.Len(t, result.Artifacts, 2)

	assert.Equal(t, ArtifactReport, result.Artifacts[0].Kind)
	assert.Equal(t, filepath.Join(opts.OutputDir, ReportFile), result.Artifacts[0].Path)
	assert.Equal(t, ArtifactChart, result.Artifacts[1].Kind)
	assert.Equal(t, filepath.Join(opts.OutputDir, ChartFile), result.Artifacts[1].Path)

	text, err := os.ReadFile(result.Artifacts[0].Path)
	require.NoError(t, err)
	assert.Equal(t, expectedExampleReport, string(text))

	png, err := os.ReadFile(result.Artifacts[1].Path)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, "\x89PNG\r\n\x1a\n", string(png[:8]))
}

func TestRunReportLineCountIndependentOfRespondents(t *testing.T) {
	for _, respondents := range []int{1, 5, 40} {
		dir := t.TempDir()
		rows := make([][]interface{}, respondents)
		for i := range rows {
			rows[i] = []interface{}{i%8 + 1, 2, 3, 4, 5, 6, 7, 8}
		}
		path := writeSurvey(t, dir, courseHeaders("A", "B", "C", "D", "E", "F", "G", "H"), rows)

		result, err := Run(path, runOptions(dir))
		require.NoError(t, err)

		text, err := os.ReadFile(result.Artifacts[0].Path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(string(text), "\n"), "\n")
		assert.Len(t, lines, 2+8, "respondents=%d", respondents)
	}
}

func TestRunUndefinedAverageRendersNaN(t *testing.T) {
	dir := t.TempDir()
	rows := [][]interface{}{
		{1, "", 3, 4, 5, 6, 7, 8},
		{2, "n/a", 3, 4, 5, 6, 7, 8},
	}
	path := writeSurvey(t, dir, courseHeaders("A", "B", "C", "D", "E", "F", "G", "H"), rows)

	result, err := Run(path, runOptions(dir))
	require.NoError(t, err)

	text, err := os.ReadFile(result.Artifacts[0].Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(text), "\n"), "\n")
	assert.Equal(t, "B: nan", lines[len(lines)-1])
	assert.NotContains(t, string(text), "B: 0.00")
}

func TestRunIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeSurvey(t, dir, courseHeaders("A", "B", "C", "D", "E", "F", "G", "H"), exampleResponses())
	opts := runOptions(dir)

	first, err := Run(path, opts)
	require.NoError(t, err)
	a, err := os.ReadFile(first.Artifacts[0].Path)
	require.NoError(t, err)

	second, err := Run(path, opts)
	require.NoError(t, err)
	b, err := os.ReadFile(second.Artifacts[0].Path)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunMissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	opts := runOptions(dir)
	missing := filepath.Join(dir, "Grad Program Exit Survey Data 2024 (1).xlsx")

	result, err := Run(missing, opts)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.Contains(t, err.Error(), missing)

	_, statErr := os.Stat(opts.OutputDir)
	assert.True(t, os.IsNotExist(statErr), "output directory must not be created")
}

func TestRunMissingInputLeavesExistingOutputs(t *testing.T) {
	dir := t.TempDir()
	opts := runOptions(dir)
	require.NoError(t, os.MkdirAll(opts.OutputDir, 0755))

	_, err := Run(filepath.Join(dir, "absent.xlsx"), opts)
	require.Error(t, err)

	entries, err := os.ReadDir(opts.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunSummaryAndWorkbook(t *testing.T) {
	dir := t.TempDir()
	rows := exampleResponses()
	rows = append(rows, []interface{}{"", 8, 3, 4, 5, 6, 2, 7})
	path := writeSurvey(t, dir, courseHeaders("A", "B", "C", "D", "E", "F", "G", "H"), rows)

	opts := runOptions(dir)
	opts.Summary = true
	opts.Workbook = true

	result, err := Run(path, opts)
	require.NoError(t, err)
	require.Len(t, result.Artifacts, 4)
	assert.Equal(t, ArtifactSummary, result.Artifacts[2].Kind)
	assert.Equal(t, ArtifactWorkbook, result.Artifacts[3].Kind)

	data, err := os.ReadFile(filepath.Join(opts.OutputDir, SummaryFile))
	require.NoError(t, err)
	var summary models.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 6, summary.Respondents)
	require.Len(t, summary.Courses, 8)

	best := summary.Courses[0]
	assert.Equal(t, 1, best.Position)
	assert.Equal(t, "A", best.Course)
	assert.Equal(t, "L", best.ColumnName)
	assert.Equal(t, 5, best.Responses)
	assert.Equal(t, 1, best.Missing)
	require.NotNil(t, best.Median)
	assert.InDelta(t, 1.0, *best.Median, 1e-9)

	workbookPath := filepath.Join(opts.OutputDir, WorkbookFile)
	f, err := excelize.OpenFile(workbookPath)
	require.NoError(t, err)
	defer f.Close()

	course, err := f.GetCellValue(output.RankingsSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "A", course)
	avg, err := f.GetCellValue(output.RankingsSheet, "D2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1.4", avg)

	zr, err := zip.OpenReader(workbookPath)
	require.NoError(t, err)
	defer zr.Close()
	var hasChart bool
	for _, file := range zr.File {
		if strings.HasPrefix(file.Name, "xl/charts/chart") {
			hasChart = true
		}
	}
	assert.True(t, hasChart, "workbook should embed a chart part")
}
