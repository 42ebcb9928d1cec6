package courserank

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/aggregate"
	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/models"
	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/output"
	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/parser"
)

// ArtifactKind names an output file produced by Run.
type ArtifactKind string

const (
	ArtifactReport   ArtifactKind = "Text report"
	ArtifactChart    ArtifactKind = "Chart"
	ArtifactSummary  ArtifactKind = "Summary"
	ArtifactWorkbook ArtifactKind = "Workbook"
)

// Artifact is a file written by Run.
type Artifact struct {
	Kind ArtifactKind
	Path string
}

// Result is the outcome of Run.
type Result struct {
	Report    *models.Report
	Artifacts []Artifact
}

// Run analyzes the input and writes the report artifacts into opts.OutputDir.
// Nothing is written when the analysis fails. Existing artifacts are overwritten.
func Run(path string, opts Options) (*Result, error) {
	log := opts.logger()

	report, columns, err := analyze(path, opts)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, NewAnalysisError(opts.OutputDir, "write", err)
	}

	result := &Result{Report: report}
	chartOpts := output.DefaultChartOptions()

	reportPath := filepath.Join(opts.OutputDir, ReportFile)
	if err := output.WriteText(report, reportPath); err != nil {
		return nil, NewAnalysisError(reportPath, "write", err)
	}
	result.Artifacts = append(result.Artifacts, Artifact{Kind: ArtifactReport, Path: reportPath})

	chartPath := filepath.Join(opts.OutputDir, ChartFile)
	if err := output.SaveChart(report, chartPath, chartOpts); err != nil {
		return nil, NewAnalysisError(chartPath, "chart", err)
	}
	result.Artifacts = append(result.Artifacts, Artifact{Kind: ArtifactChart, Path: chartPath})

	if opts.Summary {
		summary := &models.Summary{
			Source:      report.Source,
			Sheet:       report.Sheet,
			Respondents: report.Respondents,
			Courses:     aggregate.Summarize(report.Rankings, columns, parser.ColumnName),
		}
		summaryPath := filepath.Join(opts.OutputDir, SummaryFile)
		if err := output.WriteJSON(summary, summaryPath); err != nil {
			return nil, NewAnalysisError(summaryPath, "summary", err)
		}
		result.Artifacts = append(result.Artifacts, Artifact{Kind: ArtifactSummary, Path: summaryPath})
	}

	if opts.Workbook {
		workbookPath := filepath.Join(opts.OutputDir, WorkbookFile)
		if err := output.SaveWorkbook(report, workbookPath, chartOpts); err != nil {
			return nil, NewAnalysisError(workbookPath, "workbook", err)
		}
		result.Artifacts = append(result.Artifacts, Artifact{Kind: ArtifactWorkbook, Path: workbookPath})
	}

	for _, a := range result.Artifacts {
		log.Debug("Wrote artifact", slog.String("kind", string(a.Kind)), slog.String("path", a.Path))
	}
	return result, nil
}
