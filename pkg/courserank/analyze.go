package courserank

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/aggregate"
	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/models"
	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/parser"
)

// Analyze reads the survey extract at path and returns the courses sorted by
// average rank, best first.
func Analyze(path string, opts Options) (*models.Report, error) {
	report, _, err := analyze(path, opts)
	return report, err
}

func analyze(path string, opts Options) (*models.Report, []aggregate.Column, error) {
	log := opts.logger()
	layout := opts.Layout

	if err := layout.Validate(); err != nil {
		return nil, nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	grid, sheet, err := parser.LoadGrid(path, opts.Sheet)
	if err != nil {
		return nil, nil, NewAnalysisError(path, "load", err)
	}
	log.Debug("Loaded survey grid",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("rows", grid.Rows()),
		slog.Int("width", grid.Width()))

	if err := checkShape(grid, layout); err != nil {
		return nil, nil, NewAnalysisError(path, "layout", err)
	}

	columns := make([]aggregate.Column, 0, layout.Courses())
	for col := layout.ColStart; col < layout.ColEnd; col++ {
		ranks, missing := parser.ColumnRanks(grid, col, layout.DataStartRow)
		c := aggregate.Column{
			Index:   col,
			Label:   parser.CourseLabel(grid.Cell(layout.HeaderRow, col)),
			Ranks:   ranks,
			Missing: missing,
		}
		log.Debug("Collected course column",
			slog.String("column", parser.ColumnName(col)),
			slog.String("course", c.Label),
			slog.Int("responses", len(ranks)),
			slog.Int("missing", missing))
		columns = append(columns, c)
	}

	respondents := grid.Rows() - layout.DataStartRow
	if respondents < 0 {
		respondents = 0
	}

	report := &models.Report{
		Source:      filepath.Base(path),
		Sheet:       sheet,
		Respondents: respondents,
		Rankings:    aggregate.Rankings(columns),
	}
	log.Info("Computed course rankings",
		slog.String("source", report.Source),
		slog.Int("courses", len(report.Rankings)),
		slog.Int("respondents", respondents))

	return report, columns, nil
}

// checkShape verifies the grid reaches the header row and the last course column.
func checkShape(grid models.Grid, layout Layout) error {
	if grid.Rows() <= layout.HeaderRow {
		return fmt.Errorf("%w: %d rows, header expected at row %d", ErrLayoutMismatch, grid.Rows(), layout.HeaderRow)
	}
	if width := grid.Width(); width < layout.ColEnd {
		return fmt.Errorf("%w: %d columns, courses expected through column %s",
			ErrLayoutMismatch, width, parser.ColumnName(layout.ColEnd-1))
	}
	return nil
}
