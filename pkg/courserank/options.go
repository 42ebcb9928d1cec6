// Package courserank computes average course rankings from a survey extract.
package courserank

import (
	"fmt"
	"io"
	"log/slog"
)

const (
	// DefaultInput is the survey extract the default layout was written against.
	DefaultInput = "Grad Program Exit Survey Data 2024 (1).xlsx"
	// DefaultOutputDir receives the report artifacts.
	DefaultOutputDir = "outputs"
)

// Output file names inside the output directory.
const (
	ReportFile   = "course_rankings.txt"
	ChartFile    = "course_rankings_chart.png"
	SummaryFile  = "course_rankings.json"
	WorkbookFile = "course_rankings.xlsx"
)

// Layout locates the rankings inside the raw grid. All indices are zero-based.
type Layout struct {
	// HeaderRow holds the question text carrying each course name.
	HeaderRow int
	// DataStartRow is the first respondent row.
	DataStartRow int
	// ColStart is the first course column.
	ColStart int
	// ColEnd is one past the last course column.
	ColEnd int
}

// DefaultLayout returns the layout of the exit survey extract: course headers in
// row 1, responses from row 3, courses in columns L through S.
func DefaultLayout() Layout {
	return Layout{
		HeaderRow:    1,
		DataStartRow: 3,
		ColStart:     11,
		ColEnd:       19,
	}
}

// Courses returns the number of course columns.
func (l Layout) Courses() int {
	return l.ColEnd - l.ColStart
}

// Validate checks that the layout describes a non-empty region below its header.
func (l Layout) Validate() error {
	switch {
	case l.HeaderRow < 0 || l.DataStartRow < 0 || l.ColStart < 0:
		return fmt.Errorf("%w: negative index in %+v", ErrInvalidLayout, l)
	case l.ColEnd <= l.ColStart:
		return fmt.Errorf("%w: column span [%d, %d) is empty", ErrInvalidLayout, l.ColStart, l.ColEnd)
	case l.DataStartRow <= l.HeaderRow:
		return fmt.Errorf("%w: data row %d is not below header row %d", ErrInvalidLayout, l.DataStartRow, l.HeaderRow)
	}
	return nil
}

// Options configures an analysis run.
type Options struct {
	// Layout locates headers and responses.
	Layout Layout
	// Sheet names the worksheet to read. Empty selects the first sheet.
	Sheet string
	// OutputDir receives the artifacts; created if absent.
	OutputDir string
	// Summary additionally writes per-course statistics as JSON.
	Summary bool
	// Workbook additionally writes the rankings and a native chart as xlsx.
	Workbook bool
	// Logger receives progress records. If nil, logging is discarded.
	Logger *slog.Logger
}

// DefaultOptions returns options matching the exit survey extract.
func DefaultOptions() Options {
	return Options{
		Layout:    DefaultLayout(),
		OutputDir: DefaultOutputDir,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
