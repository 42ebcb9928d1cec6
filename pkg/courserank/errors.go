package courserank

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidLayout indicates the layout constants are inconsistent.
var ErrInvalidLayout = errors.New("invalid layout")

// ErrLayoutMismatch indicates the input does not have the shape the layout expects.
var ErrLayoutMismatch = errors.New("input does not match layout")

// AnalysisError represents a failure in one stage of the analysis.
type AnalysisError struct {
	Path  string
	Stage string // "load", "layout", "write", "chart", "summary", "workbook"
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Stage, e.Path, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(path, stage string, err error) *AnalysisError {
	return &AnalysisError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
