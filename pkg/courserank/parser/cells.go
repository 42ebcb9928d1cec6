// Package parser loads survey extracts and interprets their cells.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates the workbook has no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// LoadGrid reads the input file into a raw grid without treating any row as a header.
// Workbooks (.xlsx, .xlsm) are read through excelize using raw cell values; .csv files
// are read as-is. It returns the grid and the sheet name it was read from.
func LoadGrid(path, sheet string) (models.Grid, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		grid, err := loadCSV(path)
		return grid, "", err
	default:
		return loadWorkbook(path, sheet)
	}
}

func loadWorkbook(path, sheet string) (models.Grid, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, "", ErrNoSheets
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, sheet, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return models.Grid(rows), sheet, nil
}

func loadCSV(path string) (models.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Survey exports pad rows inconsistently.
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return models.Grid(records), nil
}
