package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseColumnSpan parses an inclusive column range such as "L:S" (or "$L:$S", "L11:S40")
// into a zero-based, end-exclusive span. "L:S" yields (11, 19).
func ParseColumnSpan(span string) (start, end int, err error) {
	span = strings.ReplaceAll(strings.TrimSpace(span), "$", "")

	parts := strings.Split(span, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid column span %q: expected FIRST:LAST", span)
	}

	first, err := columnNumber(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column span %q: %w", span, err)
	}
	last, err := columnNumber(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column span %q: %w", span, err)
	}
	if last < first {
		return 0, 0, fmt.Errorf("invalid column span %q: last column precedes first", span)
	}

	return first - 1, last, nil
}

// columnNumber resolves "L" or a cell reference like "L11" to its 1-based column number.
func columnNumber(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if strings.IndexAny(ref, "0123456789") >= 0 {
		col, _, err := excelize.CellNameToCoordinates(ref)
		return col, err
	}
	return excelize.ColumnNameToNumber(ref)
}

// ColumnName returns the spreadsheet letter for a zero-based column index.
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return fmt.Sprintf("#%d", col)
	}
	return name
}
