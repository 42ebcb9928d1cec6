package output

import (
	"fmt"

	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/models"
	"github.com/xuri/excelize/v2"
)

// RankingsSheet is the worksheet written by SaveWorkbook.
const RankingsSheet = "Rankings"

var workbookHeader = []interface{}{"Position", "Course", "Responses", "Average Rank"}

// SaveWorkbook writes the sorted rankings to an xlsx file with a native horizontal
// bar chart next to the table. Undefined averages are left blank.
func SaveWorkbook(report *models.Report, path string, opts ChartOptions) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RankingsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(RankingsSheet, "A1", &workbookHeader); err != nil {
		return err
	}

	avgStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}
	headStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(RankingsSheet, "A1", "D1", headStyle); err != nil {
		return err
	}

	for i, r := range report.Rankings {
		row := i + 2
		values := []interface{}{i + 1, r.Course, r.Responses}
		if r.HasAverage() {
			values = append(values, r.AverageRank)
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(RankingsSheet, cell, &values); err != nil {
			return err
		}
		avgCell, _ := excelize.CoordinatesToCellName(4, row)
		if err := f.SetCellStyle(RankingsSheet, avgCell, avgCell, avgStyle); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(RankingsSheet, "B", "B", 40); err != nil {
		return err
	}

	if len(report.Rankings) > 0 {
		last := len(report.Rankings) + 1
		chart := &excelize.Chart{
			Type: excelize.Bar,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!$D$1", RankingsSheet),
				Categories: fmt.Sprintf("%s!$B$2:$B$%d", RankingsSheet, last),
				Values:     fmt.Sprintf("%s!$D$2:$D$%d", RankingsSheet, last),
			}},
			Title:  []excelize.RichTextRun{{Text: opts.Title}},
			Legend: excelize.ChartLegend{Position: "none"},
			PlotArea: excelize.ChartPlotArea{
				ShowVal: true,
			},
			// Best course first, at the top of the category axis.
			XAxis: excelize.ChartAxis{
				ReverseOrder: true,
				Title:        []excelize.RichTextRun{{Text: opts.YLabel}},
			},
			YAxis: excelize.ChartAxis{
				MajorGridLines: true,
				Title:          []excelize.RichTextRun{{Text: opts.XLabel}},
			},
			Dimension: excelize.ChartDimension{Width: 720, Height: 480},
		}
		if err := f.AddChart(RankingsSheet, "F2", chart); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
