package output

import (
	"errors"
	"image/color"
	"math"

	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoRankings indicates there is nothing to plot.
var ErrNoRankings = errors.New("no rankings to plot")

// labelGap is the distance, in rank units, between a bar's end and its value label.
const labelGap = 0.1

// ChartOptions configures the bar chart.
type ChartOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
	// BarColor fills each bar.
	BarColor color.Color
}

// DefaultChartOptions returns the chart styling used for course rankings.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Title:    "Average Course Rankings by Students",
		XLabel:   "Average Rank (1 = Best, 8 = Worst)",
		YLabel:   "Course",
		Width:    12 * vg.Inch,
		Height:   8 * vg.Inch,
		BarColor: color.RGBA{R: 135, G: 206, B: 235, A: 255},
	}
}

// NewChart builds a horizontal bar chart of the report. The first ranking (the best
// course) is drawn at the top and every bar is annotated with its average.
// Undefined averages are drawn as empty bars labelled "nan".
func NewChart(report *models.Report, opts ChartOptions) (*plot.Plot, error) {
	n := len(report.Rankings)
	if n == 0 {
		return nil, ErrNoRankings
	}

	// Category positions grow upward, so the best course takes the highest position.
	values := make(plotter.Values, n)
	names := make([]string, n)
	points := make(plotter.XYs, n)
	texts := make([]string, n)
	maxValue := 0.0
	for i, r := range report.Rankings {
		pos := n - 1 - i
		v := r.AverageRank
		if math.IsNaN(v) {
			v = 0
		}
		values[pos] = v
		names[pos] = r.Course
		points[pos] = plotter.XY{X: v + labelGap, Y: float64(pos)}
		texts[pos] = FormatAverage(r.AverageRank)
		maxValue = math.Max(maxValue, v)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	grid.Vertical.Color = color.Gray{Y: 200}
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(grid)

	bars, err := plotter.NewBarChart(values, vg.Points(36))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = opts.BarColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    points,
		Labels: texts,
	})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XLeft
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)

	p.NominalY(names...)
	p.X.Min = 0
	p.X.Max = math.Max(maxValue*1.15, maxValue+0.8)

	return p, nil
}

// SaveChart renders the chart to path; the image format follows the file extension.
func SaveChart(report *models.Report, path string, opts ChartOptions) error {
	p, err := NewChart(report, opts)
	if err != nil {
		return err
	}
	return p.Save(opts.Width, opts.Height, path)
}
