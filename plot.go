package dronelbl

// Charts of label statistics.

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Chart file names written by PlotLabelStats, besides the per split class distribution.
const (
	BoxSizeScatterFile   = "box_size_scatter.png"
	BoxSizeByClassFile   = "box_size_by_class.png"
	BoxSizeHistogramFile = "box_size_histogram.png"
)

const (
	histogramBins      = 50
	maxReportPoints    = 20000
	classGridRows      = 4
	classGridCols      = 3
	scatterPointRadius = 1
)

var (
	barColor        = color.RGBA{R: 135, G: 206, B: 235, A: 255} // Sky blue.
	widthHistColor  = color.RGBA{R: 135, G: 206, B: 235, A: 180}
	heightHistColor = color.RGBA{R: 144, G: 238, B: 144, A: 180} // Light green.
	scatterColor    = color.RGBA{R: 31, G: 119, B: 180, A: 128}
)

// ClassDistributionFile is the name of the class distribution chart for split.
func ClassDistributionFile(split string) string {
	return fmt.Sprintf("class_distribution_%s.png", split)
}

// ReportFile is the name of the HTML report for split.
func ReportFile(split string) string {
	return fmt.Sprintf("report_%s.html", split)
}

// PlotLabelStats writes the class distribution, box size scatter plots, box size histograms and an
// HTML report for the statistics of split to outDir. Returns the paths of the written files.
func PlotLabelStats(stats *LabelStats, split, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	var written []string
	save := func(name string, fn func(path string) error) error {
		path := filepath.Join(outDir, name)
		if err := fn(path); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		written = append(written, path)
		return nil
	}

	err := save(ClassDistributionFile(split), func(path string) error {
		return plotClassDistribution(stats, path)
	})
	if err == nil {
		err = save(BoxSizeScatterFile, func(path string) error {
			return plotBoxSizeScatter(stats.BoxSizes, path)
		})
	}
	if err == nil {
		err = save(BoxSizeByClassFile, func(path string) error {
			return plotBoxSizeByClass(stats, path)
		})
	}
	if err == nil && len(stats.BoxSizes) > 0 {
		err = save(BoxSizeHistogramFile, func(path string) error {
			return plotBoxSizeHistograms(stats.BoxSizes, path)
		})
	}
	if err == nil {
		err = save(ReportFile(split), func(path string) error {
			return writeHTMLReport(stats, split, path)
		})
	}

	return written, err
}

func plotClassDistribution(stats *LabelStats, path string) error {
	values := make(plotter.Values, NumClasses)
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, NumClasses),
		Labels: make([]string, NumClasses),
	}
	for i, c := range stats.ClassCounts {
		values[i] = float64(c)
		labels.XYs[i] = plotter.XY{X: float64(i), Y: float64(c)}
		labels.Labels[i] = fmt.Sprint(c)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Class Distribution (Total: %d objects)", stats.Total)
	p.X.Label.Text = "Class"
	p.Y.Label.Text = "Number of Objects"
	p.Add(plotter.NewGrid())

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)

	valueLabels, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(valueLabels)

	p.NominalX(classNames[:]...)
	p.Y.Min = 0

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// boxSizeXYs converts the sizes to plot points, width on x and height on y.
func boxSizeXYs(sizes []BoxSize) plotter.XYs {
	xys := make(plotter.XYs, len(sizes))
	for i, s := range sizes {
		xys[i] = plotter.XY{X: s.Width, Y: s.Height}
	}
	return xys
}

// newBoxSizePlot creates a plot of normalized widths and heights with both axes fixed to [0, 1].
func newBoxSizePlot(title string, sizes []BoxSize) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewGrid())

	if len(sizes) > 0 {
		s, err := plotter.NewScatter(boxSizeXYs(sizes))
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = scatterColor
		s.GlyphStyle.Radius = vg.Points(scatterPointRadius)
		p.Add(s)
	}

	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	return p, nil
}

func plotBoxSizeScatter(sizes []BoxSize, path string) error {
	p, err := newBoxSizePlot("Box Size Distribution (All Classes)", sizes)
	if err != nil {
		return err
	}
	p.X.Label.Text = "Normalized Width"
	p.Y.Label.Text = "Normalized Height"

	return p.Save(10*vg.Inch, 8*vg.Inch, path)
}

func plotBoxSizeByClass(stats *LabelStats, path string) error {
	plots := make([][]*plot.Plot, classGridRows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, classGridCols)
	}
	for i, name := range classNames {
		sizes := stats.ClassBoxSizes[i]
		p, err := newBoxSizePlot(fmt.Sprintf("%s (n=%d)", name, len(sizes)), sizes)
		if err != nil {
			return err
		}
		plots[i/classGridCols][i%classGridCols] = p
	}

	return saveTiled(plots, 15*vg.Inch, 12*vg.Inch, path)
}

func plotBoxSizeHistograms(sizes []BoxSize, path string) error {
	widths := make(plotter.Values, len(sizes))
	heights := make(plotter.Values, len(sizes))
	for i, s := range sizes {
		widths[i] = s.Width
		heights[i] = s.Height
	}

	newHist := func(title, xLabel string, values plotter.Values, c color.Color) (*plot.Plot, error) {
		p := plot.New()
		p.Title.Text = title
		p.X.Label.Text = xLabel
		p.Y.Label.Text = "Frequency"
		p.Add(plotter.NewGrid())

		h, err := plotter.NewHist(values, histogramBins)
		if err != nil {
			return nil, err
		}
		h.FillColor = c
		h.LineStyle.Width = 0
		p.Add(h)
		return p, nil
	}

	pw, err := newHist("Width Distribution", "Normalized Width", widths, widthHistColor)
	if err != nil {
		return err
	}
	ph, err := newHist("Height Distribution", "Normalized Height", heights, heightHistColor)
	if err != nil {
		return err
	}

	return saveTiled([][]*plot.Plot{{pw, ph}}, 12*vg.Inch, 5*vg.Inch, path)
}

// saveTiled draws the plots in a grid and saves them as a single PNG. Nil plots leave their tile
// empty.
func saveTiled(plots [][]*plot.Plot, width, height vg.Length, path string) (err error) {
	rows := len(plots)
	cols := 0
	for _, row := range plots {
		if len(row) > cols {
			cols = len(row)
		}
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}

	canvases := plot.Align(plots, tiles, dc)
	for r, row := range plots {
		for c, p := range row {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeWithErrCheck(f, &err)

	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(f)
	return err
}

// writeHTMLReport renders an interactive page with the class distribution and box sizes.
func writeHTMLReport(stats *LabelStats, split, path string) (err error) {
	barData := make([]opts.BarData, NumClasses)
	for i, c := range stats.ClassCounts {
		barData[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Label statistics", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Class Distribution", Subtitle: fmt.Sprintf("split=%s objects=%d files=%d", split, stats.Total, stats.Files)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(classNames[:]).
		AddSeries("objects", barData,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	// Downsample by stride to keep the page size reasonable.
	stride := 1
	if len(stats.BoxSizes) > maxReportPoints {
		stride = int(math.Ceil(float64(len(stats.BoxSizes)) / float64(maxReportPoints)))
	}
	scatterData := make([]opts.ScatterData, 0, len(stats.BoxSizes)/stride+1)
	for i := 0; i < len(stats.BoxSizes); i += stride {
		s := stats.BoxSizes[i]
		scatterData = append(scatterData, opts.ScatterData{Value: []interface{}{s.Width, s.Height}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "800px"}),
		charts.WithTitleOpts(opts.Title{Title: "Box Size Distribution", Subtitle: fmt.Sprintf("points=%d stride=%d", len(scatterData), stride)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: 1, Name: "Normalized Width", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1, Name: "Normalized Height", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("boxes", scatterData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))

	page := components.NewPage()
	page.AddCharts(bar, scatter)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeWithErrCheck(f, &err)

	return page.Render(f)
}
