package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/verte-zerg/drawfreq/internal/model"
	"github.com/verte-zerg/drawfreq/internal/stats"
)

// Format selects the image encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 400

	labelRotation    = 45.0
	legendWidth      = 130
	legendRowHeight  = 22
	legendSwatchSize = 14
	legendFontSize   = 10.0
	emptyBarLabel    = "no data"
)

const (
	highlightHex = "FFA500"
	otherHex     = "4682B4"
	emptyHex     = "D3D3D3"
)

var (
	highlightColor = drawing.ColorFromHex(highlightHex)
	otherColor     = drawing.ColorFromHex(otherHex)
	emptyColor     = drawing.ColorFromHex(emptyHex)
)

// go-chart writes only a class attribute for styles with a ClassName,
// so SVG bar colours come from this stylesheet.
var svgCSS = fmt.Sprintf(
	".bar{fill:#%[1]s;stroke:#%[1]s}.bar.highlight{fill:#%[2]s;stroke:#%[2]s}.bar.empty{fill:#%[3]s;stroke:#%[3]s}",
	otherHex, highlightHex, emptyHex)

// ParseFormat validates an image format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unknown image format %q (use png or svg)", name)
	}
}

// Image renders bar charts as PNG or SVG.
type Image struct {
	Format Format
	Width  int
	Height int
}

// Extension returns the file extension for the configured format.
func (im Image) Extension() string {
	if im.Format == FormatSVG {
		return "svg"
	}
	return "png"
}

// Render implements Renderer.
func (im Image) Render(w io.Writer, c model.Chart) error {
	graph := im.barChart(c)
	provider := chart.PNG
	if im.Format == FormatSVG {
		provider = chart.SVGWithCSS(svgCSS, "")
	}
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render %s: %w", c.ID, err)
	}
	return nil
}

func (im Image) barChart(c model.Chart) chart.BarChart {
	width, height := im.Width, im.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	bars := make([]chart.Value, 0, len(c.Entries))
	for _, e := range c.Entries {
		bars = append(bars, chart.Value{
			Label: e.Number,
			Value: float64(e.Count),
			Style: barStyle(c.Highlight.Contains(e.Number)),
		})
	}
	if len(bars) == 0 {
		bars = append(bars, chart.Value{
			Label: emptyBarLabel,
			Style: chart.Style{FillColor: emptyColor, StrokeColor: emptyColor, ClassName: "bar empty"},
		})
	}

	bound, step := stats.NiceScale(float64(c.Entries.MaxCount()), stats.DefaultTickCount)
	if bound <= 0 {
		bound, step = 1, 1
	}
	ticks := make([]chart.Tick, 0)
	for _, v := range stats.Ticks(bound, step) {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%g", v)})
	}

	barWidth, spacing := bandWidths(width, len(bars))
	return chart.BarChart{
		Title:      c.Label,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.Style{TextRotationDegrees: labelRotation},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: bound},
			Ticks: ticks,
		},
		Bars:     bars,
		Elements: []chart.Renderable{legend(c.Top)},
	}
}

func barStyle(highlighted bool) chart.Style {
	if highlighted {
		return chart.Style{FillColor: highlightColor, StrokeColor: highlightColor, ClassName: "bar highlight"}
	}
	return chart.Style{FillColor: otherColor, StrokeColor: otherColor, ClassName: "bar"}
}

// bandWidths splits the plot width into bars with 10% padding between them.
func bandWidths(width, n int) (int, int) {
	if n <= 0 {
		n = 1
	}
	band := (width - 100) / n
	if band < 2 {
		band = 2
	}
	spacing := band / 10
	if spacing < 1 {
		spacing = 1
	}
	return band - spacing, spacing
}

func legend(top int) chart.Renderable {
	topLabel, otherLabel := stats.LegendLabels(top)
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		x := canvasBox.Right - legendWidth
		y := canvasBox.Top
		drawLegendEntry(r, defaults, x, y, highlightColor, topLabel)
		drawLegendEntry(r, defaults, x, y+legendRowHeight, otherColor, otherLabel)
	}
}

func drawLegendEntry(r chart.Renderer, defaults chart.Style, x, y int, color drawing.Color, label string) {
	r.SetFillColor(color)
	r.SetStrokeColor(color)
	r.SetStrokeWidth(1)
	r.MoveTo(x, y)
	r.LineTo(x+legendSwatchSize, y)
	r.LineTo(x+legendSwatchSize, y+legendSwatchSize)
	r.LineTo(x, y+legendSwatchSize)
	r.LineTo(x, y)
	r.Close()
	r.FillStroke()

	r.SetFont(defaults.Font)
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(legendFontSize)
	r.Text(label, x+legendSwatchSize+6, y+legendSwatchSize-3)
	r.ResetStyle()
}

// WriteFiles renders each chart to dir/<chart id>.<ext> and returns the paths.
func WriteFiles(dir string, charts []model.Chart, im Image) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		path := filepath.Join(dir, c.ID+"."+im.Extension())
		if err := writeFile(path, c, im); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, c model.Chart, im Image) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "chart-*."+im.Extension())
	if err != nil {
		return fmt.Errorf("failed to create temp chart: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if err := im.Render(writer, c); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush chart: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close chart: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move chart into place: %w", err)
	}
	return nil
}
