package visualize

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"wordfreq/internal/freq"
)

// ErrNoData is returned when a render is requested for an empty table.
var ErrNoData = errors.New("no data to render")

// BarOptions configures bar chart rendering.
type BarOptions struct {
	Title    string
	TopN     int
	WidthPx  int
	HeightPx int
	Palette  string
}

// Renderer draws frequency tables as PNG images.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer constructs a renderer. A nil logger disables logging.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{logger: logger.With("component", "visualize")}
}

// BarChart renders a vertical bar chart of the top-N words to a PNG file.
func (r *Renderer) BarChart(path string, table *freq.Table, opts BarOptions) error {
	entries := table.MostCommon(defaultTopN(opts.TopN, 20))
	if len(entries) == 0 {
		return ErrNoData
	}

	p, barColor, err := newBarPlot(opts, "Word", "Count")
	if err != nil {
		return err
	}

	values := make(plotter.Values, len(entries))
	names := make([]string, len(entries))
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(entries)),
		Labels: make([]string, len(entries)),
	}
	for i, entry := range entries {
		values[i] = float64(entry.Count)
		names[i] = entry.Word
		labels.XYs[i] = plotter.XY{X: float64(i), Y: float64(entry.Count)}
		labels.Labels[i] = strconv.Itoa(entry.Count)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if valueLabels, err := plotter.NewLabels(labels); err == nil {
		valueLabels.Offset = vg.Point{Y: vg.Points(2)}
		p.Add(valueLabels)
	}

	if err := r.save(p, path, opts.WidthPx, opts.HeightPx); err != nil {
		return err
	}
	r.logger.Info("bar chart rendered", "path", path, "bars", len(entries))
	return nil
}

// HorizontalBarChart renders a horizontal bar chart of the top-N words, with
// the most frequent word at the top.
func (r *Renderer) HorizontalBarChart(path string, table *freq.Table, opts BarOptions) error {
	entries := table.MostCommon(defaultTopN(opts.TopN, 15))
	if len(entries) == 0 {
		return ErrNoData
	}

	p, barColor, err := newBarPlot(opts, "Count", "Word")
	if err != nil {
		return err
	}

	// Reverse so the highest count lands on the top row of the chart.
	values := make(plotter.Values, len(entries))
	names := make([]string, len(entries))
	for i, entry := range entries {
		j := len(entries) - 1 - i
		values[j] = float64(entry.Count)
		names[j] = entry.Word
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	bars.Horizontal = true
	p.Add(bars)
	p.NominalY(names...)

	if err := r.save(p, path, opts.WidthPx, opts.HeightPx); err != nil {
		return err
	}
	r.logger.Info("horizontal bar chart rendered", "path", path, "bars", len(entries))
	return nil
}

func newBarPlot(opts BarOptions, xLabel, yLabel string) (*plot.Plot, color.Color, error) {
	palette := opts.Palette
	if palette == "" {
		palette = "viridis"
	}
	colors, err := paletteColors(palette)
	if err != nil {
		return nil, nil, err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	return p, colors[len(colors)/2], nil
}

func (r *Renderer) save(p *plot.Plot, path string, widthPx, heightPx int) error {
	if widthPx <= 0 {
		widthPx = 1200
	}
	if heightPx <= 0 {
		heightPx = 800
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	width := vg.Length(widthPx) / 96 * vg.Inch
	height := vg.Length(heightPx) / 96 * vg.Inch
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

func defaultTopN(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	return n
}
