// Package chart renders calibration tables as annotated level charts.
//
// Each chart carries three curves (dBu, dBVU, dBFS) against NDI, one glyph
// shape and dash pattern per curve, a dB annotation on every point, x ticks
// at exactly the calibration levels, a legend and a grid. Charts are written
// to files in any format gonum/plot can encode.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	levels "github.com/tphakala/go-audio-levels"
	"github.com/tphakala/go-audio-levels/internal/logger"
)

// ErrUnsupportedFormat indicates an output format gonum/plot cannot encode.
var ErrUnsupportedFormat = errors.New("unsupported chart format")

var supportedFormats = map[string]bool{
	"png":  true,
	"svg":  true,
	"pdf":  true,
	"jpg":  true,
	"jpeg": true,
	"tif":  true,
	"tiff": true,
	"eps":  true,
}

// Options configures a Renderer.
type Options struct {
	// OutputDir receives the chart files. Created on first render.
	OutputDir string

	// Format is the file extension: png, svg, pdf, jpg, tif or eps.
	Format string

	// WidthInches and HeightInches size the figure. Zero uses the defaults.
	WidthInches  float64
	HeightInches float64
}

// Renderer writes charts for calibration tables.
type Renderer struct {
	dir    string
	format string
	width  vg.Length
	height vg.Length
}

// New validates opts and returns a Renderer.
func New(opts Options) (*Renderer, error) {
	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		format = DefaultFormat
	}
	if !supportedFormats[format] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}

	width, height := opts.WidthInches, opts.HeightInches
	if width == 0 {
		width = DefaultWidthInches
	}
	if height == 0 {
		height = DefaultHeightInches
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("chart size must be positive, got %gx%g in", width, height)
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}

	return &Renderer{
		dir:    dir,
		format: format,
		width:  vg.Length(width) * vg.Inch,
		height: vg.Length(height) * vg.Inch,
	}, nil
}

// FileName returns the file name used for a standard and scale, e.g. "smpte_log.png".
func (r *Renderer) FileName(std levels.Standard, scale levels.Scale) string {
	return fmt.Sprintf("%s_%s.%s", strings.ToLower(std.String()), scale, r.format)
}

// Render draws the chart for std on the given x scale and returns the path
// of the written file.
func (r *Renderer) Render(std levels.Standard, scale levels.Scale) (string, error) {
	table, err := levels.TableFor(std)
	if err != nil {
		return "", err
	}

	p, err := Build(table, scale)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}

	path := filepath.Join(r.dir, r.FileName(std, scale))
	if err := p.Save(r.width, r.height, path); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}

	logger.Debugf("chart: rendered %s %s scale to %s", std, scale, path)
	return path, nil
}

// curve describes how one decibel scale is drawn.
type curve struct {
	name   string
	color  color.Color
	dashes []vg.Length
	shape  draw.GlyphDrawer
	values func(levels.Series) []float64
}

var curves = []curve{
	{
		name:   "dBu",
		color:  color.RGBA{B: 255, A: 255},
		shape:  draw.CircleGlyph{},
		values: func(s levels.Series) []float64 { return s.DBu },
	},
	{
		name:   "dBVU",
		color:  color.RGBA{G: 128, A: 255},
		dashes: []vg.Length{vg.Points(dashOn), vg.Points(dashOff)},
		shape:  draw.BoxGlyph{},
		values: func(s levels.Series) []float64 { return s.DBVU },
	},
	{
		name:   "dBFS",
		color:  color.RGBA{R: 255, A: 255},
		dashes: []vg.Length{vg.Points(dashOn), vg.Points(dashOff), vg.Points(dotOn), vg.Points(dashOff)},
		shape:  draw.TriangleGlyph{},
		values: func(s levels.Series) []float64 { return s.DBFS },
	},
}

// Build assembles the chart for a table without writing it anywhere.
func Build(table levels.Table, scale levels.Scale) (*plot.Plot, error) {
	series := table.Series(scale)

	p := plot.New()
	p.Title.Text = series.Title
	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = yAxisLabel
	p.Add(plotter.NewGrid())

	for _, c := range curves {
		xys := toXYs(series.X, c.values(series))

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s curve: %w", c.name, err)
		}
		line.LineStyle.Color = c.color
		line.LineStyle.Width = vg.Points(lineWidth)
		line.LineStyle.Dashes = c.dashes
		points.GlyphStyle.Color = c.color
		points.GlyphStyle.Radius = vg.Points(glyphRadius)
		points.GlyphStyle.Shape = c.shape

		labels, err := annotations(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to annotate %s curve: %w", c.name, err)
		}

		p.Add(line, points, labels)
		p.Legend.Add(c.name, line, points)
	}

	setXAxis(p, series)
	setYAxis(p, series)
	p.Legend.Top = true

	return p, nil
}

func toXYs(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys
}

// annotations labels each point with its dB value, centered above the glyph.
func annotations(xys plotter.XYs) (*plotter.Labels, error) {
	texts := make([]string, len(xys))
	for i, xy := range xys {
		texts[i] = levels.FormatDB(xy.Y)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
	}
	labels.Offset = vg.Point{Y: vg.Points(annotationOffset)}
	return labels, nil
}

// setXAxis places one tick at every calibration level, labelled with the
// table's original text, and switches to a log scale when asked.
func setXAxis(p *plot.Plot, s levels.Series) {
	ticks := make([]plot.Tick, len(s.X))
	for i, x := range s.X {
		ticks[i] = plot.Tick{Value: x, Label: s.Labels[i]}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	lo, hi := floats.Min(s.X), floats.Max(s.X)
	if s.Scale == levels.ScaleLog {
		p.X.Scale = plot.LogScale{}
		p.X.Min = lo / logXMarginFactor
		p.X.Max = hi * logXMarginFactor
		return
	}
	margin := (hi - lo) * linearXMarginRatio
	p.X.Min = lo - margin
	p.X.Max = hi + margin
}

func setYAxis(p *plot.Plot, s levels.Series) {
	lo := floats.Min(s.DBu)
	hi := floats.Max(s.DBu)
	for _, col := range [][]float64{s.DBVU, s.DBFS} {
		lo = min(lo, floats.Min(col))
		hi = max(hi, floats.Max(col))
	}
	p.Y.Min = lo - yMarginBelowDB
	p.Y.Max = hi + yMarginAboveDB
}
