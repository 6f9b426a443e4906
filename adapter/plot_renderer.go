package adapter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

// ChartSize is the physical size of rendered images.
type ChartSize struct {
	Width         vg.Length
	Height        vg.Length
	ScatterWidth  vg.Length
	ScatterHeight vg.Length
	DPI           int
}

// PlotChartRepository renders comparison charts as PNG files into a
// directory.
type PlotChartRepository struct {
	dir  string
	size ChartSize
}

func NewPlotChartRepository(dir string, size ChartSize) *PlotChartRepository {
	return &PlotChartRepository{dir: dir, size: size}
}

// Render draws c and returns the path of the written image.
func (r *PlotChartRepository) Render(c domain.Chart) (string, error) {
	var (
		p    *plot.Plot
		w, h vg.Length
		err  error
	)
	switch c := c.(type) {
	case domain.BarChart:
		p, err = barPlot(c)
		w, h = r.size.Width, r.size.Height
	case domain.ScatterChart:
		p, err = scatterPlot(c)
		w, h = r.size.ScatterWidth, r.size.ScatterHeight
	default:
		return "", fmt.Errorf("unsupported chart type %T", c)
	}
	if err != nil {
		return "", fmt.Errorf("failed to build %s: %w", c.FileName(), err)
	}
	return r.save(p, w, h, c.FileName())
}

func (r *PlotChartRepository) save(p *plot.Plot, w, h vg.Length, name string) (path string, err error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", &domain.IOError{Op: "create directory", Path: r.dir, Err: err}
	}
	path = filepath.Join(r.dir, name)

	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.size.DPI))
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return "", &domain.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, &domain.IOError{Op: "close", Path: path, Err: cerr})
		}
	}()

	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		return "", &domain.IOError{Op: "write", Path: path, Err: err}
	}
	return path, nil
}

func barPlot(c domain.BarChart) (*plot.Plot, error) {
	p := newPlot(c.Title, c.XLabel, c.YLabel)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(grid)

	thumbs := make([]plot.Thumbnailer, len(c.Variants))
	for _, b := range c.Bars() {
		if math.IsNaN(b.Height) || math.IsInf(b.Height, 0) {
			continue
		}
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: b.Left, Y: 0},
			{X: b.Right, Y: 0},
			{X: b.Right, Y: b.Height},
			{X: b.Left, Y: b.Height},
		})
		if err != nil {
			return nil, err
		}
		col := variantColor(b.VariantIndex, len(c.Variants))
		poly.Color = withAlpha(col, 0.8)
		poly.LineStyle.Color = col
		poly.LineStyle.Width = vg.Points(0.5)
		p.Add(poly)

		if thumbs[b.VariantIndex] == nil {
			thumbs[b.VariantIndex] = poly
		}
	}
	for i, variant := range c.Variants {
		if thumbs[i] != nil {
			p.Legend.Add(variant, thumbs[i])
		}
	}

	if ref := c.Reference; ref != nil {
		line := plotter.NewFunction(func(float64) float64 { return ref.Value })
		line.Color = capacityLineColor
		if ref.Kind == domain.ReferenceTarget {
			line.Color = fairLineColor
		}
		line.Width = vg.Points(2)
		line.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(line)
		p.Legend.Add(ref.Label, line)
	}

	ticks := make([]plot.Tick, len(c.Scenarios))
	for i, s := range c.Scenarios {
		ticks[i] = plot.Tick{Value: float64(i), Label: fmt.Sprintf("Scenario %d", s)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min = -0.5
	p.X.Max = math.Max(float64(len(c.Scenarios))-0.5, 0.5)

	p.Y.Min = 0
	switch {
	case c.YMax > 0:
		p.Y.Max = c.YMax
	case p.Y.Max <= 0 || math.IsInf(p.Y.Max, 0):
		p.Y.Max = 1
	}
	return p, nil
}

func scatterPlot(c domain.ScatterChart) (*plot.Plot, error) {
	p := newPlot(c.Title, c.XLabel, c.YLabel)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	plotted := 0
	for i, variant := range c.Variants {
		xys := make(plotter.XYs, 0, len(c.Points[variant]))
		for _, pt := range c.Points[variant] {
			if !finite(pt.X) || !finite(pt.Y) {
				continue
			}
			xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
		}
		if len(xys) == 0 {
			continue
		}

		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = withAlpha(variantColor(i, len(c.Variants)), 0.6)
		s.GlyphStyle.Shape = variantGlyph(i)
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
		p.Legend.Add(variant, s)
		plotted += len(xys)
	}

	if plotted == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
	}
	return p, nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	return p
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
