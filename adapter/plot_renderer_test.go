package adapter

import (
	"errors"
	"image"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

var testSize = ChartSize{
	Width:         6 * vg.Inch,
	Height:        3 * vg.Inch,
	ScatterWidth:  5 * vg.Inch,
	ScatterHeight: 4 * vg.Inch,
	DPI:           50,
}

func decodePNG(t *testing.T, path string) image.Config {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, "png", format)
	return cfg
}

func sampleBarChart() domain.BarChart {
	return domain.BarChart{
		File:      "1_throughput_comparison.png",
		Title:     "Throughput",
		XLabel:    "Scenario",
		YLabel:    "Mbps",
		Variants:  []string{"TcpBbr", "TcpCubic"},
		Scenarios: []int{1, 3},
		Values: map[domain.GroupKey]float64{
			{Variant: "TcpBbr", Scenario: 1}:   1.9,
			{Variant: "TcpCubic", Scenario: 1}: 1.7,
			{Variant: "TcpBbr", Scenario: 3}:   9.2,
		},
	}
}

func TestRender_BarChart(t *testing.T) {
	dir := t.TempDir()
	r := NewPlotChartRepository(dir, testSize)

	c := sampleBarChart()
	c.Reference = &domain.ReferenceLine{Value: 5, Label: "limit", Kind: domain.ReferenceLimit}
	path, err := r.Render(c)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, c.File), path)

	cfg := decodePNG(t, path)
	assert.InDelta(t, 300, cfg.Width, 1)
	assert.InDelta(t, 150, cfg.Height, 1)
}

func TestRender_ScatterChart(t *testing.T) {
	dir := t.TempDir()
	r := NewPlotChartRepository(dir, testSize)

	c := domain.ScatterChart{
		File:     "5_throughput_delay_tradeoff.png",
		Variants: []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"},
		Points:   map[string][]domain.Point{},
	}
	for i, v := range c.Variants {
		c.Points[v] = []domain.Point{{X: float64(10 * i), Y: float64(i)}, {X: math.NaN(), Y: 1}}
	}

	path, err := r.Render(c)
	require.NoError(t, err)

	cfg := decodePNG(t, path)
	assert.InDelta(t, 250, cfg.Width, 1)
	assert.InDelta(t, 200, cfg.Height, 1)
}

func TestRender_EmptyCharts(t *testing.T) {
	dir := t.TempDir()
	r := NewPlotChartRepository(dir, testSize)

	_, err := r.Render(domain.BarChart{File: "empty_bars.png"})
	require.NoError(t, err)
	_, err = r.Render(domain.ScatterChart{File: "empty_scatter.png"})
	require.NoError(t, err)

	decodePNG(t, filepath.Join(dir, "empty_bars.png"))
	decodePNG(t, filepath.Join(dir, "empty_scatter.png"))
}

func TestRender_CreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts", "run1")
	r := NewPlotChartRepository(dir, testSize)

	path, err := r.Render(sampleBarChart())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestRender_UnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	r := NewPlotChartRepository(blocker, testSize)
	_, err := r.Render(sampleBarChart())

	var ioErr *domain.IOError
	require.True(t, errors.As(err, &ioErr), "got %v", err)
}

type unknownChart struct{}

func (unknownChart) FileName() string { return "unknown.png" }

func TestRender_UnsupportedChart(t *testing.T) {
	r := NewPlotChartRepository(t.TempDir(), testSize)
	_, err := r.Render(unknownChart{})
	require.Error(t, err)
}

func TestVariantColor(t *testing.T) {
	assert.Equal(t, set2[0], variantColor(0, 1))
	assert.Equal(t, set2[0], variantColor(0, 3))
	assert.Equal(t, set2[4], variantColor(1, 3))
	assert.Equal(t, set2[7], variantColor(2, 3))
	for n := 2; n <= 12; n++ {
		assert.Equal(t, set2[len(set2)-1], variantColor(n-1, n))
	}
	assert.Equal(t, uint8(204), withAlpha(set2[1], 0.8).A)
	assert.Equal(t, variantGlyph(1), variantGlyph(9))
}
