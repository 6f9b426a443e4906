package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/multierr"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

const OverviewChartFileName = "variant_overview.png"

// ChartOverviewRepository draws mean throughput per variant as a bar chart.
type ChartOverviewRepository struct {
	dir string
}

func NewChartOverviewRepository(dir string) *ChartOverviewRepository {
	return &ChartOverviewRepository{dir: dir}
}

func (r *ChartOverviewRepository) SaveOverview(o domain.Overview) (err error) {
	if len(o.Variants) == 0 {
		return errors.New("no variants to chart")
	}

	const barWidth = 60
	bars := make([]chart.Value, 0, len(o.Variants))
	maxMean := 0.0
	for i, v := range o.Variants {
		col := variantColor(i, len(o.Variants))
		fill := drawing.Color{R: col.R, G: col.G, B: col.B, A: 0xcc}
		bars = append(bars, chart.Value{
			Value: v.MeanThroughputMbps,
			Label: fmt.Sprintf("%s (n=%d)", v.Variant, v.Flows),
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
				StrokeWidth: 1,
			},
		})
		if v.MeanThroughputMbps > maxMean {
			maxMean = v.MeanThroughputMbps
		}
	}
	if maxMean <= 0 {
		maxMean = 1
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Mean throughput per variant (%d flows)", o.Flows),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      max(640, len(bars)*(barWidth+40)+160),
		Height:     480,
		BarWidth:   barWidth,
		YAxis: chart.YAxis{
			Name:  "Mbps",
			Range: &chart.ContinuousRange{Min: 0, Max: maxMean * 1.1},
		},
		Bars: bars,
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return &domain.IOError{Op: "create directory", Path: r.dir, Err: err}
	}
	path := filepath.Join(r.dir, OverviewChartFileName)
	f, err := os.Create(path)
	if err != nil {
		return &domain.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, &domain.IOError{Op: "close", Path: path, Err: cerr})
		}
	}()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}
