package usecase

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

type FlowRepository interface {
	LoadFlows() ([]domain.FlowRecord, error)
}

type ChartRepository interface {
	// Render writes the chart and returns where it went.
	Render(c domain.Chart) (string, error)
}

type SummaryRepository interface {
	SaveSummary(rows []domain.AggregateRow) error
}

type FairnessRepository interface {
	SaveFairness(rows []domain.FairnessRow) error
}

type options struct {
	log        *zap.SugaredLogger
	capacities domain.CapacityTable
	variants   *VariantFilter
}

type Option func(*options)

func WithLog(log *zap.SugaredLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithCapacities replaces the default scenario capacity table.
func WithCapacities(c domain.CapacityTable) Option {
	return func(o *options) {
		o.capacities = c
	}
}

func WithVariantFilter(f *VariantFilter) Option {
	return func(o *options) {
		o.variants = f
	}
}

func newOptions(opts []Option) options {
	o := options{
		log:        zap.NewNop().Sugar(),
		capacities: domain.DefaultCapacities,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Analyzer runs the whole analysis once: load, filter, aggregate, then
// render the charts and write both tables.
type Analyzer struct {
	flowRepo     FlowRepository
	chartRepo    ChartRepository
	summaryRepo  SummaryRepository
	fairnessRepo FairnessRepository
	options
}

func NewAnalyzer(f FlowRepository, c ChartRepository, s SummaryRepository, fr FairnessRepository, opts ...Option) *Analyzer {
	return &Analyzer{
		flowRepo:     f,
		chartRepo:    c,
		summaryRepo:  s,
		fairnessRepo: fr,
		options:      newOptions(opts),
	}
}

func (a *Analyzer) Run() error {
	records, err := a.flowRepo.LoadFlows()
	if err != nil {
		return err
	}
	a.log.Infof("loaded %d flow measurements", len(records))

	selected := a.variants.Apply(records)
	if len(selected) != len(records) {
		a.log.Infow("selected variants", "patterns", a.variants.String(), "flows", len(selected))
	}

	forward := FilterForward(selected)
	a.log.Infow("filtered acknowledgment flows",
		"total", len(selected),
		"forward", len(forward),
		"threshold_mbps", domain.ForwardThresholdMbps,
	)
	if len(forward) == 0 {
		a.log.Warn("no forward flows left, charts will be empty")
	}

	rows, err := Aggregate(forward, a.capacities)
	if err != nil {
		return fmt.Errorf("failed to aggregate flows: %w", err)
	}
	a.log.Infof("detected variants %v", domain.Variants(forward))
	a.log.Infof("detected scenarios %v", domain.Scenarios(forward))

	charts := ComparisonCharts(rows, forward)
	var written []string
	for i, c := range charts {
		a.log.Infof("[%d/%d] rendering %s", i+1, len(charts), c.FileName())
		path, err := a.chartRepo.Render(c)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", c.FileName(), err)
		}
		written = append(written, path)
	}

	if err := a.summaryRepo.SaveSummary(rows); err != nil {
		return fmt.Errorf("failed to write summary statistics: %w", err)
	}
	if err := a.fairnessRepo.SaveFairness(FairnessTable(rows)); err != nil {
		return fmt.Errorf("failed to write fairness analysis: %w", err)
	}

	for _, row := range rows {
		a.log.Debugw("group summary",
			"variant", row.Variant,
			"scenario", row.Scenario,
			"flows", row.Flows,
			"throughput_mbps", row.ThroughputSum,
			"delay_ms", row.DelayMs(),
			"lost", row.LostPackets,
			"utilization_pct", row.UtilizationPct,
			"fairness", row.Fairness,
		)
	}
	a.log.Infow("analysis complete", "charts", written, "groups", len(rows))
	return nil
}
