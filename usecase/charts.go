package usecase

import (
	"math"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

const (
	ThroughputChartFile  = "1_throughput_comparison.png"
	DelayChartFile       = "2_delay_comparison.png"
	LossChartFile        = "3_packet_loss_comparison.png"
	UtilizationChartFile = "4_link_utilization.png"
	TradeoffChartFile    = "5_throughput_delay_tradeoff.png"
	FairnessChartFile    = "6_fairness_index.png"
)

// ComparisonCharts builds the six result charts in output order. The bar
// charts take their values from rows, the scatter plots the raw forward
// flows.
func ComparisonCharts(rows []domain.AggregateRow, forward []domain.FlowRecord) []domain.Chart {
	variants := domain.Variants(forward)
	scenarios := domain.Scenarios(forward)

	bars := func(file, title, yLabel string, value func(domain.AggregateRow) float64) domain.BarChart {
		values := make(map[domain.GroupKey]float64, len(rows))
		for _, r := range rows {
			values[r.Key()] = value(r)
		}
		return domain.BarChart{
			File:      file,
			Title:     title,
			XLabel:    "Scenario",
			YLabel:    yLabel,
			Variants:  variants,
			Scenarios: scenarios,
			Values:    values,
		}
	}

	throughput := bars(ThroughputChartFile,
		"TCP Variant Throughput Comparison Across Scenarios",
		"Aggregate Throughput (Mbps)",
		func(r domain.AggregateRow) float64 { return r.ThroughputSum })

	delay := bars(DelayChartFile,
		"TCP Variant Delay Comparison Across Scenarios",
		"Average End-to-End Delay (ms)",
		domain.AggregateRow.DelayMs)

	loss := bars(LossChartFile,
		"TCP Variant Packet Loss Comparison",
		"Total Lost Packets",
		func(r domain.AggregateRow) float64 { return float64(r.LostPackets) })

	utilization := bars(UtilizationChartFile,
		"Bottleneck Link Utilization by TCP Variant",
		"Link Utilization (%)",
		func(r domain.AggregateRow) float64 { return r.UtilizationPct })
	utilization.Reference = &domain.ReferenceLine{Value: 100, Label: "100% Capacity", Kind: domain.ReferenceLimit}
	// Over-subscribed groups stay visible above the capacity line.
	utilization.YMax = math.Max(110, utilization.MaxValue()*1.05)

	fairness := bars(FairnessChartFile,
		"Fairness Index Comparison (1.0 = Perfect Fairness)",
		"Jain's Fairness Index",
		func(r domain.AggregateRow) float64 { return r.Fairness })
	fairness.Reference = &domain.ReferenceLine{Value: 1, Label: "Perfect Fairness", Kind: domain.ReferenceTarget}
	fairness.YMax = 1.1

	return []domain.Chart{
		throughput,
		delay,
		loss,
		utilization,
		tradeoffChart(variants, forward),
		fairness,
	}
}

func tradeoffChart(variants []string, forward []domain.FlowRecord) domain.ScatterChart {
	points := make(map[string][]domain.Point, len(variants))
	for _, r := range forward {
		points[r.Variant] = append(points[r.Variant], domain.Point{X: r.DelayS * 1000, Y: r.ThroughputMbps})
	}
	return domain.ScatterChart{
		File:     TradeoffChartFile,
		Title:    "Throughput-Delay Trade-off Analysis",
		XLabel:   "Average Delay (ms)",
		YLabel:   "Throughput (Mbps)",
		Variants: variants,
		Points:   points,
	}
}
