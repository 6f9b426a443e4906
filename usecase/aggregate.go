package usecase

import (
	"math"
	"sort"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

// FilterForward drops near-idle acknowledgment flows. The input is left
// untouched.
func FilterForward(records []domain.FlowRecord) []domain.FlowRecord {
	out := make([]domain.FlowRecord, 0, len(records))
	for _, r := range records {
		if r.IsForward() {
			out = append(out, r)
		}
	}
	return out
}

type group struct {
	key         domain.GroupKey
	throughputs []float64
	delaySum    float64
	lost        int64
}

// Aggregate reduces forward flows to one row per (Variant, Scenario),
// ordered by variant name and then scenario id.
func Aggregate(forward []domain.FlowRecord, capacities domain.CapacityTable) ([]domain.AggregateRow, error) {
	groups := make(map[domain.GroupKey]*group)
	var order []*group
	for _, r := range forward {
		g, ok := groups[r.Key()]
		if !ok {
			g = &group{key: r.Key()}
			groups[r.Key()] = g
			order = append(order, g)
		}
		g.throughputs = append(g.throughputs, r.ThroughputMbps)
		g.delaySum += r.DelayS
		g.lost += r.LostPackets
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i].key, order[j].key
		if a.Variant != b.Variant {
			return a.Variant < b.Variant
		}
		return a.Scenario < b.Scenario
	})

	rows := make([]domain.AggregateRow, 0, len(order))
	for _, g := range order {
		capacity, err := capacities.Lookup(g.key.Scenario)
		if err != nil {
			return nil, err
		}

		var sum float64
		for _, x := range g.throughputs {
			sum += x
		}
		n := float64(len(g.throughputs))

		rows = append(rows, domain.AggregateRow{
			Variant:        g.key.Variant,
			Scenario:       g.key.Scenario,
			Flows:          len(g.throughputs),
			ThroughputSum:  sum,
			ThroughputMean: sum / n,
			DelayMean:      g.delaySum / n,
			LostPackets:    g.lost,
			CapacityMbps:   capacity,
			UtilizationPct: sum / capacity * 100,
			Fairness:       domain.JainIndex(g.throughputs),
		})
	}
	return rows, nil
}

// FairnessTable lists the fairness index per group, scenario first.
func FairnessTable(rows []domain.AggregateRow) []domain.FairnessRow {
	out := make([]domain.FairnessRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.FairnessRow{Scenario: r.Scenario, Variant: r.Variant, Fairness: r.Fairness})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Scenario != out[j].Scenario {
			return out[i].Scenario < out[j].Scenario
		}
		return out[i].Variant < out[j].Variant
	})
	return out
}

// SummarizeVariants describes the throughput of every loaded flow per
// variant. The deviation is the sample one and is NaN below two flows.
func SummarizeVariants(records []domain.FlowRecord) domain.Overview {
	byVariant := make(map[string][]float64)
	for _, r := range records {
		byVariant[r.Variant] = append(byVariant[r.Variant], r.ThroughputMbps)
	}

	overview := domain.Overview{
		Flows:     len(records),
		Scenarios: domain.Scenarios(records),
	}
	for _, v := range domain.Variants(records) {
		xs := byVariant[v]
		var sum float64
		for _, x := range xs {
			sum += x
		}
		mean := sum / float64(len(xs))

		std := math.NaN()
		if len(xs) > 1 {
			var ss float64
			for _, x := range xs {
				ss += (x - mean) * (x - mean)
			}
			std = math.Sqrt(ss / float64(len(xs)-1))
		}

		overview.Variants = append(overview.Variants, domain.VariantStats{
			Variant:            v,
			Flows:              len(xs),
			MeanThroughputMbps: mean,
			StdThroughputMbps:  std,
		})
	}
	return overview
}
