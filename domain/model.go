package domain

import "sort"

// ForwardThresholdMbps separates data-carrying flows from the
// acknowledgment-only reverse flows the simulator also reports.
const ForwardThresholdMbps = 0.1

// FlowRecord is one measured flow from the simulator output.
type FlowRecord struct {
	Variant        string
	Scenario       int
	ThroughputMbps float64
	DelayS         float64
	LostPackets    int64
}

// IsForward reports whether the flow carries data.
func (r FlowRecord) IsForward() bool {
	return r.ThroughputMbps > ForwardThresholdMbps
}

type GroupKey struct {
	Variant  string
	Scenario int
}

func (r FlowRecord) Key() GroupKey {
	return GroupKey{Variant: r.Variant, Scenario: r.Scenario}
}

// AggregateRow holds the reduced metrics of one (Variant, Scenario) group.
type AggregateRow struct {
	Variant        string
	Scenario       int
	Flows          int
	ThroughputSum  float64
	ThroughputMean float64
	DelayMean      float64
	LostPackets    int64
	CapacityMbps   float64
	UtilizationPct float64
	Fairness       float64
}

func (r AggregateRow) Key() GroupKey {
	return GroupKey{Variant: r.Variant, Scenario: r.Scenario}
}

func (r AggregateRow) DelayMs() float64 {
	return r.DelayMean * 1000
}

type FairnessRow struct {
	Scenario int
	Variant  string
	Fairness float64
}

// VariantStats describes the throughput distribution of one variant over
// every loaded flow.
type VariantStats struct {
	Variant            string
	Flows              int
	MeanThroughputMbps float64
	StdThroughputMbps  float64
}

type Overview struct {
	Flows     int
	Variants  []VariantStats
	Scenarios []int
}

// CapacityTable maps a scenario id to its bottleneck capacity in Mbps.
type CapacityTable map[int]float64

// DefaultCapacities mirrors the bottleneck links of the dumbbell simulation.
var DefaultCapacities = CapacityTable{
	1: 2,
	2: 2,
	3: 10,
	4: 10,
}

func (t CapacityTable) Lookup(scenario int) (float64, error) {
	c, ok := t[scenario]
	if !ok {
		return 0, &MissingCapacityError{Scenario: scenario}
	}
	return c, nil
}

// Variants returns the distinct variant names in ascending order.
func Variants(records []FlowRecord) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		if _, ok := seen[r.Variant]; ok {
			continue
		}
		seen[r.Variant] = struct{}{}
		out = append(out, r.Variant)
	}
	sort.Strings(out)
	return out
}

// Scenarios returns the distinct scenario ids in ascending order.
func Scenarios(records []FlowRecord) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, r := range records {
		if _, ok := seen[r.Scenario]; ok {
			continue
		}
		seen[r.Scenario] = struct{}{}
		out = append(out, r.Scenario)
	}
	sort.Ints(out)
	return out
}
