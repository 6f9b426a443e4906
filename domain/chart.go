package domain

// ClusterWidth is the share of one scenario tick interval covered by the
// bars of that scenario.
const ClusterWidth = 0.8

// Chart is a single output image.
type Chart interface {
	FileName() string
}

type ReferenceKind int

const (
	// ReferenceLimit marks a ceiling such as nominal link capacity.
	ReferenceLimit ReferenceKind = iota
	// ReferenceTarget marks an ideal value such as perfect fairness.
	ReferenceTarget
)

type ReferenceLine struct {
	Value float64
	Label string
	Kind  ReferenceKind
}

// BarChart compares one metric per (Scenario, Variant) pair as grouped
// bars: one cluster per scenario, one bar slot per variant.
type BarChart struct {
	File      string
	Title     string
	XLabel    string
	YLabel    string
	Variants  []string
	Scenarios []int
	Values    map[GroupKey]float64
	Reference *ReferenceLine
	// YMax fixes the top of the value axis; zero leaves it to the data.
	YMax float64
}

func (c BarChart) FileName() string { return c.File }

// Bar is the placed rectangle of one (Variant, Scenario) value in axis units.
type Bar struct {
	Variant       string
	VariantIndex  int
	Scenario      int
	ScenarioIndex int
	Left          float64
	Right         float64
	Height        float64
}

func (c BarChart) BarWidth() float64 {
	if len(c.Variants) == 0 {
		return 0
	}
	return ClusterWidth / float64(len(c.Variants))
}

// Bars lays out the chart. The cluster of the i-th scenario is centred on
// x = i; pairs without a value produce no bar but keep their slot.
func (c BarChart) Bars() []Bar {
	w := c.BarWidth()
	n := float64(len(c.Variants))

	var bars []Bar
	for si, scenario := range c.Scenarios {
		for vi, variant := range c.Variants {
			v, ok := c.Values[GroupKey{Variant: variant, Scenario: scenario}]
			if !ok {
				continue
			}
			center := float64(si) + (float64(vi)-(n-1)/2)*w
			bars = append(bars, Bar{
				Variant:       variant,
				VariantIndex:  vi,
				Scenario:      scenario,
				ScenarioIndex: si,
				Left:          center - w/2,
				Right:         center + w/2,
				Height:        v,
			})
		}
	}
	return bars
}

// MaxValue returns the largest bar height, or zero for an empty chart.
func (c BarChart) MaxValue() float64 {
	var m float64
	for _, v := range c.Values {
		if v > m {
			m = v
		}
	}
	return m
}

type Point struct {
	X float64
	Y float64
}

// ScatterChart plots raw flows, one series per variant.
type ScatterChart struct {
	File     string
	Title    string
	XLabel   string
	YLabel   string
	Variants []string
	Points   map[string][]Point
}

func (c ScatterChart) FileName() string { return c.File }
