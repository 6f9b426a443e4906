package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

func TestComparisonCharts(t *testing.T) {
	forward := FilterForward(sampleRecords())
	rows, err := Aggregate(forward, domain.DefaultCapacities)
	require.NoError(t, err)

	charts := ComparisonCharts(rows, forward)
	require.Len(t, charts, 6)

	var files []string
	for _, c := range charts {
		files = append(files, c.FileName())
	}
	assert.Equal(t, []string{
		"1_throughput_comparison.png",
		"2_delay_comparison.png",
		"3_packet_loss_comparison.png",
		"4_link_utilization.png",
		"5_throughput_delay_tradeoff.png",
		"6_fairness_index.png",
	}, files)

	cubic1 := domain.GroupKey{Variant: "TcpCubic", Scenario: 1}

	throughput := charts[0].(domain.BarChart)
	assert.Equal(t, []string{"TcpBbr", "TcpCubic", "TcpNewReno"}, throughput.Variants)
	assert.Equal(t, []int{1, 3}, throughput.Scenarios)
	assert.InDelta(t, 2.0, throughput.Values[cubic1], 1e-9)
	assert.Nil(t, throughput.Reference)
	// TcpNewReno never ran scenario 1.
	assert.NotContains(t, throughput.Values, domain.GroupKey{Variant: "TcpNewReno", Scenario: 1})
	assert.Len(t, throughput.Bars(), 4)

	delay := charts[1].(domain.BarChart)
	assert.InDelta(t, 42.0, delay.Values[cubic1], 1e-9)

	loss := charts[2].(domain.BarChart)
	assert.Equal(t, 20.0, loss.Values[cubic1])

	utilization := charts[3].(domain.BarChart)
	require.NotNil(t, utilization.Reference)
	assert.Equal(t, 100.0, utilization.Reference.Value)
	assert.Equal(t, domain.ReferenceLimit, utilization.Reference.Kind)
	assert.Equal(t, 110.0, utilization.YMax)

	tradeoff := charts[4].(domain.ScatterChart)
	assert.Equal(t, throughput.Variants, tradeoff.Variants)
	require.Len(t, tradeoff.Points["TcpCubic"], 2)
	assert.InDelta(t, 40.0, tradeoff.Points["TcpCubic"][0].X, 1e-9)
	assert.Equal(t, 0.9, tradeoff.Points["TcpCubic"][0].Y)

	fairness := charts[5].(domain.BarChart)
	require.NotNil(t, fairness.Reference)
	assert.Equal(t, 1.0, fairness.Reference.Value)
	assert.Equal(t, domain.ReferenceTarget, fairness.Reference.Kind)
	assert.Equal(t, 1.1, fairness.YMax)
	for _, v := range fairness.Values {
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestComparisonCharts_OversubscribedAxis(t *testing.T) {
	forward := []domain.FlowRecord{
		flow("TcpBbr", 1, 1.5, 0.01, 0),
		flow("TcpBbr", 1, 1.5, 0.01, 0),
	}
	rows, err := Aggregate(forward, domain.DefaultCapacities)
	require.NoError(t, err)

	utilization := ComparisonCharts(rows, forward)[3].(domain.BarChart)
	assert.InDelta(t, 150.0, utilization.Values[domain.GroupKey{Variant: "TcpBbr", Scenario: 1}], 1e-9)
	assert.InDelta(t, 157.5, utilization.YMax, 1e-9)
}

func TestVariantFilter(t *testing.T) {
	f, err := NewVariantFilter([]string{"Tcp*Reno", "TcpBbr"})
	require.NoError(t, err)

	assert.True(t, f.Match("TcpNewReno"))
	assert.True(t, f.Match("TcpBbr"))
	assert.False(t, f.Match("TcpCubic"))

	kept := f.Apply(sampleRecords())
	for _, r := range kept {
		assert.NotEqual(t, "TcpCubic", r.Variant)
	}
	assert.Len(t, kept, 6)

	all, err := NewVariantFilter(nil)
	require.NoError(t, err)
	assert.Len(t, all.Apply(sampleRecords()), 9)
	assert.Equal(t, "*", all.String())

	var none *VariantFilter
	assert.True(t, none.Match("anything"))

	_, err = NewVariantFilter([]string{"Tcp[Bbr"})
	require.Error(t, err)
}
