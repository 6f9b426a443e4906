package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

type fakeOverviewSink struct {
	got []domain.Overview
	err error
}

func (s *fakeOverviewSink) SaveOverview(o domain.Overview) error {
	s.got = append(s.got, o)
	return s.err
}

func TestOverviewer_Run(t *testing.T) {
	first, second := &fakeOverviewSink{}, &fakeOverviewSink{}
	o := NewOverviewer(&fakeFlowRepo{records: sampleRecords()}, []OverviewRepository{first, second})

	overview, err := o.Run()
	require.NoError(t, err)

	// Acknowledgment flows are counted too.
	assert.Equal(t, 9, overview.Flows)
	require.Len(t, first.got, 1)
	require.Len(t, second.got, 1)
	assert.Equal(t, overview.Flows, second.got[0].Flows)
}

func TestOverviewer_VariantFilter(t *testing.T) {
	filter, err := NewVariantFilter([]string{"TcpCubic"})
	require.NoError(t, err)

	o := NewOverviewer(&fakeFlowRepo{records: sampleRecords()}, nil, WithVariantFilter(filter))
	overview, err := o.Run()
	require.NoError(t, err)

	assert.Equal(t, 3, overview.Flows)
	require.Len(t, overview.Variants, 1)
	assert.Equal(t, []int{1}, overview.Scenarios)
}

func TestOverviewer_SinkFailure(t *testing.T) {
	failing := &fakeOverviewSink{err: errors.New("closed pipe")}
	after := &fakeOverviewSink{}
	o := NewOverviewer(&fakeFlowRepo{records: sampleRecords()}, []OverviewRepository{failing, after})

	_, err := o.Run()
	require.Error(t, err)
	assert.Empty(t, after.got)
}

func TestOverviewer_LoadFailure(t *testing.T) {
	sink := &fakeOverviewSink{}
	o := NewOverviewer(&fakeFlowRepo{err: &domain.MissingInputError{Path: "x.csv"}}, []OverviewRepository{sink})

	_, err := o.Run()
	require.Error(t, err)
	assert.Empty(t, sink.got)
}
