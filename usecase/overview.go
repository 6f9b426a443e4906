package usecase

import (
	"fmt"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

type OverviewRepository interface {
	SaveOverview(o domain.Overview) error
}

// Overviewer reports what a results file contains before any filtering.
type Overviewer struct {
	flowRepo FlowRepository
	sinks    []OverviewRepository
	options
}

func NewOverviewer(f FlowRepository, sinks []OverviewRepository, opts ...Option) *Overviewer {
	return &Overviewer{
		flowRepo: f,
		sinks:    sinks,
		options:  newOptions(opts),
	}
}

func (o *Overviewer) Run() (domain.Overview, error) {
	records, err := o.flowRepo.LoadFlows()
	if err != nil {
		return domain.Overview{}, err
	}
	records = o.variants.Apply(records)

	overview := SummarizeVariants(records)
	o.log.Infow("loaded simulation results",
		"flows", overview.Flows,
		"variants", len(overview.Variants),
		"scenarios", len(overview.Scenarios),
	)

	for _, sink := range o.sinks {
		if err := sink.SaveOverview(overview); err != nil {
			return overview, fmt.Errorf("failed to write overview: %w", err)
		}
	}
	return overview, nil
}
