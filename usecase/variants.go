package usecase

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

// VariantFilter keeps records whose variant matches any of its patterns.
// A filter without patterns keeps everything.
type VariantFilter struct {
	patterns []string
	globs    []glob.Glob
}

func NewVariantFilter(patterns []string) (*VariantFilter, error) {
	f := &VariantFilter{patterns: patterns}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid variant pattern %q: %w", p, err)
		}
		f.globs = append(f.globs, g)
	}
	return f, nil
}

func (f *VariantFilter) Match(variant string) bool {
	if f == nil || len(f.globs) == 0 {
		return true
	}
	for _, g := range f.globs {
		if g.Match(variant) {
			return true
		}
	}
	return false
}

func (f *VariantFilter) Apply(records []domain.FlowRecord) []domain.FlowRecord {
	if f == nil || len(f.globs) == 0 {
		return records
	}
	out := make([]domain.FlowRecord, 0, len(records))
	for _, r := range records {
		if f.Match(r.Variant) {
			out = append(out, r)
		}
	}
	return out
}

func (f *VariantFilter) String() string {
	if f == nil || len(f.patterns) == 0 {
		return "*"
	}
	return fmt.Sprint(f.patterns)
}
