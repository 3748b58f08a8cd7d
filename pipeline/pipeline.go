package pipeline

import (
	"context"
	"log/slog"

	"github.com/sailhq/windfind"
)

// Pipeline composes the four stages: discovery, domain filtering,
// subpage categorization, and aggregation.
type Pipeline struct {
	Discoverer *Discoverer
	Domains    *DomainClassifier
	Subpages   *SubpageCategorizer
	Aggregator *Aggregator
	Logger     *slog.Logger
}

// Run executes the full pipeline for an area. A run that hits no fatal
// error always completes and returns whatever partial results were
// obtainable; an area with nothing found returns an empty slice.
func (p *Pipeline) Run(ctx context.Context, area string, progress ProgressFunc) ([]windfind.DomainRecord, error) {
	if area == "" {
		return nil, windfind.Errorf(windfind.EINVALID, "area required")
	}

	groups := p.Discoverer.Discover(ctx, area)
	p.logger().Info("discovery complete", "area", area, "domains", len(groups))
	if len(groups) == 0 {
		return nil, nil
	}

	accepted := p.Domains.Filter(ctx, groups)
	p.logger().Info("domain filtering complete", "accepted", len(accepted), "rejected", len(groups)-len(accepted))
	if len(accepted) == 0 {
		return nil, nil
	}

	categorized := p.Subpages.Categorize(ctx, accepted)
	p.logger().Info("subpage categorization complete", "domains", len(categorized))

	records := p.Aggregator.Aggregate(ctx, categorized, progress)
	return records, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
