package pipeline

import (
	"context"
	"log/slog"

	"github.com/sailhq/windfind"
)

// DomainClassifier filters candidate domains down to those that look
// like windsurfing businesses.
type DomainClassifier struct {
	Classifier windfind.Classifier
	Cache      windfind.CacheStore
	Logger     *slog.Logger
}

// Filter keeps the groups whose canonical page classifies as a
// windsurfing business. Only the canonical (shortest-URL) page's title
// and description are used as classification input. The accept/reject
// decision is cached as the domain's URL list; an empty list means
// rejected. Classification errors reject the domain (fail-closed) and
// are logged, never raised.
func (c *DomainClassifier) Filter(ctx context.Context, groups []windfind.DomainGroup) []windfind.DomainGroup {
	var accepted []windfind.DomainGroup
	for _, g := range groups {
		if c.accept(ctx, &g) {
			accepted = append(accepted, g)
		}
	}
	return accepted
}

func (c *DomainClassifier) accept(ctx context.Context, g *windfind.DomainGroup) bool {
	canonical := g.Canonical()
	key := windfind.CacheKey(g.Domain + canonical.Title)

	var urls []string
	hit, err := c.Cache.Get(ctx, windfind.CacheNamespaceDomains, key, &urls)
	if err != nil {
		c.logger().Warn("domain cache read failed", "domain", g.Domain, "err", err)
		hit = false
	}
	if hit {
		return len(urls) > 0
	}

	scores, err := c.Classifier.Classify(ctx, canonical.Title+" "+canonical.Description, windfind.DomainLabels)
	if err != nil {
		// Fail closed: an unclassifiable domain is not worth crawling.
		// The decision is not cached so a later run can retry.
		c.logger().Warn("domain classification failed", "domain", g.Domain, "err", err)
		return false
	}

	ok := false
	for _, label := range windfind.PositiveDomainLabels {
		if scores[label] > windfind.DomainScoreThreshold {
			ok = true
			break
		}
	}

	stored := []string{}
	if ok {
		stored = g.URLs()
	}
	if err := c.Cache.Set(ctx, windfind.CacheNamespaceDomains, key, stored); err != nil {
		c.logger().Warn("domain cache write failed", "domain", g.Domain, "err", err)
	}

	return ok
}

func (c *DomainClassifier) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
