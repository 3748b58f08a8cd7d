package pipeline

import (
	"context"
	"log/slog"
	"sort"

	"github.com/sailhq/windfind"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel provider calls per stage.
const DefaultConcurrency = 8

// DefaultSiteResults bounds the site-restricted search used to widen a
// domain's known subpage set.
const DefaultSiteResults = 10

// titleKeyLen is how much of a page title participates in the score
// cache key.
const titleKeyLen = 10

// SubpageCategorizer assigns category labels to the subpages of
// accepted domains.
type SubpageCategorizer struct {
	Search      windfind.SearchService
	Classifier  windfind.Classifier
	Cache       windfind.CacheStore
	Logger      *slog.Logger
	Concurrency int
	SiteResults int
}

// pageScores pairs a page with its raw category score map.
type pageScores struct {
	page   windfind.Page
	scores map[string]float64
}

// classifyTask identifies one uncached (domain, page) unit.
type classifyTask struct {
	domain string
	page   windfind.Page
	key    string
}

// Categorize maps each accepted domain's subpages to category labels.
// A label is retained iff its score exceeds the subpage threshold
// (exclusive); "other" never contributes. Domains where no URL earns a
// label are dropped. Cached score maps are collected synchronously
// before any classification work is scheduled; only misses fan out to
// the bounded worker pool.
func (c *SubpageCategorizer) Categorize(ctx context.Context, groups []windfind.DomainGroup) []windfind.CategorizedDomain {
	pages := c.widen(ctx, groups)

	// Cache-first pass on the calling path.
	scored := make(map[string][]pageScores, len(groups))
	var misses []classifyTask
	for _, g := range groups {
		for _, p := range pages[g.Domain] {
			key := windfind.CacheKey(g.Domain + windfind.Truncate(p.Title, titleKeyLen))
			var scores map[string]float64
			hit, err := c.Cache.Get(ctx, windfind.CacheNamespaceSubpages, key, &scores)
			if err != nil {
				c.logger().Warn("subpage cache read failed", "domain", g.Domain, "url", p.URL, "err", err)
				hit = false
			}
			if hit {
				scored[g.Domain] = append(scored[g.Domain], pageScores{page: p, scores: scores})
				continue
			}
			misses = append(misses, classifyTask{domain: g.Domain, page: p, key: key})
		}
	}

	// Fan out the remaining classification calls to a bounded pool,
	// collecting results by index so assembly stays deterministic.
	results := make([]map[string]float64, len(misses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())
	for j := range misses {
		g.Go(func() error {
			results[j] = c.classifyOne(gctx, misses[j])
			return nil
		})
	}
	_ = g.Wait()

	for i, task := range misses {
		if results[i] != nil {
			scored[task.domain] = append(scored[task.domain], pageScores{page: task.page, scores: results[i]})
		}
	}

	var out []windfind.CategorizedDomain
	for _, g := range groups {
		if cd, ok := assemble(g.Domain, scored[g.Domain]); ok {
			out = append(out, cd)
		}
	}
	return out
}

func (c *SubpageCategorizer) classifyOne(ctx context.Context, task classifyTask) map[string]float64 {
	text := task.page.Title + " " + task.page.Description
	scores, err := c.Classifier.Classify(ctx, text, windfind.SubpageLabels)
	if err != nil {
		// The URL contributes to no category; not cached so a later
		// run can retry.
		c.logger().Warn("subpage classification failed", "url", task.page.URL, "err", err)
		return nil
	}
	if err := c.Cache.Set(ctx, windfind.CacheNamespaceSubpages, task.key, scores); err != nil {
		c.logger().Warn("subpage cache write failed", "url", task.page.URL, "err", err)
	}
	return scores
}

// widen merges each domain's discovery pages with a cached
// site-restricted search, keeping ascending-length order. Site search
// failures degrade to the discovery pages alone.
func (c *SubpageCategorizer) widen(ctx context.Context, groups []windfind.DomainGroup) map[string][]windfind.Page {
	max := c.SiteResults
	if max <= 0 {
		max = DefaultSiteResults
	}

	out := make(map[string][]windfind.Page, len(groups))
	for _, g := range groups {
		key := windfind.CacheKey("site_" + g.Domain)

		var extra []windfind.SearchResult
		hit, err := c.Cache.Get(ctx, windfind.CacheNamespaceSearch, key, &extra)
		if err != nil {
			c.logger().Warn("site search cache read failed", "domain", g.Domain, "err", err)
			hit = false
		}
		if !hit {
			extra, err = c.Search.SearchSite(ctx, g.Domain, max)
			if err != nil {
				c.logger().Warn("site search failed", "domain", g.Domain, "err", err)
				extra = nil
			} else if err := c.Cache.Set(ctx, windfind.CacheNamespaceSearch, key, extra); err != nil {
				c.logger().Warn("site search cache write failed", "domain", g.Domain, "err", err)
			}
		}

		known := make(map[string]bool, len(g.Pages))
		pages := append([]windfind.Page(nil), g.Pages...)
		for _, p := range g.Pages {
			known[p.URL] = true
		}
		for _, r := range extra {
			if known[r.URL] || windfind.DomainOf(r.URL) != g.Domain {
				continue
			}
			known[r.URL] = true
			pages = append(pages, windfind.Page{URL: r.URL, Title: r.Title, Description: r.Description})
		}
		sort.SliceStable(pages, func(a, b int) bool {
			return len(pages[a].URL) < len(pages[b].URL)
		})
		out[g.Domain] = pages
	}
	return out
}

// assemble builds the categorized view for one domain. Categories appear
// in the fixed vocabulary order; URLs keep ascending-length order.
func assemble(domain string, scored []pageScores) (windfind.CategorizedDomain, bool) {
	sort.SliceStable(scored, func(a, b int) bool {
		return len(scored[a].page.URL) < len(scored[b].page.URL)
	})

	cd := windfind.CategorizedDomain{Domain: domain}
	for _, category := range windfind.SubpageLabels {
		if category == windfind.CategoryOther {
			continue
		}
		var urls []string
		for _, ps := range scored {
			if ps.scores[category] > windfind.SubpageScoreThreshold {
				urls = append(urls, ps.page.URL)
			}
		}
		if len(urls) > 0 {
			cd.Categories = append(cd.Categories, windfind.CategoryURLs{Category: category, URLs: urls})
		}
	}
	return cd, len(cd.Categories) > 0
}

func (c *SubpageCategorizer) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return DefaultConcurrency
}

func (c *SubpageCategorizer) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
