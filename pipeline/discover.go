// Package pipeline provides the four-stage discovery pipeline:
// search-based discovery, domain-relevance filtering, subpage
// categorization, and extraction with per-domain merge. Stages consult
// the cache synchronously before any provider call so fully-cached runs
// complete without external traffic.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/sailhq/windfind"
)

// DefaultMaxResults bounds the discovery query result count.
const DefaultMaxResults = 200

// Bloom filter sizing for URL deduplication across search results.
const (
	dedupeExpectedURLs      = 4096
	dedupeFalsePositiveRate = 0.001
)

// Discoverer turns an area description into candidate domain groups.
type Discoverer struct {
	Search     windfind.SearchService
	Cache      windfind.CacheStore
	Logger     *slog.Logger
	MaxResults int
}

// Discover searches for windsurfing businesses in the area and groups
// the hits by domain, each group's pages ordered by URL length ascending
// with ties keeping first-seen order. A failed or empty search yields an
// empty grouping, not an error: nothing found terminates the run with
// empty output downstream.
func (d *Discoverer) Discover(ctx context.Context, area string) []windfind.DomainGroup {
	query := fmt.Sprintf("windsurf schools or shops in %s", area)
	key := windfind.CacheKey(query)

	var results []windfind.SearchResult
	hit, err := d.Cache.Get(ctx, windfind.CacheNamespaceSearch, key, &results)
	if err != nil {
		d.logger().Warn("search cache read failed", "key", key, "err", err)
		hit = false
	}

	if !hit {
		max := d.MaxResults
		if max <= 0 {
			max = DefaultMaxResults
		}
		results, err = d.Search.Search(ctx, query, max)
		if err != nil {
			d.logger().Warn("discovery search failed", "area", area, "err", err)
			return nil
		}
		if err := d.Cache.Set(ctx, windfind.CacheNamespaceSearch, key, results); err != nil {
			d.logger().Warn("search cache write failed", "key", key, "err", err)
		}
	}

	return groupByDomain(results)
}

// groupByDomain partitions search results by network location. Duplicate
// URLs are dropped; each URL belongs to exactly one domain.
func groupByDomain(results []windfind.SearchResult) []windfind.DomainGroup {
	seen := bloom.NewWithEstimates(dedupeExpectedURLs, dedupeFalsePositiveRate)
	byDomain := make(map[string]int)
	var groups []windfind.DomainGroup

	for _, r := range results {
		domain := windfind.DomainOf(r.URL)
		if domain == "" {
			continue
		}
		if seen.TestString(r.URL) {
			continue
		}
		seen.AddString(r.URL)

		i, ok := byDomain[domain]
		if !ok {
			i = len(groups)
			byDomain[domain] = i
			groups = append(groups, windfind.DomainGroup{Domain: domain})
		}
		groups[i].Pages = append(groups[i].Pages, windfind.Page{
			URL:         r.URL,
			Title:       r.Title,
			Description: r.Description,
		})
	}

	for i := range groups {
		pages := groups[i].Pages
		sort.SliceStable(pages, func(a, b int) bool {
			return len(pages[a].URL) < len(pages[b].URL)
		})
	}

	return groups
}

func (d *Discoverer) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}
