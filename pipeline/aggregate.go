package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sailhq/windfind"
	"golang.org/x/sync/errgroup"
)

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during aggregation.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during aggregation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Domain    string
}

// ProgressFunc is a callback for reporting aggregation progress.
type ProgressFunc func(event ProgressEvent)

// Aggregator drives extraction across each domain's categorized URLs and
// merges the partial results into one record per domain.
type Aggregator struct {
	Fetcher     windfind.Fetcher
	Converter   windfind.TextConverter
	Fallback    windfind.TextConverter
	Extractor   windfind.Extractor
	Cache       windfind.CacheStore
	Limiter     windfind.DomainLimiter
	Logger      *slog.Logger
	Concurrency int
	RetryDelays []time.Duration
}

// extractionEntry is the cached payload for one subpage: the partial
// record plus a hash of the page text it was extracted from. The cache
// key is derived from the URL alone, so a changed extraction schema
// returns stale entries as-is; that is accepted behavior.
type extractionEntry struct {
	TextHash string         `json:"textHash"`
	Data     *windfind.Node `json:"data"`
}

// Aggregate builds one consolidated record per domain. Domains are
// processed in parallel through a bounded pool; within a domain, URLs
// are visited strictly in the categorization's fixed order so merges are
// deterministic and the completeness short-circuit can suppress fetches.
// Failures never cross domain boundaries.
func (a *Aggregator) Aggregate(ctx context.Context, domains []windfind.CategorizedDomain, progress ProgressFunc) []windfind.DomainRecord {
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(domains)})
	}

	records := make([]windfind.DomainRecord, len(domains))
	var completed int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency())
	done := make(chan int, len(domains))

	for i := range domains {
		g.Go(func() error {
			records[i] = windfind.DomainRecord{
				Domain: domains[i].Domain,
				Record: a.domainRecord(gctx, domains[i]),
			}
			done <- i
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(done)
	}()

	for i := range done {
		completed++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     len(domains),
				Domain:    domains[i].Domain,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(domains), Total: len(domains)})
	}
	return records
}

// domainRecord walks one domain's categorized URLs in order, merging
// each extraction into the running record. Once the location or pricing
// section is complete, remaining URLs of that category are skipped
// without fetching. Other categories are always fully processed.
func (a *Aggregator) domainRecord(ctx context.Context, cd windfind.CategorizedDomain) *windfind.Node {
	rec := windfind.NewRecord()
	var locationDone, pricingDone bool

	for _, cat := range cd.Categories {
		for _, u := range cat.URLs {
			switch cat.Category {
			case windfind.CategoryLocation:
				if locationDone {
					continue
				}
			case windfind.CategoryPricing:
				if pricingDone {
					continue
				}
			}

			if part := a.extractURL(ctx, u); part != nil {
				rec.Merge(part)
			}

			switch cat.Category {
			case windfind.CategoryLocation:
				if !locationDone && rec.LocationComplete() {
					locationDone = true
					a.logger().Debug("location section complete", "domain", cd.Domain)
				}
			case windfind.CategoryPricing:
				if !pricingDone && rec.PricingComplete() {
					pricingDone = true
					a.logger().Debug("pricing section complete", "domain", cd.Domain)
				}
			}
		}
	}
	return rec
}

// extractURL returns the partial record for one URL, consulting the
// cache before fetching. Any failure yields nil: no data for that URL,
// never an aborted run.
func (a *Aggregator) extractURL(ctx context.Context, url string) *windfind.Node {
	key := windfind.CacheKey("subpage_content_" + url)

	var entry extractionEntry
	hit, err := a.Cache.Get(ctx, windfind.CacheNamespaceContent, key, &entry)
	if err != nil {
		a.logger().Warn("content cache read failed", "url", url, "err", err)
		hit = false
	}
	if hit {
		return entry.Data
	}

	if a.Limiter != nil {
		if err := a.Limiter.Wait(ctx, windfind.DomainOf(url)); err != nil {
			return nil
		}
	}

	html, err := fetchWithRetry(ctx, url, a.Fetcher.Fetch, a.retryDelays())
	if err != nil {
		a.logger().Warn("fetch failed", "url", url, "err", err)
		return nil
	}

	text, err := a.Converter.Text(html)
	if err != nil && a.Fallback != nil {
		text, err = a.Fallback.Text(html)
	}
	if err != nil || text == "" {
		a.logger().Warn("no usable text", "url", url, "err", err)
		return nil
	}

	part, err := a.Extractor.Extract(ctx, text, windfind.NewRecord())
	if err != nil {
		a.logger().Warn("extraction failed", "url", url, "err", err)
		return nil
	}

	entry = extractionEntry{TextHash: hashText(text), Data: part}
	if err := a.Cache.Set(ctx, windfind.CacheNamespaceContent, key, entry); err != nil {
		a.logger().Warn("content cache write failed", "url", url, "err", err)
	}
	return part
}

func hashText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

func (a *Aggregator) retryDelays() []time.Duration {
	if a.RetryDelays != nil {
		return a.RetryDelays
	}
	return DefaultRetryDelays()
}

func (a *Aggregator) concurrency() int {
	if a.Concurrency > 0 {
		return a.Concurrency
	}
	return DefaultConcurrency
}

func (a *Aggregator) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}
