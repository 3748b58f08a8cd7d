// Package slog provides logging decorators for windfind provider
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sailhq/windfind"
)

// Ensure LoggingSearchService implements windfind.SearchService.
var _ windfind.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with debug logging.
type LoggingSearchService struct {
	next   windfind.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next windfind.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) Search(ctx context.Context, query string, maxResults int) (results []windfind.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, maxResults)
}

// SearchSite delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) SearchSite(ctx context.Context, domain string, maxResults int) (results []windfind.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("site search",
			"domain", domain,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchSite(ctx, domain, maxResults)
}
