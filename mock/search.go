// Package mock provides hand-written mocks for windfind interfaces.
package mock

import (
	"context"

	"github.com/sailhq/windfind"
)

var _ windfind.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of windfind.SearchService.
type SearchService struct {
	SearchFn     func(ctx context.Context, query string, maxResults int) ([]windfind.SearchResult, error)
	SearchSiteFn func(ctx context.Context, domain string, maxResults int) ([]windfind.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, maxResults int) ([]windfind.SearchResult, error) {
	return s.SearchFn(ctx, query, maxResults)
}

func (s *SearchService) SearchSite(ctx context.Context, domain string, maxResults int) ([]windfind.SearchResult, error) {
	return s.SearchSiteFn(ctx, domain, maxResults)
}
