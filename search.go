package windfind

import "context"

// SearchResult is a single hit returned by the search provider.
type SearchResult struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SearchService finds candidate pages on the open web.
type SearchService interface {
	// Search issues a free-text relevance query and returns up to
	// maxResults hits. An empty result is not an error.
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)

	// SearchSite issues a fixed windsurfing-topic query restricted to a
	// single domain, used to widen the known subpage set for that domain.
	SearchSite(ctx context.Context, domain string, maxResults int) ([]SearchResult, error)
}
