// Package tavily provides a Tavily-backed implementation of
// windfind.SearchService.
package tavily

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sailhq/windfind"
)

// DefaultBaseURL is the Tavily API endpoint.
const DefaultBaseURL = "https://api.tavily.com"

// siteQuery is the fixed topic query used for site-restricted searches.
const siteQuery = "windsurfing school, rental, camp, pricing, courses, lessons, equipment"

// Ensure Client implements windfind.SearchService at compile time.
var _ windfind.SearchService = (*Client)(nil)

// Client talks to the Tavily search API.
type Client struct {
	http   *resty.Client
	apiKey string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithTimeout sets the request timeout. Defaults to 30s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// NewClient creates a Client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetTimeout(30 * time.Second),
		apiKey: apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	MaxResults     int      `json:"max_results,omitempty"`
	IncludeDomains []string `json:"include_domains,omitempty"`
}

type searchResponse struct {
	Results []struct {
		URL     string `json:"url"`
		Title   string `json:"title"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search issues a free-text relevance query.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]windfind.SearchResult, error) {
	return c.search(ctx, searchRequest{
		APIKey:     c.apiKey,
		Query:      query,
		MaxResults: maxResults,
	})
}

// SearchSite issues the fixed windsurfing query restricted to domain.
func (c *Client) SearchSite(ctx context.Context, domain string, maxResults int) ([]windfind.SearchResult, error) {
	return c.search(ctx, searchRequest{
		APIKey:         c.apiKey,
		Query:          siteQuery,
		MaxResults:     maxResults,
		IncludeDomains: []string{domain},
	})
}

func (c *Client) search(ctx context.Context, req searchRequest) ([]windfind.SearchResult, error) {
	var body searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&body).
		Post("/search")
	if err != nil {
		return nil, windfind.Errorf(windfind.EUNAVAILABLE, "tavily search: %s", err)
	}
	if resp.IsError() {
		return nil, windfind.Errorf(windfind.EUNAVAILABLE, "tavily search: HTTP %d", resp.StatusCode())
	}

	results := make([]windfind.SearchResult, 0, len(body.Results))
	for _, r := range body.Results {
		results = append(results, windfind.SearchResult{
			URL:         r.URL,
			Title:       r.Title,
			Description: r.Content,
		})
	}
	return results, nil
}
