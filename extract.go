package windfind

import "context"

// Extractor extracts structured business facts from page text.
type Extractor interface {
	// Extract fills a copy of the template with facts found in text.
	// Leaves the text says nothing about stay null. The returned tree has
	// the template's shape; extra keys in the provider response are kept
	// as-is and merged like any other value.
	Extract(ctx context.Context, text string, template *Node) (*Node, error)
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a plain HTTP GET and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}

// TextConverter converts raw HTML into plain text suitable as
// extraction input.
type TextConverter interface {
	// Text returns the page's visible text. An error or empty result
	// means the page carried no usable content.
	Text(html string) (string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
