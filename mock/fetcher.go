package mock

import (
	"context"

	"github.com/sailhq/windfind"
)

var _ windfind.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of windfind.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ windfind.TextConverter = (*TextConverter)(nil)

// TextConverter is a mock implementation of windfind.TextConverter.
type TextConverter struct {
	TextFn func(html string) (string, error)
}

func (c *TextConverter) Text(html string) (string, error) {
	return c.TextFn(html)
}

var _ windfind.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of windfind.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
