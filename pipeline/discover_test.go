package pipeline_test

import (
	"context"
	"testing"

	"github.com/sailhq/windfind"
	"github.com/sailhq/windfind/mock"
	"github.com/sailhq/windfind/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverer_Discover_GroupsByDomain(t *testing.T) {
	t.Parallel()

	search := &mock.SearchService{
		SearchFn: func(_ context.Context, query string, maxResults int) ([]windfind.SearchResult, error) {
			assert.Equal(t, "windsurf schools or shops in Lanzarote", query)
			assert.Equal(t, 200, maxResults)
			return []windfind.SearchResult{
				{URL: "https://a.com/long/path", Title: "A long"},
				{URL: "https://a.com/x", Title: "A x"},
				{URL: "https://b.com/z", Title: "B z"},
				{URL: "https://a.com/y", Title: "A y"},
			}, nil
		},
	}

	d := &pipeline.Discoverer{Search: search, Cache: &mock.CacheStore{}}
	groups := d.Discover(context.Background(), "Lanzarote")

	require.Len(t, groups, 2)
	assert.Equal(t, "a.com", groups[0].Domain)
	assert.Equal(t, "b.com", groups[1].Domain)

	// Ascending URL length; equal lengths keep first-seen order.
	assert.Equal(t, []string{"https://a.com/x", "https://a.com/y", "https://a.com/long/path"}, groups[0].URLs())
	assert.Equal(t, "https://a.com/x", groups[0].Canonical().URL)
}

func TestDiscoverer_Discover_DropsDuplicateURLs(t *testing.T) {
	t.Parallel()

	search := &mock.SearchService{
		SearchFn: func(context.Context, string, int) ([]windfind.SearchResult, error) {
			return []windfind.SearchResult{
				{URL: "https://a.com/x", Title: "first"},
				{URL: "https://a.com/x", Title: "dup"},
			}, nil
		},
	}

	d := &pipeline.Discoverer{Search: search, Cache: &mock.CacheStore{}}
	groups := d.Discover(context.Background(), "Lanzarote")

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Pages, 1)
	assert.Equal(t, "first", groups[0].Pages[0].Title)
}

func TestDiscoverer_Discover_SearchErrorYieldsEmptyGrouping(t *testing.T) {
	t.Parallel()

	search := &mock.SearchService{
		SearchFn: func(context.Context, string, int) ([]windfind.SearchResult, error) {
			return nil, windfind.Errorf(windfind.EUNAVAILABLE, "search down")
		},
	}

	d := &pipeline.Discoverer{Search: search, Cache: &mock.CacheStore{}}
	groups := d.Discover(context.Background(), "Lanzarote")

	assert.Empty(t, groups)
}

func TestDiscoverer_Discover_CachedRunSkipsSearch(t *testing.T) {
	t.Parallel()

	cache := &mock.CacheStore{}
	calls := 0
	search := &mock.SearchService{
		SearchFn: func(context.Context, string, int) ([]windfind.SearchResult, error) {
			calls++
			return []windfind.SearchResult{{URL: "https://a.com/x"}}, nil
		},
	}

	d := &pipeline.Discoverer{Search: search, Cache: cache}
	ctx := context.Background()

	first := d.Discover(ctx, "Lanzarote")
	second := d.Discover(ctx, "Lanzarote")

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}
