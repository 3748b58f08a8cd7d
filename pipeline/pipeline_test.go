package pipeline_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sailhq/windfind"
	"github.com/sailhq/windfind/mock"
	"github.com/sailhq/windfind/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Run_EmptyArea(t *testing.T) {
	t.Parallel()

	p := &pipeline.Pipeline{}
	_, err := p.Run(context.Background(), "", nil)
	require.Error(t, err)
	assert.Equal(t, windfind.EINVALID, windfind.ErrorCode(err))
}

func TestPipeline_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	search := &mock.SearchService{
		SearchFn: func(_ context.Context, query string, _ int) ([]windfind.SearchResult, error) {
			assert.Equal(t, "windsurf schools or shops in Lanzarote", query)
			return []windfind.SearchResult{
				{URL: "https://windsurflanzarote.com/pricing", Title: "Prices", Description: "Rates and packages"},
				{URL: "https://windsurflanzarote.com/", Title: "Windsurf Lanzarote", Description: "School and rental"},
				{URL: "https://other.com/", Title: "Island News", Description: "Local newspaper"},
			}, nil
		},
		SearchSiteFn: func(context.Context, string, int) ([]windfind.SearchResult, error) {
			return nil, nil
		},
	}

	domainClassifier := &mock.Classifier{
		ClassifyFn: func(_ context.Context, text string, labels []string) (map[string]float64, error) {
			require.Equal(t, windfind.DomainLabels, labels)
			if strings.HasPrefix(text, "Windsurf Lanzarote") {
				return map[string]float64{windfind.DomainLabelRentalOrSchool: 0.8}, nil
			}
			return map[string]float64{windfind.DomainLabelRentalOrSchool: 0.1}, nil
		},
	}

	subpageClassifier := &mock.Classifier{
		ClassifyFn: func(_ context.Context, text string, labels []string) (map[string]float64, error) {
			require.Equal(t, windfind.SubpageLabels, labels)
			if strings.HasPrefix(text, "Prices") {
				return map[string]float64{windfind.CategoryPricing: 0.9}, nil
			}
			return map[string]float64{windfind.CategoryLocation: 0.9}, nil
		},
	}

	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			switch url {
			case "https://windsurflanzarote.com/":
				return "home html", nil
			case "https://windsurflanzarote.com/pricing":
				return "pricing html", nil
			}
			return "", windfind.Errorf(windfind.ENOTFOUND, "unexpected fetch %s", url)
		},
	}

	extractor := &mock.Extractor{
		ExtractFn: func(_ context.Context, text string, _ *windfind.Node) (*windfind.Node, error) {
			switch text {
			case "home html":
				return partial(t, `{"location_information": {"name": "Windsurf Lanzarote", "city": "Lanzarote"}}`), nil
			case "pricing html":
				return partial(t, `{"pricing": {"windsurfing": {"hourly_rate": "20"}}}`), nil
			}
			return nil, windfind.Errorf(windfind.EINVALID, "unexpected extraction input")
		},
	}

	cache := &mock.CacheStore{}
	p := &pipeline.Pipeline{
		Discoverer: &pipeline.Discoverer{Search: search, Cache: cache},
		Domains:    &pipeline.DomainClassifier{Classifier: domainClassifier, Cache: cache},
		Subpages:   &pipeline.SubpageCategorizer{Search: search, Classifier: subpageClassifier, Cache: cache},
		Aggregator: &pipeline.Aggregator{
			Fetcher:     fetcher,
			Converter:   identityConverter(),
			Extractor:   extractor,
			Cache:       cache,
			RetryDelays: []time.Duration{},
		},
	}

	records, err := p.Run(context.Background(), "Lanzarote", nil)
	require.NoError(t, err)

	// Only the accepted domain survives, with data merged across its
	// location and pricing pages.
	require.Len(t, records, 1)
	assert.Equal(t, "windsurflanzarote.com", records[0].Domain)
	rec := records[0].Record
	assert.Equal(t, "Windsurf Lanzarote", *rec.Get(windfind.CategoryLocation, "name").Value)
	assert.Equal(t, "Lanzarote", *rec.Get(windfind.CategoryLocation, "city").Value)
	assert.Equal(t, "20", *rec.Get(windfind.CategoryPricing, "windsurfing", "hourly_rate").Value)
}

func TestPipeline_Run_NothingFound(t *testing.T) {
	t.Parallel()

	search := &mock.SearchService{
		SearchFn: func(context.Context, string, int) ([]windfind.SearchResult, error) {
			return nil, nil
		},
	}

	p := &pipeline.Pipeline{
		Discoverer: &pipeline.Discoverer{Search: search, Cache: &mock.CacheStore{}},
	}
	records, err := p.Run(context.Background(), "Atlantis", nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPipeline_Run_AllDomainsRejected(t *testing.T) {
	t.Parallel()

	search := &mock.SearchService{
		SearchFn: func(context.Context, string, int) ([]windfind.SearchResult, error) {
			return []windfind.SearchResult{{URL: "https://other.com/", Title: "News"}}, nil
		},
	}
	classifier := &mock.Classifier{
		ClassifyFn: func(context.Context, string, []string) (map[string]float64, error) {
			return map[string]float64{windfind.DomainLabelOther: 0.9}, nil
		},
	}

	cache := &mock.CacheStore{}
	p := &pipeline.Pipeline{
		Discoverer: &pipeline.Discoverer{Search: search, Cache: cache},
		Domains:    &pipeline.DomainClassifier{Classifier: classifier, Cache: cache},
	}
	records, err := p.Run(context.Background(), "Lanzarote", nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}
