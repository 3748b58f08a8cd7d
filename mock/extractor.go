package mock

import (
	"context"

	"github.com/sailhq/windfind"
)

var _ windfind.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of windfind.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, text string, template *windfind.Node) (*windfind.Node, error)
}

func (e *Extractor) Extract(ctx context.Context, text string, template *windfind.Node) (*windfind.Node, error) {
	return e.ExtractFn(ctx, text, template)
}
