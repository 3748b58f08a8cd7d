package mock

import (
	"context"

	"github.com/sailhq/windfind"
)

var _ windfind.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of windfind.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, text string, labels []string) (map[string]float64, error)
}

func (c *Classifier) Classify(ctx context.Context, text string, labels []string) (map[string]float64, error) {
	return c.ClassifyFn(ctx, text, labels)
}
