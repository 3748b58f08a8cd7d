package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sailhq/windfind"
)

// Ensure LoggingClassifier implements windfind.Classifier.
var _ windfind.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging.
type LoggingClassifier struct {
	next   windfind.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next windfind.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the operation.
func (c *LoggingClassifier) Classify(ctx context.Context, text string, labels []string) (scores map[string]float64, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("classify",
			"labels", len(labels),
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Classify(ctx, text, labels)
}
