package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sailhq/windfind"
)

// Ensure LoggingExtractor implements windfind.Extractor.
var _ windfind.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   windfind.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next windfind.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, text string, template *windfind.Node) (node *windfind.Node, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, text, template)
}
