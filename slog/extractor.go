package slog

import (
	"log/slog"
	"time"

	"newsharvest"
)

// Ensure LoggingExtractor implements newsharvest.Extractor.
var _ newsharvest.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. The strategy that
// produced the content is included so degraded extractions stand out
// in the logs.
type LoggingExtractor struct {
	next   newsharvest.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next newsharvest.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string, source string) (result *newsharvest.ExtractResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source", source,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs,
				"strategy", result.Strategy,
				"chars", len(result.Content),
				"degraded", result.Degraded,
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, source)
}
