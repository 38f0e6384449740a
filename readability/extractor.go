// Package readability provides an alternative extraction engine backed by
// go-shiori/go-readability. It applies the same normalization, acceptance
// gate, and exhaustion sentinel as the selector cascade, so callers can
// swap engines without changing pipeline semantics.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"newsharvest"
)

// Ensure Extractor implements newsharvest.Extractor at compile time.
var _ newsharvest.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main article text.
type Extractor struct {
	minLength int
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{minLength: newsharvest.MinContentLength}
}

// Extract processes raw HTML and returns normalized article text.
// The source name is unused: readability scores the document structurally
// rather than through per-source profiles.
func (e *Extractor) Extract(html string, source string) (*newsharvest.ExtractResult, error) {
	if html == "" {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return nil, err
	}

	text := newsharvest.Normalize(article.TextContent)
	if newsharvest.ContentLength(text) <= e.minLength {
		return &newsharvest.ExtractResult{
			Content:  newsharvest.ContentNotFound,
			Strategy: newsharvest.StrategyNone,
		}, nil
	}

	return &newsharvest.ExtractResult{
		Content:  text,
		Strategy: "readability",
	}, nil
}
