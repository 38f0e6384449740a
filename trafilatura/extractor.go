// Package trafilatura provides an alternative extraction engine backed by
// go-trafilatura, with the pipeline's normalization, acceptance gate, and
// exhaustion sentinel applied to its output.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"newsharvest"
)

// Ensure Extractor implements newsharvest.Extractor at compile time.
var _ newsharvest.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main article text.
type Extractor struct {
	minLength int
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{minLength: newsharvest.MinContentLength}
}

// Extract processes raw HTML and returns normalized article text.
// The source name is unused; trafilatura carries its own heuristics.
func (e *Extractor) Extract(html string, source string) (*newsharvest.ExtractResult, error) {
	if html == "" {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err != nil {
		return nil, err
	}

	text := newsharvest.Normalize(result.ContentText)
	if newsharvest.ContentLength(text) <= e.minLength {
		return &newsharvest.ExtractResult{
			Content:  newsharvest.ContentNotFound,
			Strategy: newsharvest.StrategyNone,
		}, nil
	}

	return &newsharvest.ExtractResult{
		Content:  text,
		Strategy: "trafilatura",
	}, nil
}
