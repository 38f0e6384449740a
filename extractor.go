package newsharvest

// Extraction strategy identifiers reported in ExtractResult.Strategy.
const (
	StrategyProfile    = "profile"
	StrategyStructural = "structural"
	StrategyParagraphs = "paragraphs"
	StrategySalvage    = "salvage"
	StrategyNone       = "none"
)

// ExtractResult holds the outcome of running the extraction cascade
// against a single page.
type ExtractResult struct {
	// Content is the normalized article text, or ContentNotFound when
	// every strategy was exhausted.
	Content string

	// Strategy identifies the cascade tier that produced the content.
	Strategy string

	// Selector is the selector expression that matched, when the winning
	// strategy was selector-driven.
	Selector string

	// Degraded marks content produced by the whole-document salvage
	// strategy, which trades precision for guaranteed output.
	Degraded bool
}

// Extractor extracts the main article text from an HTML page.
type Extractor interface {
	// Extract runs the extraction cascade over the raw HTML of a page.
	// The source name selects the selector profile to try first.
	//
	// Exhaustion is not an error: when no strategy passes the acceptance
	// gate the result carries the ContentNotFound sentinel. Errors are
	// reserved for unparseable input and unexpected faults.
	Extract(html string, source string) (*ExtractResult, error)
}
