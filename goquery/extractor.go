package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"newsharvest"
)

// Ensure Extractor implements newsharvest.Extractor at compile time.
var _ newsharvest.Extractor = (*Extractor)(nil)

// contentTokens are the class/id substrings the structural fallback tier
// treats as article-container markers.
var contentTokens = []string{"content", "article", "story", "post", "body"}

// minParagraphChildren is the paragraph-descendant count above which a
// container is considered article-like by the structural fallback tier.
const minParagraphChildren = 3

// Extractor runs the strategy cascade: profile selectors, generic
// structural heuristics, paragraph aggregation, then whole-document
// salvage. The first strategy whose normalized output passes the
// acceptance gate wins.
//
// The cascade is deterministic and performs no I/O; an Extractor is safe
// for concurrent use.
type Extractor struct {
	profiles  newsharvest.ProfileRegistry
	minLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMinLength overrides the acceptance gate.
// Defaults to newsharvest.MinContentLength.
func WithMinLength(n int) Option {
	return func(e *Extractor) {
		e.minLength = n
	}
}

// NewExtractor creates an Extractor backed by the given profile registry.
// A nil registry falls back to DefaultRegistry.
func NewExtractor(profiles newsharvest.ProfileRegistry, opts ...Option) *Extractor {
	if profiles == nil {
		profiles = DefaultRegistry()
	}
	e := &Extractor{
		profiles:  profiles,
		minLength: newsharvest.MinContentLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the HTML and runs the cascade for the given source name.
// Exhaustion yields the ContentNotFound sentinel with a nil error.
func (e *Extractor) Extract(html string, source string) (*newsharvest.ExtractResult, error) {
	if html == "" {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "failed to parse HTML: %v", err)
	}

	if result := e.profileTier(doc, source); result != nil {
		return result, nil
	}
	if result := e.structuralTier(doc); result != nil {
		return result, nil
	}
	if result := e.paragraphTier(doc); result != nil {
		return result, nil
	}
	if result := e.salvageTier(doc); result != nil {
		return result, nil
	}

	return &newsharvest.ExtractResult{
		Content:  newsharvest.ContentNotFound,
		Strategy: newsharvest.StrategyNone,
	}, nil
}

// profileTier tries the resolved profile's selectors in order, accepting
// the first whose matched element's normalized text passes the gate.
func (e *Extractor) profileTier(doc *goquery.Document, source string) *newsharvest.ExtractResult {
	profile := e.profiles.ProfileFor(source)
	for _, selector := range profile.Selectors {
		text, ok := e.trySelector(doc, selector)
		if !ok {
			continue
		}
		return &newsharvest.ExtractResult{
			Content:  text,
			Strategy: newsharvest.StrategyProfile,
			Selector: selector,
		}
	}
	return nil
}

// structuralTier applies the generic structural heuristics in fixed order:
// semantic containers, ARIA main role, content-token class/id substrings,
// schema.org article markers, and paragraph-rich containers.
func (e *Extractor) structuralTier(doc *goquery.Document) *newsharvest.ExtractResult {
	for _, selector := range []string{"article", "main", `[role="main"]`} {
		if text, ok := e.trySelector(doc, selector); ok {
			return structuralResult(text, selector)
		}
	}

	if text, sel, ok := e.tryContentTokenDiv(doc); ok {
		return structuralResult(text, sel)
	}

	for _, selector := range []string{`[itemprop="articleBody"]`, `[itemtype*="schema.org/Article"]`} {
		if text, ok := e.trySelector(doc, selector); ok {
			return structuralResult(text, selector)
		}
	}

	if text, ok := e.tryParagraphRichContainer(doc); ok {
		return structuralResult(text, "container>3p")
	}

	return nil
}

func structuralResult(text, selector string) *newsharvest.ExtractResult {
	return &newsharvest.ExtractResult{
		Content:  text,
		Strategy: newsharvest.StrategyStructural,
		Selector: selector,
	}
}

// paragraphTier concatenates every paragraph in document order.
func (e *Extractor) paragraphTier(doc *goquery.Document) *newsharvest.ExtractResult {
	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		parts = append(parts, sel.Text())
	})

	text := newsharvest.Normalize(strings.Join(parts, " "))
	if newsharvest.ContentLength(text) <= e.minLength {
		return nil
	}
	return &newsharvest.ExtractResult{
		Content:  text,
		Strategy: newsharvest.StrategyParagraphs,
	}
}

// salvageTier strips non-content elements from a working copy and takes
// the text of the body element, or the whole document if no body exists.
// Last resort: the result is flagged as degraded quality.
func (e *Extractor) salvageTier(doc *goquery.Document) *newsharvest.ExtractResult {
	clone := goquery.CloneDocument(doc)
	clone.Find("script, style, nav, header, footer, aside").Remove()

	target := clone.Find("body")
	if target.Length() == 0 {
		target = clone.Selection
	}

	text := newsharvest.Normalize(target.Text())
	if newsharvest.ContentLength(text) <= e.minLength {
		return nil
	}
	return &newsharvest.ExtractResult{
		Content:  text,
		Strategy: newsharvest.StrategySalvage,
		Degraded: true,
	}
}

// trySelector evaluates one selector expression against the document and
// returns the normalized text of the first match when it passes the gate.
// Malformed expressions are treated as no-match so the cascade continues.
func (e *Extractor) trySelector(doc *goquery.Document, selector string) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}

	text = newsharvest.Normalize(sel.Text())
	return text, newsharvest.ContentLength(text) > e.minLength
}

// tryContentTokenDiv finds the first div whose class or id attribute
// contains one of the content tokens, case-insensitively.
func (e *Extractor) tryContentTokenDiv(doc *goquery.Document) (string, string, bool) {
	var text, matched string

	doc.Find("div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		attrs := strings.ToLower(class + " " + id)

		for _, token := range contentTokens {
			if !strings.Contains(attrs, token) {
				continue
			}
			if t := newsharvest.Normalize(sel.Text()); newsharvest.ContentLength(t) > e.minLength {
				text, matched = t, token
				return false
			}
		}
		return true
	})

	return text, "div[class|id*=" + matched + "]", text != ""
}

// tryParagraphRichContainer finds the first container with more than
// minParagraphChildren paragraph descendants.
func (e *Extractor) tryParagraphRichContainer(doc *goquery.Document) (string, bool) {
	var text string

	doc.Find("div, section").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.Find("p").Length() <= minParagraphChildren {
			return true
		}
		if t := newsharvest.Normalize(sel.Text()); newsharvest.ContentLength(t) > e.minLength {
			text = t
			return false
		}
		return true
	})

	return text, text != ""
}
