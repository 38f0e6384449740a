package newsharvest

import (
	"regexp"
	"strings"
)

// noisePattern matches UI and navigation phrases that leak into extracted
// article text: promotional calls-to-action, media attribution prefixes,
// and legal boilerplate. Matched case-insensitively anywhere in the text.
var noisePattern = regexp.MustCompile(`(?i)(advertisement|subscribe|read more|read premium|continue reading|view full article|download the|save your bookmarks|log in|sign up|register|share|tweet|follow|photo:|image:|video:|source:|copyright|all rights reserved|terms|privacy)`)

// whitespacePattern matches runs of whitespace, including newlines.
var whitespacePattern = regexp.MustCompile(`\s+`)

// footerPhrases marks lines that belong to page chrome rather than article
// body: app-download banners, login prompts, live-blog navigation, and
// legal footers. A line containing any of these is dropped wholesale.
// Superset of the inline noise phrases.
var footerPhrases = []string{
	"download the",
	"log in",
	"sign up",
	"follow live",
	"subscribe",
	"read premium",
	"save your bookmarks",
	"advertisement",
	"read more",
	"continue reading",
	"view full article",
	"register",
	"share",
	"tweet",
	"follow",
	"photo:",
	"image:",
	"video:",
	"source:",
	"copyright",
	"all rights reserved",
	"terms",
	"privacy",
}

// CleanText collapses whitespace runs to single spaces, trims the ends,
// and strips inline noise phrases. Empty input yields empty output.
//
// Collapsing and stripping repeat until neither changes the text: removing
// a phrase can butt its neighbors together and collapsing can merge the
// gap into a fresh phrase, so a single pass may leave a match behind. The
// fixpoint guarantees the output matches no noise phrase, which keeps
// Normalize idempotent.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.TrimSpace(text)
	for {
		collapsed := whitespacePattern.ReplaceAllString(text, " ")
		stripped := noisePattern.ReplaceAllString(collapsed, "")
		if stripped == collapsed {
			text = collapsed
			break
		}
		text = stripped
	}
	return strings.TrimSpace(text)
}

// RemoveFooterLines filters footer and boilerplate lines from text.
// It operates on the original line structure: lines are trimmed, empty
// lines and lines containing any footer phrase are dropped, and the
// survivors are rejoined with single spaces.
//
// This must run before whitespace collapsing; once newlines are collapsed
// the line boundaries the filter depends on are gone.
func RemoveFooterLines(text string) string {
	if text == "" {
		return ""
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if containsFooterPhrase(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, " ")
}

// Normalize runs the full text normalization pipeline: footer-line
// filtering on the original multi-line text, then whitespace collapsing
// and inline noise removal. Pure and idempotent.
func Normalize(text string) string {
	return CleanText(RemoveFooterLines(text))
}

func containsFooterPhrase(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range footerPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
