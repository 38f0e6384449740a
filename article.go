package newsharvest

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// MinContentLength is the acceptance gate for extracted article text,
// measured in characters. Candidates whose normalized length does not
// strictly exceed this threshold are rejected in favor of the next
// extraction strategy.
const MinContentLength = 200

// ContentNotFound is the sentinel content value signaling that every
// extraction strategy was exhausted. It is distinct from the empty string,
// which marks a fetch failure.
const ContentNotFound = "Content not found"

// Article represents a scraped news article. Content is either empty
// (fetch failure), the ContentNotFound sentinel (extraction exhaustion),
// or normalized body text longer than MinContentLength.
type Article struct {
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Content     string    `json:"content"`
	ContentHash string    `json:"-"`
	ExtractedAt time.Time `json:"-"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if a.Source == "" {
		return Errorf(EINVALID, "article source required")
	}
	return nil
}

// Accepted reports whether the article carries real body text and should
// be forwarded to persistence. Fetch failures (empty content) and
// extraction exhaustion (the sentinel) are both rejected.
func (a *Article) Accepted() bool {
	if a.Content == "" || a.Content == ContentNotFound {
		return false
	}
	return ContentLength(a.Content) > MinContentLength
}

// ContentLength returns the length of text in characters. Multi-byte
// scripts such as Devanagari must count one per rune or the acceptance
// gate would pass teasers a third of the intended length.
func ContentLength(text string) int {
	return utf8.RuneCountInString(text)
}

// HashContent computes the xxHash of content and returns it as a hex string.
func HashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// MergeArticles computes the URL-keyed set union of existing and incoming
// articles. Existing entries are untouched; incoming articles whose URL is
// not already present are appended in their original encounter order.
// Returns the merged collection and the count of new insertions. A zero
// count lets stores short-circuit the durable write.
func MergeArticles(existing, incoming []*Article) ([]*Article, int) {
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a.URL] = true
	}

	merged := existing
	inserted := 0
	for _, a := range incoming {
		if seen[a.URL] {
			continue
		}
		seen[a.URL] = true
		merged = append(merged, a)
		inserted++
	}
	return merged, inserted
}

// ArticleStore persists articles into per-source collections deduplicated
// by URL.
type ArticleStore interface {
	// LoadArticles returns the persisted collection for a source.
	// A missing collection yields an empty slice, not an error.
	LoadArticles(ctx context.Context, source string) ([]*Article, error)

	// MergeArticles merges new articles into the source's collection using
	// URL-keyed set union and returns the number of articles inserted.
	// When nothing is new the durable write is skipped.
	MergeArticles(ctx context.Context, source string, articles []*Article) (int, error)
}
