// Package fs implements newsharvest.ArticleStore on per-source JSON files.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"newsharvest"
)

// Ensure ArticleStore implements newsharvest.ArticleStore at compile time.
var _ newsharvest.ArticleStore = (*ArticleStore)(nil)

// ArticleStore persists articles as one JSON file per news source.
// Writes are atomic: a temp file is written next to the target and
// renamed into place.
type ArticleStore struct {
	dir string
}

// NewArticleStore creates a store rooted at dir. The directory is
// created on the first write if it does not exist.
func NewArticleStore(dir string) *ArticleStore {
	return &ArticleStore{dir: dir}
}

// SourceFilename maps a source name to its JSON filename,
// e.g. "Economic Times" -> "Economic_Times.json".
func SourceFilename(source string) string {
	return strings.ReplaceAll(source, " ", "_") + ".json"
}

func (s *ArticleStore) path(source string) string {
	return filepath.Join(s.dir, SourceFilename(source))
}

// LoadArticles returns the articles previously saved for source.
// A missing or unreadable file yields an empty slice so a fresh or
// corrupted store never blocks new scrapes.
func (s *ArticleStore) LoadArticles(ctx context.Context, source string) ([]*newsharvest.Article, error) {
	if source == "" {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "source is required")
	}
	data, err := os.ReadFile(s.path(source))
	if err != nil {
		return []*newsharvest.Article{}, nil
	}
	var articles []*newsharvest.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return []*newsharvest.Article{}, nil
	}
	return articles, nil
}

// MergeArticles merges articles into the stored set for source, keyed
// by URL, and reports how many were newly inserted. When nothing is
// new the file is left untouched.
func (s *ArticleStore) MergeArticles(ctx context.Context, source string, articles []*newsharvest.Article) (int, error) {
	if source == "" {
		return 0, newsharvest.Errorf(newsharvest.EINVALID, "source is required")
	}

	existing, err := s.LoadArticles(ctx, source)
	if err != nil {
		return 0, err
	}

	merged, inserted := newsharvest.MergeArticles(existing, articles)
	if inserted == 0 {
		return 0, nil
	}

	if err := s.write(source, merged); err != nil {
		return 0, err
	}
	return inserted, nil
}

func (s *ArticleStore) write(source string, articles []*newsharvest.Article) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(articles); err != nil {
		return err
	}

	target := s.path(source)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
