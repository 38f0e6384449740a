package sqlite

import (
	"context"
	"fmt"
	"time"

	"newsharvest"

	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsharvest.ArticleStore = (*ArticleStore)(nil)

// ArticleStore implements newsharvest.ArticleStore using SQLite.
// URL uniqueness is enforced by the schema, so merges are a single
// INSERT OR IGNORE per article.
type ArticleStore struct {
	db *DB
}

// NewArticleStore creates a new ArticleStore.
func NewArticleStore(db *DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// LoadArticles returns all articles stored for source in insertion order.
func (s *ArticleStore) LoadArticles(ctx context.Context, source string) ([]*newsharvest.Article, error) {
	if source == "" {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "source is required")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT url, source, content, content_hash, extracted_at
		FROM articles
		WHERE source = ?
		ORDER BY rowid ASC
	`, source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []*newsharvest.Article{}
	for rows.Next() {
		var article newsharvest.Article
		var extractedAt string

		if err := rows.Scan(&article.URL, &article.Source, &article.Content,
			&article.ContentHash, &extractedAt); err != nil {
			return nil, err
		}

		var parseErr error
		article.ExtractedAt, parseErr = time.Parse(time.RFC3339, extractedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse extracted_at: %w", parseErr)
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}

// MergeArticles inserts the articles whose URLs are not yet stored for
// source and reports how many were newly inserted. Already-stored URLs
// keep their original content.
func (s *ArticleStore) MergeArticles(ctx context.Context, source string, articles []*newsharvest.Article) (int, error) {
	if source == "" {
		return 0, newsharvest.Errorf(newsharvest.EINVALID, "source is required")
	}

	inserted := 0
	for _, article := range articles {
		if err := article.Validate(); err != nil {
			return inserted, err
		}

		extractedAt := article.ExtractedAt
		if extractedAt.IsZero() {
			extractedAt = time.Now().UTC()
		}

		result, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO articles (id, url, source, content, content_hash, extracted_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), article.URL, source, article.Content,
			newsharvest.HashContent(article.Content), extractedAt.Format(time.RFC3339))
		if err != nil {
			return inserted, err
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return inserted, err
		}
		inserted += int(rows)
	}

	return inserted, nil
}
