package slog

import (
	"context"
	"log/slog"
	"time"

	"newsharvest"
)

// Ensure LoggingArticleStore implements newsharvest.ArticleStore.
var _ newsharvest.ArticleStore = (*LoggingArticleStore)(nil)

// LoggingArticleStore wraps an ArticleStore with logging.
type LoggingArticleStore struct {
	next   newsharvest.ArticleStore
	logger *slog.Logger
}

// NewLoggingArticleStore creates a new LoggingArticleStore.
func NewLoggingArticleStore(next newsharvest.ArticleStore, logger *slog.Logger) *LoggingArticleStore {
	return &LoggingArticleStore{next: next, logger: logger}
}

// LoadArticles delegates to the wrapped store and logs the operation.
func (s *LoggingArticleStore) LoadArticles(ctx context.Context, source string) (articles []*newsharvest.Article, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load articles",
			"source", source,
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadArticles(ctx, source)
}

// MergeArticles delegates to the wrapped store and logs the operation.
func (s *LoggingArticleStore) MergeArticles(ctx context.Context, source string, articles []*newsharvest.Article) (inserted int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("merge articles",
			"source", source,
			"incoming", len(articles),
			"inserted", inserted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.MergeArticles(ctx, source, articles)
}
