package mock

import (
	"context"

	"newsharvest"
)

var _ newsharvest.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of newsharvest.ArticleStore.
type ArticleStore struct {
	LoadArticlesFn  func(ctx context.Context, source string) ([]*newsharvest.Article, error)
	MergeArticlesFn func(ctx context.Context, source string, articles []*newsharvest.Article) (int, error)
}

func (s *ArticleStore) LoadArticles(ctx context.Context, source string) ([]*newsharvest.Article, error) {
	return s.LoadArticlesFn(ctx, source)
}

func (s *ArticleStore) MergeArticles(ctx context.Context, source string, articles []*newsharvest.Article) (int, error) {
	return s.MergeArticlesFn(ctx, source, articles)
}
