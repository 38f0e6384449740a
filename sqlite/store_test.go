package sqlite_test

import (
	"context"
	"testing"

	"newsharvest"
	"newsharvest/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleStore_MergeArticles(t *testing.T) {
	t.Parallel()

	t.Run("inserts new articles and counts them", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewArticleStore(MustOpenDB(t))
		ctx := context.Background()

		inserted, err := store.MergeArticles(ctx, "LiveMint", []*newsharvest.Article{
			{URL: "https://example.com/a", Source: "LiveMint", Content: "first"},
			{URL: "https://example.com/b", Source: "LiveMint", Content: "second"},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, inserted)
	})

	t.Run("duplicate urls are ignored and keep original content", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewArticleStore(MustOpenDB(t))
		ctx := context.Background()

		_, err := store.MergeArticles(ctx, "The Hindu", []*newsharvest.Article{
			{URL: "https://example.com/a", Source: "The Hindu", Content: "original"},
		})
		require.NoError(t, err)

		inserted, err := store.MergeArticles(ctx, "The Hindu", []*newsharvest.Article{
			{URL: "https://example.com/a", Source: "The Hindu", Content: "rewritten"},
			{URL: "https://example.com/b", Source: "The Hindu", Content: "new"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, inserted)

		articles, err := store.LoadArticles(ctx, "The Hindu")
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "original", articles[0].Content)
	})

	t.Run("sets content hash and extraction time", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewArticleStore(MustOpenDB(t))
		ctx := context.Background()

		_, err := store.MergeArticles(ctx, "News18", []*newsharvest.Article{
			{URL: "https://example.com/a", Source: "News18", Content: "body"},
		})
		require.NoError(t, err)

		articles, err := store.LoadArticles(ctx, "News18")
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, newsharvest.HashContent("body"), articles[0].ContentHash)
		assert.False(t, articles[0].ExtractedAt.IsZero())
	})

	t.Run("invalid article is rejected", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewArticleStore(MustOpenDB(t))

		_, err := store.MergeArticles(context.Background(), "News18", []*newsharvest.Article{
			{URL: "", Source: "News18", Content: "body"},
		})
		assert.Equal(t, newsharvest.EINVALID, newsharvest.ErrorCode(err))
	})

	t.Run("empty source is invalid", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewArticleStore(MustOpenDB(t))
		_, err := store.MergeArticles(context.Background(), "", nil)
		assert.Equal(t, newsharvest.EINVALID, newsharvest.ErrorCode(err))
	})
}

func TestArticleStore_LoadArticles(t *testing.T) {
	t.Parallel()

	t.Run("unknown source yields empty slice", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewArticleStore(MustOpenDB(t))
		articles, err := store.LoadArticles(context.Background(), "Firstpost")

		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("sources are isolated", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewArticleStore(MustOpenDB(t))
		ctx := context.Background()

		_, err := store.MergeArticles(ctx, "LiveMint", []*newsharvest.Article{
			{URL: "https://example.com/a", Source: "LiveMint", Content: "mint"},
		})
		require.NoError(t, err)
		_, err = store.MergeArticles(ctx, "Firstpost", []*newsharvest.Article{
			{URL: "https://example.com/b", Source: "Firstpost", Content: "post"},
		})
		require.NoError(t, err)

		articles, err := store.LoadArticles(ctx, "LiveMint")
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "https://example.com/a", articles[0].URL)
	})
}
