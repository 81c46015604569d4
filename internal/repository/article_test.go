package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/domain/mocks"
	"github.com/conduit-labs/conduit/internal/repository"
)

func TestGetBySlugCacheHit(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	repo := repository.NewArticleRepository(db, cache)

	cache.On("GetArticle", mock.Anything, "hello").
		Return(domain.Article{ID: 10, Slug: "hello"}, nil).Once()

	a, err := repo.GetBySlug(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, int64(10), a.ID)
	db.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
}

func TestGetBySlugCacheMissFillsCache(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	repo := repository.NewArticleRepository(db, cache)

	cache.On("GetArticle", mock.Anything, "hello").
		Return(domain.Article{}, domain.ErrCacheMiss).Once()
	db.On("GetBySlug", mock.Anything, "hello").
		Return(domain.Article{ID: 10, Slug: "hello"}, nil).Once()
	cache.On("SetArticle", mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil).Once()

	a, err := repo.GetBySlug(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, int64(10), a.ID)
	db.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestGetBySlugMissingEverywhere(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	repo := repository.NewArticleRepository(db, cache)

	cache.On("GetArticle", mock.Anything, "missing").
		Return(domain.Article{}, domain.ErrCacheMiss).Once()
	db.On("GetBySlug", mock.Anything, "missing").
		Return(domain.Article{}, domain.ErrNotFound).Once()

	_, err := repo.GetBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateInvalidatesOldAndNewSlug(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	repo := repository.NewArticleRepository(db, cache)

	db.On("GetByID", mock.Anything, int64(10)).
		Return(domain.Article{ID: 10, Slug: "old-slug"}, nil).Once()
	db.On("Update", mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil).Once()
	// invalidation runs async, so it may or may not land before assertion
	cache.On("DeleteArticle", mock.Anything, "old-slug").Return(nil).Maybe()
	cache.On("DeleteArticle", mock.Anything, "new-slug").Return(nil).Maybe()

	err := repo.Update(context.Background(), &domain.Article{ID: 10, Slug: "new-slug"})

	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestRecountFavoritesInvalidatesCache(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	repo := repository.NewArticleRepository(db, cache)

	db.On("RecountFavorites", mock.Anything, int64(10)).Return(int64(7), nil).Once()
	db.On("GetByID", mock.Anything, int64(10)).
		Return(domain.Article{ID: 10, Slug: "hello"}, nil).Once()
	cache.On("DeleteArticle", mock.Anything, "hello").Return(nil).Maybe()

	count, err := repo.RecountFavorites(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	db.AssertExpectations(t)
}

func TestDistinctTagsFreshCacheHit(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	repo := repository.NewArticleRepository(db, cache)

	cache.On("GetTags", mock.Anything).Return([]string{"go"}, false, nil).Once()

	tags, err := repo.DistinctTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, tags)
	db.AssertNotCalled(t, "DistinctTags", mock.Anything)
}

func TestDistinctTagsExpiredServesStale(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	repo := repository.NewArticleRepository(db, cache)

	cache.On("GetTags", mock.Anything).Return([]string{"go"}, true, nil).Once()
	// async rebuild may fire after we return
	db.On("DistinctTags", mock.Anything).Return([]string{"go", "new"}, nil).Maybe()
	cache.On("SetTags", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	tags, err := repo.DistinctTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, tags)
}

func TestDistinctTagsMissRebuildsSynchronously(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	repo := repository.NewArticleRepository(db, cache)

	cache.On("GetTags", mock.Anything).Return(nil, false, domain.ErrCacheMiss).Once()
	db.On("DistinctTags", mock.Anything).Return([]string{"go", "testing"}, nil).Once()
	cache.On("SetTags", mock.Anything, []string{"go", "testing"}, mock.Anything).Return(nil).Once()

	tags, err := repo.DistinctTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "testing"}, tags)
	db.AssertExpectations(t)
	cache.AssertExpectations(t)
}
