package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/repository/cache"
	redisRepo "github.com/conduit-labs/conduit/internal/repository/redis"
)

func TestGetArticle(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisRepo.NewArticleCache(client)

	stored := domain.Article{ID: 10, Slug: "hello", Title: "Hello"}
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	mock.ExpectGet("article:slug:hello").SetVal(string(data))

	got, err := c.GetArticle(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, stored.Slug, got.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetArticleMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisRepo.NewArticleCache(client)

	mock.ExpectGet("article:slug:missing").RedisNil()

	_, err := c.GetArticle(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetArticle(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisRepo.NewArticleCache(client)

	a := domain.Article{ID: 10, Slug: "hello"}
	data, err := json.Marshal(&a)
	require.NoError(t, err)

	mock.ExpectSet("article:slug:hello", data, 10*time.Minute).SetVal("OK")

	err = c.SetArticle(context.Background(), &a)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteArticle(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisRepo.NewArticleCache(client)

	mock.ExpectDel("article:slug:hello").SetVal(1)

	err := c.DeleteArticle(context.Background(), "hello")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTagsMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisRepo.NewArticleCache(client)

	mock.ExpectGet("article:tags").RedisNil()

	_, _, err := c.GetTags(context.Background())

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestGetTagsFresh(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisRepo.NewArticleCache(client)

	entry := cache.NewDataWithLogicalExpire([]string{"go", "testing"}, time.Minute)
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	mock.ExpectGet("article:tags").SetVal(string(data))

	tags, expired, err := c.GetTags(context.Background())

	require.NoError(t, err)
	assert.False(t, expired)
	assert.Equal(t, []string{"go", "testing"}, tags)
}

func TestGetTagsLogicallyExpired(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisRepo.NewArticleCache(client)

	// past its logical deadline, still physically present
	entry := cache.NewDataWithLogicalExpire([]string{"go"}, -time.Minute)
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	mock.ExpectGet("article:tags").SetVal(string(data))

	tags, expired, err := c.GetTags(context.Background())

	require.NoError(t, err)
	assert.True(t, expired)
	assert.Equal(t, []string{"go"}, tags)
}
