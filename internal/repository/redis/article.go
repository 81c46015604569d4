package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/repository/cache"
)

const (
	KeyArticleBySlug = "article:slug:%s"
	KeyTagList       = "article:tags"

	articleTTL = 10 * time.Minute
	// tag entries live longer physically than logically so stale data can
	// still be served while a rebuild runs
	tagsPhysicalTTL = 10 * time.Minute
)

type articleCache struct {
	client *redis.Client
}

var _ domain.ArticleCache = (*articleCache)(nil)

func NewArticleCache(client *redis.Client) *articleCache {
	return &articleCache{
		client,
	}
}

func (c *articleCache) GetArticle(ctx context.Context, slug string) (res domain.Article, err error) {
	key := fmt.Sprintf(KeyArticleBySlug, slug)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Article{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Article{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Article{}, err
	}
	return
}

func (c *articleCache) SetArticle(ctx context.Context, a *domain.Article) (err error) {
	key := fmt.Sprintf(KeyArticleBySlug, a.Slug)
	data, err := json.Marshal(a)
	if err != nil {
		return
	}
	err = c.client.Set(ctx, key, data, articleTTL).Err()
	return
}

func (c *articleCache) DeleteArticle(ctx context.Context, slug string) error {
	key := fmt.Sprintf(KeyArticleBySlug, slug)
	return c.client.Del(ctx, key).Err()
}

// GetTags serves the distinct-tag list with logical expiry: a hit past its
// logical deadline is still returned, flagged expired so the caller can
// rebuild asynchronously.
func (c *articleCache) GetTags(ctx context.Context) ([]string, bool, error) {
	data, err := c.client.Get(ctx, KeyTagList).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var wrapper struct {
		Data      []string  `json:"data"`
		ExpireAt  time.Time `json:"expire_at"`
		CreatedAt time.Time `json:"created_at"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, false, err
	}
	entry := cache.DataWithLogicalExpire{
		Data:      wrapper.Data,
		ExpireAt:  wrapper.ExpireAt,
		CreatedAt: wrapper.CreatedAt,
	}
	return wrapper.Data, entry.IsLogicalExpired(), nil
}

func (c *articleCache) SetTags(ctx context.Context, tags []string, ttl time.Duration) error {
	entry := cache.NewDataWithLogicalExpire(tags, ttl)
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyTagList, data, tagsPhysicalTTL).Err()
}
