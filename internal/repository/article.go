package repository

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/conduit-labs/conduit/domain"
)

const tagsLogicalTTL = time.Minute

// articleRepository 协调层，协调缓存和数据库
type articleRepository struct {
	db           domain.ArticleDBRepository
	cache        domain.ArticleCache
	rebuildGroup singleflight.Group
	tagsGroup    singleflight.Group
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository 创建协调层repository
func NewArticleRepository(db domain.ArticleDBRepository, cache domain.ArticleCache) *articleRepository {
	return &articleRepository{
		db:    db,
		cache: cache,
	}
}

// GetBySlug 根据slug获取文章，使用singleflight避免缓存击穿
func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (domain.Article, error) {
	article, err := r.cache.GetArticle(ctx, slug)
	if err == nil {
		return article, nil
	}
	if err != domain.ErrCacheMiss {
		logrus.Warnf("cache get error for slug %q: %v", slug, err)
	}

	result, err, _ := r.rebuildGroup.Do("article:"+slug, func() (interface{}, error) {
		art, err := r.db.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if err := r.cache.SetArticle(context.Background(), &art); err != nil {
			logrus.Warnf("failed to set article cache: %v", err)
		}
		return art, nil
	})
	if err != nil {
		return domain.Article{}, err
	}
	return result.(domain.Article), nil
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	return r.db.GetByID(ctx, id)
}

func (r *articleRepository) Fetch(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, int64, error) {
	return r.db.Fetch(ctx, q)
}

func (r *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	return r.db.Store(ctx, a)
}

// Update 更新文章并失效缓存（改标题会换slug，新旧key都要删）
func (r *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	oldSlug := ""
	if old, err := r.db.GetByID(ctx, a.ID); err == nil {
		oldSlug = old.Slug
	}

	if err := r.db.Update(ctx, a); err != nil {
		return err
	}

	go func(slugs ...string) {
		for _, slug := range slugs {
			if slug == "" {
				continue
			}
			if err := r.cache.DeleteArticle(context.Background(), slug); err != nil {
				logrus.Warnf("failed to invalidate article cache %q: %v", slug, err)
			}
		}
	}(oldSlug, a.Slug)

	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	slug := ""
	if old, err := r.db.GetByID(ctx, id); err == nil {
		slug = old.Slug
	}

	if err := r.db.Delete(ctx, id); err != nil {
		return err
	}

	if slug != "" {
		go func(slug string) {
			if err := r.cache.DeleteArticle(context.Background(), slug); err != nil {
				logrus.Warnf("failed to invalidate article cache %q: %v", slug, err)
			}
		}(slug)
	}

	return nil
}

func (r *articleRepository) AddFavorite(ctx context.Context, userID, articleID int64) error {
	return r.db.AddFavorite(ctx, userID, articleID)
}

func (r *articleRepository) RemoveFavorite(ctx context.Context, userID, articleID int64) error {
	return r.db.RemoveFavorite(ctx, userID, articleID)
}

func (r *articleRepository) FavoritedSet(ctx context.Context, userID int64, articleIDs []int64) (map[int64]bool, error) {
	return r.db.FavoritedSet(ctx, userID, articleIDs)
}

func (r *articleRepository) FavoriteIDs(ctx context.Context, userID int64) ([]int64, error) {
	return r.db.FavoriteIDs(ctx, userID)
}

// RecountFavorites 重算收藏数后失效缓存，避免读到旧计数
func (r *articleRepository) RecountFavorites(ctx context.Context, articleID int64) (int64, error) {
	count, err := r.db.RecountFavorites(ctx, articleID)
	if err != nil {
		return 0, err
	}

	if art, err := r.db.GetByID(ctx, articleID); err == nil {
		go func(slug string) {
			if err := r.cache.DeleteArticle(context.Background(), slug); err != nil {
				logrus.Warnf("failed to invalidate article cache %q: %v", slug, err)
			}
		}(art.Slug)
	}

	return count, nil
}

func (r *articleRepository) RecountAllFavorites(ctx context.Context) error {
	return r.db.RecountAllFavorites(ctx)
}

// DistinctTags 获取全部标签，逻辑过期后异步重建
func (r *articleRepository) DistinctTags(ctx context.Context) ([]string, error) {
	tags, expired, err := r.cache.GetTags(ctx)
	if err == nil {
		if expired {
			go r.rebuildTagsCache(context.Background())
		}
		return tags, nil
	}
	if err != domain.ErrCacheMiss {
		logrus.Warnf("tags cache get error: %v", err)
	}

	result, err, _ := r.tagsGroup.Do("tags", func() (interface{}, error) {
		tags, err := r.db.DistinctTags(ctx)
		if err != nil {
			return nil, err
		}
		if err := r.cache.SetTags(context.Background(), tags, tagsLogicalTTL); err != nil {
			logrus.Warnf("failed to set tags cache: %v", err)
		}
		return tags, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}

func (r *articleRepository) FetchSlugs(ctx context.Context) ([]string, error) {
	return r.db.FetchSlugs(ctx)
}

// rebuildTagsCache 异步重建标签缓存
func (r *articleRepository) rebuildTagsCache(ctx context.Context) {
	_, err, _ := r.tagsGroup.Do("tags", func() (interface{}, error) {
		tags, err := r.db.DistinctTags(ctx)
		if err != nil {
			return nil, err
		}
		return tags, r.cache.SetTags(ctx, tags, tagsLogicalTTL)
	})
	if err != nil {
		logrus.Errorf("rebuildTagsCache failed: %v", err)
	}
}
