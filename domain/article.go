package domain

import (
	"context"
	"time"
)

// Article is representing the Article data struct
type Article struct {
	ID             int64     // Unique identifier
	Slug           string    // URL identity derived from the title, unique
	Title          string    // Article title
	Description    string    // Short summary
	Body           string    // Article body content
	TagList        []string  // Ordered set of tags
	FavoritesCount int64     // Denormalized count of favoriting users
	Author         User      // Author information
	CreatedAt      time.Time // Creation timestamp
	UpdatedAt      time.Time // Last update timestamp
}

// ArticleView is the caller-aware projection of an article.
type ArticleView struct {
	Article   Article
	Favorited bool
	Author    Profile
}

// CreateArticleInput carries the fields required to publish an article.
type CreateArticleInput struct {
	Title       string
	Description string
	Body        string
	TagList     []string
}

// UpdateArticleInput applies only the fields that are non-nil.
type UpdateArticleInput struct {
	Title       *string
	Description *string
	Body        *string
	TagList     *[]string
}

// ArticleQuery describes a filtered, paginated listing.
// Zero values mean "no restriction"; resolution of usernames to ids
// happens before the query is built, so an unknown author/favoriter
// never reaches the storage layer.
type ArticleQuery struct {
	Tag       string  // restrict to articles whose tag list contains this tag
	AuthorID  int64   // restrict to a single author
	AuthorIDs []int64 // restrict to a set of authors (feed)
	IDs       []int64 // restrict to a set of article ids (favorited-by)
	Limit     int
	Offset    int
}

// ArticleDBRepository defines the contract for article persistence,
// including the favorite relation and tags.
type ArticleDBRepository interface {
	// GetBySlug retrieves an article with its tags by slug.
	// The author carries only its id; callers resolve the rest.
	// Returns ErrNotFound if no article has the slug.
	GetBySlug(ctx context.Context, slug string) (Article, error)

	// GetByID retrieves an article with its tags by id.
	GetByID(ctx context.Context, id int64) (Article, error)

	// Fetch lists articles matching the query, newest-created-first,
	// along with the total number of matches before pagination.
	Fetch(ctx context.Context, q ArticleQuery) ([]Article, int64, error)

	// Store creates the article and its tag rows.
	// Backfills ID and timestamps. Returns ErrConflict on a slug collision.
	Store(ctx context.Context, a *Article) error

	// Update persists the article's fields and replaces its tag rows.
	// Returns ErrConflict on a slug collision, ErrNotFound if gone.
	Update(ctx context.Context, a *Article) error

	// Delete removes the article together with its comments, favorite
	// rows and tag rows.
	Delete(ctx context.Context, id int64) error

	// AddFavorite inserts a favorite edge. Idempotent.
	AddFavorite(ctx context.Context, userID, articleID int64) error

	// RemoveFavorite removes a favorite edge. Idempotent.
	RemoveFavorite(ctx context.Context, userID, articleID int64) error

	// FavoritedSet reports, for each of articleIDs, whether userID favorited it.
	FavoritedSet(ctx context.Context, userID int64, articleIDs []int64) (map[int64]bool, error)

	// FavoriteIDs lists the ids of every article favorited by userID.
	FavoriteIDs(ctx context.Context, userID int64) ([]int64, error)

	// RecountFavorites recomputes favorites_count from the favorite
	// relation and persists it, returning the authoritative count.
	RecountFavorites(ctx context.Context, articleID int64) (int64, error)

	// RecountAllFavorites reconciles favorites_count for every article.
	RecountAllFavorites(ctx context.Context) error

	// DistinctTags lists every distinct tag across all articles.
	DistinctTags(ctx context.Context) ([]string, error)

	// FetchSlugs lists every article slug. Used to warm the bloom filter.
	FetchSlugs(ctx context.Context) ([]string, error)
}

// ArticleRepository is the coordinated read surface consumed by usecases:
// cache-aware reads, write-through invalidation. Same contract as the DB
// layer; the coordinator decides what is served from cache.
type ArticleRepository interface {
	ArticleDBRepository
}

type ArticleCache interface {
	// GetArticle returns the cached article for the slug.
	// Returns ErrCacheMiss when absent.
	GetArticle(ctx context.Context, slug string) (Article, error)
	SetArticle(ctx context.Context, a *Article) error
	DeleteArticle(ctx context.Context, slug string) error

	// GetTags returns the cached distinct tag list along with whether the
	// entry is logically expired and due for an async rebuild.
	GetTags(ctx context.Context) (tags []string, expired bool, err error)
	SetTags(ctx context.Context, tags []string, ttl time.Duration) error
}

type ArticleUsecase interface {
	GetBySlug(ctx context.Context, slug string, viewerID int64) (ArticleView, error)
	Create(ctx context.Context, authorID int64, input CreateArticleInput) (ArticleView, error)
	Update(ctx context.Context, slug string, actorID int64, input UpdateArticleInput) (ArticleView, error)
	Delete(ctx context.Context, slug string, actorID int64) error
	List(ctx context.Context, filter ListArticlesFilter, viewerID int64) ([]ArticleView, int64, error)
	Feed(ctx context.Context, userID int64, limit, offset int) ([]ArticleView, int64, error)
	Favorite(ctx context.Context, slug string, userID int64) (ArticleView, error)
	Unfavorite(ctx context.Context, slug string, userID int64) (ArticleView, error)
	Tags(ctx context.Context) ([]string, error)
	InitBloomFilter(ctx context.Context) error
}

// ListArticlesFilter is the pre-resolution listing filter: author and
// favoriter arrive as usernames and are resolved by the aggregator.
type ListArticlesFilter struct {
	Tag         string
	Author      string
	FavoritedBy string
	Limit       int
	Offset      int
}
