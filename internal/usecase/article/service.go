package article

import (
	"context"
	"errors"
	"time"

	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"

	"github.com/conduit-labs/conduit/domain"
)

// Service implements domain.ArticleUsecase: article lifecycle, the
// favorite relation and the listing/feed aggregation.
type Service struct {
	articleRepo   domain.ArticleRepository
	userRepo      domain.UserRepository
	bloomRepo     domain.BloomRepository
	recountWorker domain.FavoritesRecountWorker
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(a domain.ArticleRepository, u domain.UserRepository, b domain.BloomRepository, w domain.FavoritesRecountWorker) *Service {
	return &Service{
		articleRepo:   a,
		userRepo:      u,
		bloomRepo:     b,
		recountWorker: w,
	}
}

func (s *Service) GetBySlug(ctx context.Context, slugStr string, viewerID int64) (domain.ArticleView, error) {
	exists, err := s.bloomRepo.Exists(ctx, slugStr)
	if err == nil && !exists {
		return domain.ArticleView{}, domain.ErrNotFound
	}

	article, err := s.articleRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		return domain.ArticleView{}, err
	}
	return s.buildView(ctx, article, viewerID)
}

func (s *Service) Create(ctx context.Context, authorID int64, input domain.CreateArticleInput) (domain.ArticleView, error) {
	if err := validateArticleFields(input.Title, input.Description, input.Body); err != nil {
		return domain.ArticleView{}, err
	}

	article := domain.Article{
		Slug:        slug.Make(input.Title),
		Title:       input.Title,
		Description: input.Description,
		Body:        input.Body,
		TagList:     input.TagList,
		Author:      domain.User{ID: authorID},
	}

	// Near-identical titles collapse to the same slug. That is rejected,
	// not auto-disambiguated: the caller has to pick a different title.
	if _, err := s.articleRepo.GetBySlug(ctx, article.Slug); err == nil {
		return domain.ArticleView{}, domain.NewValidationError("slug", "is already taken")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.ArticleView{}, err
	}

	if err := s.articleRepo.Store(ctx, &article); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.ArticleView{}, domain.NewValidationError("slug", "is already taken")
		}
		return domain.ArticleView{}, err
	}

	if err := s.bloomRepo.Add(ctx, article.Slug); err != nil {
		logrus.Warnf("failed to add slug %q to bloom filter: %v", article.Slug, err)
	}

	return s.buildView(ctx, article, authorID)
}

func (s *Service) Update(ctx context.Context, slugStr string, actorID int64, input domain.UpdateArticleInput) (domain.ArticleView, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		return domain.ArticleView{}, err
	}
	if article.Author.ID != actorID {
		return domain.ArticleView{}, domain.ErrForbidden
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Description != nil {
		article.Description = *input.Description
	}
	if input.Body != nil {
		article.Body = *input.Body
	}
	if input.TagList != nil {
		article.TagList = *input.TagList
	}
	if err := validateArticleFields(article.Title, article.Description, article.Body); err != nil {
		return domain.ArticleView{}, err
	}

	// slug is always recomputed from the current title before persisting
	newSlug := slug.Make(article.Title)
	if newSlug != article.Slug {
		if _, err := s.articleRepo.GetBySlug(ctx, newSlug); err == nil {
			return domain.ArticleView{}, domain.NewValidationError("slug", "is already taken")
		} else if !errors.Is(err, domain.ErrNotFound) {
			return domain.ArticleView{}, err
		}
		article.Slug = newSlug
	}
	article.UpdatedAt = time.Now()

	if err := s.articleRepo.Update(ctx, &article); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.ArticleView{}, domain.NewValidationError("slug", "is already taken")
		}
		return domain.ArticleView{}, err
	}

	if err := s.bloomRepo.Add(ctx, article.Slug); err != nil {
		logrus.Warnf("failed to add slug %q to bloom filter: %v", article.Slug, err)
	}

	return s.buildView(ctx, article, actorID)
}

func (s *Service) Delete(ctx context.Context, slugStr string, actorID int64) error {
	article, err := s.articleRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		return err
	}
	if article.Author.ID != actorID {
		return domain.ErrForbidden
	}
	return s.articleRepo.Delete(ctx, article.ID)
}

// List composes the tag/author/favoriter filters conjunctively. An unknown
// author or favoriter username yields an empty result, not an error.
func (s *Service) List(ctx context.Context, filter domain.ListArticlesFilter, viewerID int64) ([]domain.ArticleView, int64, error) {
	query := domain.ArticleQuery{
		Tag:    filter.Tag,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	if filter.Author != "" {
		author, err := s.userRepo.GetByUsername(ctx, filter.Author)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return []domain.ArticleView{}, 0, nil
			}
			return nil, 0, err
		}
		query.AuthorID = author.ID
	}

	if filter.FavoritedBy != "" {
		favoriter, err := s.userRepo.GetByUsername(ctx, filter.FavoritedBy)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return []domain.ArticleView{}, 0, nil
			}
			return nil, 0, err
		}
		ids, err := s.articleRepo.FavoriteIDs(ctx, favoriter.ID)
		if err != nil {
			return nil, 0, err
		}
		if len(ids) == 0 {
			return []domain.ArticleView{}, 0, nil
		}
		query.IDs = ids
	}

	articles, total, err := s.articleRepo.Fetch(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	views, err := s.buildViews(ctx, articles, viewerID)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// Feed is restricted to articles authored by users the caller follows.
func (s *Service) Feed(ctx context.Context, userID int64, limit, offset int) ([]domain.ArticleView, int64, error) {
	followingIDs, err := s.userRepo.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if len(followingIDs) == 0 {
		return []domain.ArticleView{}, 0, nil
	}

	articles, total, err := s.articleRepo.Fetch(ctx, domain.ArticleQuery{
		AuthorIDs: followingIDs,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, 0, err
	}

	views, err := s.buildViews(ctx, articles, userID)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (s *Service) Favorite(ctx context.Context, slugStr string, userID int64) (domain.ArticleView, error) {
	return s.setFavorite(ctx, slugStr, userID, true)
}

func (s *Service) Unfavorite(ctx context.Context, slugStr string, userID int64) (domain.ArticleView, error) {
	return s.setFavorite(ctx, slugStr, userID, false)
}

func (s *Service) setFavorite(ctx context.Context, slugStr string, userID int64, favorited bool) (domain.ArticleView, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		return domain.ArticleView{}, err
	}

	if favorited {
		err = s.articleRepo.AddFavorite(ctx, userID, article.ID)
	} else {
		err = s.articleRepo.RemoveFavorite(ctx, userID, article.ID)
	}
	if err != nil {
		return domain.ArticleView{}, err
	}

	// authoritative recount from the relation, never an in-place delta;
	// on failure the worker retries so the count still converges
	count, err := s.articleRepo.RecountFavorites(ctx, article.ID)
	if err != nil {
		logrus.Errorf("failed to recount favorites for article %d: %v", article.ID, err)
		s.recountWorker.Send(article.ID)
	} else {
		article.FavoritesCount = count
	}

	view, err := s.buildView(ctx, article, userID)
	if err != nil {
		return domain.ArticleView{}, err
	}
	view.Favorited = favorited
	return view, nil
}

func (s *Service) Tags(ctx context.Context) ([]string, error) {
	return s.articleRepo.DistinctTags(ctx)
}

// InitBloomFilter warms the slug bloom filter from storage at startup.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	slugs, err := s.articleRepo.FetchSlugs(ctx)
	if err != nil {
		return err
	}
	return s.bloomRepo.BulkAdd(ctx, slugs)
}

func (s *Service) buildView(ctx context.Context, article domain.Article, viewerID int64) (domain.ArticleView, error) {
	views, err := s.buildViews(ctx, []domain.Article{article}, viewerID)
	if err != nil {
		return domain.ArticleView{}, err
	}
	return views[0], nil
}

// buildViews resolves authors and the viewer's favorite/follow flags with
// explicit batch lookups. No lazy reference expansion.
func (s *Service) buildViews(ctx context.Context, articles []domain.Article, viewerID int64) ([]domain.ArticleView, error) {
	if len(articles) == 0 {
		return []domain.ArticleView{}, nil
	}

	authorIDs := make([]int64, 0, len(articles))
	articleIDs := make([]int64, 0, len(articles))
	seen := make(map[int64]bool, len(articles))
	for _, a := range articles {
		articleIDs = append(articleIDs, a.ID)
		if !seen[a.Author.ID] {
			authorIDs = append(authorIDs, a.Author.ID)
			seen[a.Author.ID] = true
		}
	}

	authors, err := s.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authorMap := make(map[int64]domain.User, len(authors))
	for _, u := range authors {
		authorMap[u.ID] = u
	}

	favoritedSet := map[int64]bool{}
	followingSet := map[int64]bool{}
	if viewerID != 0 {
		favoritedSet, err = s.articleRepo.FavoritedSet(ctx, viewerID, articleIDs)
		if err != nil {
			return nil, err
		}
		followingSet, err = s.userRepo.FollowingSet(ctx, viewerID, authorIDs)
		if err != nil {
			return nil, err
		}
	}

	views := make([]domain.ArticleView, len(articles))
	for i, a := range articles {
		author := authorMap[a.Author.ID]
		a.Author = author
		views[i] = domain.ArticleView{
			Article:   a,
			Favorited: favoritedSet[a.ID],
			Author:    domain.ProfileOf(author, followingSet[author.ID]),
		}
	}
	return views, nil
}

func validateArticleFields(title, description, body string) error {
	verr := &domain.ValidationError{Fields: map[string]string{}}
	if title == "" {
		verr.Fields["title"] = "can't be blank"
	}
	if description == "" {
		verr.Fields["description"] = "can't be blank"
	}
	if body == "" {
		verr.Fields["body"] = "can't be blank"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
