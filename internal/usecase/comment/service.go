package comment

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/conduit-labs/conduit/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, articleRepo domain.ArticleRepository, userRepo domain.UserRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
	}
}

// mustExist short-circuits on slugs the bloom filter rules out before any
// storage round-trip.
func (s *service) mustExist(ctx context.Context, slug string) (domain.Article, error) {
	exists, err := s.bloomRepo.Exists(ctx, slug)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says article %q does not exist", slug)
		return domain.Article{}, domain.ErrNotFound
	}

	return s.articleRepo.GetBySlug(ctx, slug)
}

func (s *service) Create(ctx context.Context, slug string, authorID int64, body string) (domain.CommentView, error) {
	if body == "" {
		return domain.CommentView{}, domain.NewValidationError("body", "can't be blank")
	}

	article, err := s.mustExist(ctx, slug)
	if err != nil {
		return domain.CommentView{}, err
	}

	comment := domain.Comment{
		ArticleID: article.ID,
		AuthorID:  authorID,
		Body:      body,
	}
	if err := s.commentRepo.Store(ctx, &comment); err != nil {
		return domain.CommentView{}, err
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return domain.CommentView{}, err
	}
	return domain.CommentView{
		Comment: comment,
		Author:  domain.ProfileOf(author, false),
	}, nil
}

func (s *service) FetchByArticle(ctx context.Context, slug string, viewerID int64) ([]domain.CommentView, error) {
	article, err := s.mustExist(ctx, slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FetchByArticle(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []domain.CommentView{}, nil
	}

	authorIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]bool, len(comments))
	for _, c := range comments {
		if !seen[c.AuthorID] {
			authorIDs = append(authorIDs, c.AuthorID)
			seen[c.AuthorID] = true
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

	followingSet := map[int64]bool{}
	if viewerID != 0 {
		followingSet, err = s.userRepo.FollowingSet(ctx, viewerID, authorIDs)
		if err != nil {
			return nil, err
		}
	}

	res := make([]domain.CommentView, len(comments))
	for i, c := range comments {
		author := authorMap[c.AuthorID]
		res[i] = domain.CommentView{
			Comment: c,
			Author:  domain.ProfileOf(author, followingSet[author.ID]),
		}
	}
	return res, nil
}

// Delete removes the comment. Only the comment's author may delete it,
// and the comment must belong to the named article.
func (s *service) Delete(ctx context.Context, slug string, commentID, actorID int64) error {
	article, err := s.mustExist(ctx, slug)
	if err != nil {
		return err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.ArticleID != article.ID {
		return domain.ErrNotFound
	}
	if comment.AuthorID != actorID {
		return domain.ErrForbidden
	}

	err = s.commentRepo.Delete(ctx, commentID)
	if errors.Is(err, domain.ErrNotFound) {
		// concurrent delete already removed it; treat as done
		return nil
	}
	return err
}
