package comment_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/domain/mocks"
	"github.com/conduit-labs/conduit/internal/usecase/comment"
)

type fixture struct {
	commentRepo *mocks.CommentRepository
	articleRepo *mocks.ArticleRepository
	userRepo    *mocks.UserRepository
	bloomRepo   *mocks.BloomRepository
	svc         domain.CommentUsecase
}

func newFixture() *fixture {
	f := &fixture{
		commentRepo: new(mocks.CommentRepository),
		articleRepo: new(mocks.ArticleRepository),
		userRepo:    new(mocks.UserRepository),
		bloomRepo:   new(mocks.BloomRepository),
	}
	f.svc = comment.NewService(f.commentRepo, f.articleRepo, f.userRepo, f.bloomRepo)
	return f
}

func (f *fixture) expectArticle(a domain.Article) {
	f.bloomRepo.On("Exists", mock.Anything, a.Slug).Return(true, nil).Once()
	f.articleRepo.On("GetBySlug", mock.Anything, a.Slug).Return(a, nil).Once()
}

func TestCreateComment(t *testing.T) {
	stored := domain.Article{ID: 10, Slug: "hello", Author: domain.User{ID: 2}}

	t.Run("success", func(t *testing.T) {
		f := newFixture()
		f.expectArticle(stored)
		f.commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Run(func(args mock.Arguments) {
				c := args.Get(1).(*domain.Comment)
				c.ID = 3
			}).Return(nil).Once()
		f.userRepo.On("GetByID", mock.Anything, int64(1)).
			Return(domain.User{ID: 1, Username: "jake"}, nil).Once()

		body := faker.Sentence()
		view, err := f.svc.Create(context.Background(), "hello", 1, body)

		require.NoError(t, err)
		assert.Equal(t, int64(3), view.Comment.ID)
		assert.Equal(t, int64(10), view.Comment.ArticleID)
		assert.Equal(t, body, view.Comment.Body)
		assert.Equal(t, "jake", view.Author.Username)
	})

	t.Run("blank body", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Create(context.Background(), "hello", 1, "")

		verr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "body")
		f.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("unknown article", func(t *testing.T) {
		f := newFixture()
		f.bloomRepo.On("Exists", mock.Anything, "missing").Return(false, nil).Once()

		_, err := f.svc.Create(context.Background(), "missing", 1, "hi")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFetchCommentsByArticle(t *testing.T) {
	stored := domain.Article{ID: 10, Slug: "hello", Author: domain.User{ID: 2}}

	t.Run("empty list is not nil", func(t *testing.T) {
		f := newFixture()
		f.expectArticle(stored)
		f.commentRepo.On("FetchByArticle", mock.Anything, int64(10)).Return([]domain.Comment{}, nil).Once()

		views, err := f.svc.FetchByArticle(context.Background(), "hello", 0)

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("authors are resolved with the viewer's follow state", func(t *testing.T) {
		f := newFixture()
		f.expectArticle(stored)
		f.commentRepo.On("FetchByArticle", mock.Anything, int64(10)).Return([]domain.Comment{
			{ID: 2, ArticleID: 10, AuthorID: 5, Body: "second"},
			{ID: 1, ArticleID: 10, AuthorID: 5, Body: "first"},
		}, nil).Once()
		f.userRepo.On("GetByIDs", mock.Anything, []int64{5}).
			Return([]domain.User{{ID: 5, Username: "anna"}}, nil).Once()
		f.userRepo.On("FollowingSet", mock.Anything, int64(1), []int64{5}).
			Return(map[int64]bool{5: true}, nil).Once()

		views, err := f.svc.FetchByArticle(context.Background(), "hello", 1)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "anna", views[0].Author.Username)
		assert.True(t, views[0].Author.Following)
	})
}

func TestDeleteComment(t *testing.T) {
	stored := domain.Article{ID: 10, Slug: "hello", Author: domain.User{ID: 2}}

	t.Run("success", func(t *testing.T) {
		f := newFixture()
		f.expectArticle(stored)
		f.commentRepo.On("GetByID", mock.Anything, int64(3)).
			Return(domain.Comment{ID: 3, ArticleID: 10, AuthorID: 1}, nil).Once()
		f.commentRepo.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

		err := f.svc.Delete(context.Background(), "hello", 3, 1)
		assert.NoError(t, err)
	})

	t.Run("only the comment author may delete", func(t *testing.T) {
		f := newFixture()
		f.expectArticle(stored)
		f.commentRepo.On("GetByID", mock.Anything, int64(3)).
			Return(domain.Comment{ID: 3, ArticleID: 10, AuthorID: 1}, nil).Once()

		err := f.svc.Delete(context.Background(), "hello", 3, 99)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		f.commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("comment under a different article reads as missing", func(t *testing.T) {
		f := newFixture()
		f.expectArticle(stored)
		f.commentRepo.On("GetByID", mock.Anything, int64(3)).
			Return(domain.Comment{ID: 3, ArticleID: 42, AuthorID: 1}, nil).Once()

		err := f.svc.Delete(context.Background(), "hello", 3, 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("concurrent delete is treated as done", func(t *testing.T) {
		f := newFixture()
		f.expectArticle(stored)
		f.commentRepo.On("GetByID", mock.Anything, int64(3)).
			Return(domain.Comment{ID: 3, ArticleID: 10, AuthorID: 1}, nil).Once()
		f.commentRepo.On("Delete", mock.Anything, int64(3)).Return(domain.ErrNotFound).Once()

		err := f.svc.Delete(context.Background(), "hello", 3, 1)
		assert.NoError(t, err)
	})
}
