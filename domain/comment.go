package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	AuthorID  int64     `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView pairs a comment with its author's projection.
type CommentView struct {
	Comment Comment
	Author  Profile
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// Create appends a comment to the article named by slug.
	Create(ctx context.Context, slug string, authorID int64, body string) (CommentView, error)

	// FetchByArticle lists the article's comments newest-first with
	// viewer-aware author projections. viewerID == 0 means anonymous.
	FetchByArticle(ctx context.Context, slug string, viewerID int64) ([]CommentView, error)

	// Delete removes the comment. Only the comment's author may delete it.
	Delete(ctx context.Context, slug string, commentID, actorID int64) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error

	// GetByID returns ErrNotFound when the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (Comment, error)

	// FetchByArticle lists the article's comments newest-first.
	FetchByArticle(ctx context.Context, articleID int64) ([]Comment, error)

	// Delete removes the comment row.
	Delete(ctx context.Context, id int64) error
}
