package model

import (
	"time"

	"github.com/conduit-labs/conduit/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"column:article_id;not null;index"`
	AuthorID  int64     `gorm:"column:author_id;not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		AuthorID:  m.AuthorID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}
