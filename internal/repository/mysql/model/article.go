package model

import (
	"time"

	"github.com/conduit-labs/conduit/domain"
)

type Article struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Slug           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:varchar(512);not null"`
	Body           string    `gorm:"type:longtext;not null"`
	AuthorID       int64     `gorm:"column:author_id;not null;index"`
	FavoritesCount int64     `gorm:"column:favorites_count;default:0"`
	CreatedAt      time.Time `gorm:"type:datetime;index"`
	UpdatedAt      time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "articles"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:             m.ID,
		Slug:           m.Slug,
		Title:          m.Title,
		Description:    m.Description,
		Body:           m.Body,
		FavoritesCount: m.FavoritesCount,
		Author: domain.User{
			ID: m.AuthorID,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:             a.ID,
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		AuthorID:       a.Author.ID,
		FavoritesCount: a.FavoritesCount,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ArticleTag is one entry of an article's ordered tag set.
type ArticleTag struct {
	ArticleID int64  `gorm:"column:article_id;primaryKey;autoIncrement:false"`
	Tag       string `gorm:"type:varchar(128);primaryKey"`
	Position  int    `gorm:"not null"`
}

func (ArticleTag) TableName() string {
	return "article_tags"
}
