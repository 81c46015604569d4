package response

import (
	"github.com/conduit-labs/conduit/domain"
)

type Article struct {
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Body           string   `json:"body"`
	TagList        []string `json:"tagList"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
	Favorited      bool     `json:"favorited"`
	FavoritesCount int64    `json:"favoritesCount"`
	Author         Profile  `json:"author"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(v *domain.ArticleView) Article {
	tagList := v.Article.TagList
	if tagList == nil {
		tagList = []string{}
	}
	return Article{
		Slug:           v.Article.Slug,
		Title:          v.Article.Title,
		Description:    v.Article.Description,
		Body:           v.Article.Body,
		TagList:        tagList,
		CreatedAt:      v.Article.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:      v.Article.UpdatedAt.Format(DateTimeFormat),
		Favorited:      v.Favorited,
		FavoritesCount: v.Article.FavoritesCount,
		Author:         NewProfileFromDomain(v.Author),
	}
}
