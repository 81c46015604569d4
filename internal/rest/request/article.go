package request

import "github.com/conduit-labs/conduit/domain"

// CreateArticle is the envelope for POST /api/articles.
type CreateArticle struct {
	Article struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Body        string   `json:"body"`
		TagList     []string `json:"tagList"`
	} `json:"article"`
}

// ToDomain: Request -> Domain
func (r *CreateArticle) ToDomain() domain.CreateArticleInput {
	return domain.CreateArticleInput{
		Title:       r.Article.Title,
		Description: r.Article.Description,
		Body:        r.Article.Body,
		TagList:     r.Article.TagList,
	}
}

// UpdateArticle is the envelope for PUT /api/articles/:slug.
// Pointer fields distinguish "absent" from "set to empty".
type UpdateArticle struct {
	Article struct {
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		Body        *string   `json:"body"`
		TagList     *[]string `json:"tagList"`
	} `json:"article"`
}

func (r *UpdateArticle) ToDomain() domain.UpdateArticleInput {
	return domain.UpdateArticleInput{
		Title:       r.Article.Title,
		Description: r.Article.Description,
		Body:        r.Article.Body,
		TagList:     r.Article.TagList,
	}
}
