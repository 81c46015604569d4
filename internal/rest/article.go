package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/rest/middleware"
	"github.com/conduit-labs/conduit/internal/rest/request"
	"github.com/conduit-labs/conduit/internal/rest/response"
)

// ArticleHandler  represent the httphandler for article
type ArticleHandler struct {
	Service domain.ArticleUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service: svc,
	}
}

// List will fetch articles based on the given query params
func (h *ArticleHandler) List(c *gin.Context) {
	filter := domain.ListArticlesFilter{
		Tag:         c.Query("tag"),
		Author:      c.Query("author"),
		FavoritedBy: c.Query("favorited"),
		Limit:       parseIntOr(c.Query("limit"), 20),
		Offset:      parseIntOr(c.Query("offset"), 0),
	}
	viewerID := middleware.ViewerID(c)

	views, total, err := h.Service.List(c.Request.Context(), filter, viewerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":      toArticleResponses(views),
		"articlesCount": total,
	})
}

// Feed lists articles authored by the users the caller follows
func (h *ArticleHandler) Feed(c *gin.Context) {
	limit := parseIntOr(c.Query("limit"), 20)
	offset := parseIntOr(c.Query("offset"), 0)
	userID := middleware.ViewerID(c)

	views, total, err := h.Service.Feed(c.Request.Context(), userID, limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":      toArticleResponses(views),
		"articlesCount": total,
	})
}

// GetBySlug will get article by given slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	viewerID := middleware.ViewerID(c)

	view, err := h.Service.GetBySlug(c.Request.Context(), slug, viewerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": response.NewArticleFromDomain(&view)})
}

// Store will store the article by given request body
func (h *ArticleHandler) Store(c *gin.Context) {
	var req request.CreateArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	userID := middleware.ViewerID(c)
	view, err := h.Service.Create(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": response.NewArticleFromDomain(&view)})
}

// Update will update the article owned by the caller
func (h *ArticleHandler) Update(c *gin.Context) {
	var req request.UpdateArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	slug := c.Param("slug")
	userID := middleware.ViewerID(c)
	view, err := h.Service.Update(c.Request.Context(), slug, userID, req.ToDomain())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": response.NewArticleFromDomain(&view)})
}

// Delete will delete the article owned by the caller
func (h *ArticleHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")
	userID := middleware.ViewerID(c)

	if err := h.Service.Delete(c.Request.Context(), slug, userID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Favorite adds the article to the caller's favorites
func (h *ArticleHandler) Favorite(c *gin.Context) {
	slug := c.Param("slug")
	userID := middleware.ViewerID(c)

	view, err := h.Service.Favorite(c.Request.Context(), slug, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": response.NewArticleFromDomain(&view)})
}

// Unfavorite removes the article from the caller's favorites
func (h *ArticleHandler) Unfavorite(c *gin.Context) {
	slug := c.Param("slug")
	userID := middleware.ViewerID(c)

	view, err := h.Service.Unfavorite(c.Request.Context(), slug, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": response.NewArticleFromDomain(&view)})
}

func toArticleResponses(views []domain.ArticleView) []response.Article {
	res := make([]response.Article, len(views))
	for i := range views {
		res[i] = response.NewArticleFromDomain(&views[i])
	}
	return res
}

// parseIntOr parses the given query value, falling back to def on
// anything non-numeric. Negative values are clamped downstream.
func parseIntOr(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
