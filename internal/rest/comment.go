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

// CommentHandler represent the httphandler for comments
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// Store will store the comment under the article named by slug
func (h *CommentHandler) Store(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	slug := c.Param("slug")
	userID := middleware.ViewerID(c)

	view, err := h.Service.Create(c.Request.Context(), slug, userID, req.Comment.Body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": response.NewCommentFromDomain(&view)})
}

// FetchByArticle lists the comments of the article named by slug
func (h *CommentHandler) FetchByArticle(c *gin.Context) {
	slug := c.Param("slug")
	viewerID := middleware.ViewerID(c)

	views, err := h.Service.FetchByArticle(c.Request.Context(), slug, viewerID)
	if err != nil {
		writeError(c, err)
		return
	}

	res := make([]response.Comment, len(views))
	for i := range views {
		res[i] = response.NewCommentFromDomain(&views[i])
	}

	c.JSON(http.StatusOK, gin.H{"comments": res})
}

// Delete removes the caller's comment from the article named by slug
func (h *CommentHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, domain.ErrNotFound)
		return
	}
	userID := middleware.ViewerID(c)

	if err := h.Service.Delete(c.Request.Context(), slug, commentID, userID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
