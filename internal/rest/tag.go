package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conduit-labs/conduit/domain"
)

// TagHandler represent the httphandler for tags
type TagHandler struct {
	Service domain.ArticleUsecase
}

func NewTagHandler(svc domain.ArticleUsecase) *TagHandler {
	return &TagHandler{
		Service: svc,
	}
}

// List returns every tag in use across articles
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.Service.Tags(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
