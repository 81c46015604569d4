package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/rest/middleware"
	"github.com/conduit-labs/conduit/internal/rest/response"
)

// ProfileHandler represent the httphandler for profiles
type ProfileHandler struct {
	Service domain.UserUsecase
}

func NewProfileHandler(svc domain.UserUsecase) *ProfileHandler {
	return &ProfileHandler{
		Service: svc,
	}
}

// Get projects the named user for the caller (anonymous or not)
func (h *ProfileHandler) Get(c *gin.Context) {
	username := c.Param("username")
	viewerID := middleware.ViewerID(c)

	profile, err := h.Service.Profile(c.Request.Context(), username, viewerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": response.NewProfileFromDomain(profile)})
}

// Follow subscribes the caller to the named user's content
func (h *ProfileHandler) Follow(c *gin.Context) {
	username := c.Param("username")
	userID := middleware.ViewerID(c)

	profile, err := h.Service.Follow(c.Request.Context(), userID, username)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": response.NewProfileFromDomain(profile)})
}

// Unfollow removes the subscription
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	userID := middleware.ViewerID(c)

	profile, err := h.Service.Unfollow(c.Request.Context(), userID, username)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": response.NewProfileFromDomain(profile)})
}
