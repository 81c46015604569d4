package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/rest/middleware"
	"github.com/conduit-labs/conduit/internal/rest/request"
	"github.com/conduit-labs/conduit/internal/rest/response"
)

// UserHandler represent the httphandler for users
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Register will create a new account from the given request body
func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	user, token, err := h.Service.Register(c.Request.Context(), req.ToDomain())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": response.NewUserFromDomain(&user, token)})
}

// Login verifies credentials and returns a fresh token
func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	user, token, err := h.Service.Login(c.Request.Context(), req.User.Email, req.User.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": response.NewUserFromDomain(&user, token)})
}

// Current returns the authenticated user
func (h *UserHandler) Current(c *gin.Context) {
	userID := middleware.ViewerID(c)

	user, err := h.Service.Get(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrNotFound {
			// token subject no longer exists
			c.Status(http.StatusUnauthorized)
			return
		}
		writeError(c, err)
		return
	}

	token := extractCurrentToken(c)
	c.JSON(http.StatusOK, gin.H{"user": response.NewUserFromDomain(&user, token)})
}

// Update applies the fields present in the request to the authenticated user
func (h *UserHandler) Update(c *gin.Context) {
	var req request.UpdateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	userID := middleware.ViewerID(c)
	user, err := h.Service.Update(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		writeError(c, err)
		return
	}

	token := extractCurrentToken(c)
	c.JSON(http.StatusOK, gin.H{"user": response.NewUserFromDomain(&user, token)})
}

// extractCurrentToken echoes back the credential the caller presented.
func extractCurrentToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	for _, scheme := range []string{"Token ", "Bearer "} {
		if len(header) > len(scheme) && header[:len(scheme)] == scheme {
			return header[len(scheme):]
		}
	}
	return ""
}
