package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/conduit-labs/conduit/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// getStatusCode will get the status code for the given domain error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if _, ok := domain.AsValidationError(err); ok {
		return http.StatusUnprocessableEntity
	}

	switch err {
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrUnauthorized:
		return http.StatusUnauthorized
	case domain.ErrForbidden:
		return http.StatusForbidden
	case domain.ErrConflict, domain.ErrBadParamInput:
		return http.StatusUnprocessableEntity
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}

// writeError renders a domain error: validation errors carry the
// structured {"errors": {...}} body, everything else a plain message.
func writeError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if verr, ok := domain.AsValidationError(err); ok {
		c.JSON(code, gin.H{"errors": verr.Fields})
		return
	}
	c.JSON(code, ResponseError{Message: err.Error()})
}

// writeBindError renders an unparseable request body as a 422.
func writeBindError(c *gin.Context) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"body": "unable to parse request"}})
}
