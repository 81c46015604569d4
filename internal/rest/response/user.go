package response

import (
	"time"

	"github.com/conduit-labs/conduit/domain"
)

// DateTimeFormat is the wire format for timestamps.
const DateTimeFormat = time.RFC3339

// User is the auth response payload, wrapped as {"user": ...}.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token"`
}

// NewUserFromDomain: Domain -> Response
func NewUserFromDomain(u *domain.User, token string) User {
	return User{
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		Image:    u.Image,
		Token:    token,
	}
}
