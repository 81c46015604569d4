package request

import "github.com/conduit-labs/conduit/domain"

// Register is the envelope for POST /api/users.
type Register struct {
	User struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

// ToDomain: Request -> Domain
func (r *Register) ToDomain() domain.RegisterInput {
	return domain.RegisterInput{
		Username: r.User.Username,
		Email:    r.User.Email,
		Password: r.User.Password,
	}
}

// Login is the envelope for POST /api/users/login.
type Login struct {
	User struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

// UpdateUser is the envelope for PUT /api/user.
// Pointer fields distinguish "absent" from "set to empty".
type UpdateUser struct {
	User struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Bio      *string `json:"bio"`
		Image    *string `json:"image"`
		Password *string `json:"password"`
	} `json:"user"`
}

func (r *UpdateUser) ToDomain() domain.UpdateUserInput {
	return domain.UpdateUserInput{
		Username: r.User.Username,
		Email:    r.User.Email,
		Bio:      r.User.Bio,
		Image:    r.User.Image,
		Password: r.User.Password,
	}
}
