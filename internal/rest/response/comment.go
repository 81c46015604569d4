package response

import "github.com/conduit-labs/conduit/domain"

type Comment struct {
	ID        int64   `json:"id"`
	Body      string  `json:"body"`
	CreatedAt string  `json:"createdAt"`
	Author    Profile `json:"author"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(v *domain.CommentView) Comment {
	return Comment{
		ID:        v.Comment.ID,
		Body:      v.Comment.Body,
		CreatedAt: v.Comment.CreatedAt.Format(DateTimeFormat),
		Author:    NewProfileFromDomain(v.Author),
	}
}
