package request

// Comment is the envelope for POST /api/articles/:slug/comments.
type Comment struct {
	Comment struct {
		Body string `json:"body"`
	} `json:"comment"`
}
