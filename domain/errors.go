package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the actor is not the owner of the resource
	ErrForbidden = errors.New("you are not allowed to perform this action")
	// ErrUnauthorized will throw if the credential is missing, invalid or expired
	ErrUnauthorized = errors.New("missing or invalid credentials")
	// ErrCacheMiss will throw if the requested key is not in the cache
	ErrCacheMiss = errors.New("cache miss")
)

// ValidationError carries per-field messages for unprocessable payloads.
// Surfaced to the caller as a 422 with a structured "errors" object.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for field, msg := range e.Fields {
		return field + " " + msg
	}
	return "validation failed"
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}
