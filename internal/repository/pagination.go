package repository

const (
	// DefaultLimit is applied when a listing request carries no usable limit.
	DefaultLimit = 20
	// DefaultOffset is applied when a listing request carries no usable offset.
	DefaultOffset = 0
	// MaxLimit caps a single page.
	MaxLimit = 100
)

// ClampPage normalizes limit/offset in place: absent, negative or
// non-numeric values fall back to the defaults instead of failing.
func ClampPage(limit, offset *int) {
	if *limit <= 0 || *limit > MaxLimit {
		*limit = DefaultLimit
	}
	if *offset < 0 {
		*offset = DefaultOffset
	}
}
