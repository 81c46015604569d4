package domain

import "context"

// FavoritesRecountWorker reconciles denormalized favorite counts in the
// background. The synchronous recount after each favorite/unfavorite is the
// primary mechanism; this worker retries articles whose recount failed and
// periodically sweeps the whole table so the counts converge after races.
type FavoritesRecountWorker interface {
	Start(ctx context.Context)

	// Send queues an article for an out-of-band recount.
	Send(articleID int64)
}
