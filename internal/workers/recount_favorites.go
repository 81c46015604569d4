package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/conduit-labs/conduit/domain"
)

const (
	flushInterval = 5 * time.Second
	sweepInterval = 10 * time.Minute
	batchSize     = 100
)

type recountFavoritesWorker struct {
	ArticleRepo domain.ArticleDBRepository
	ch          chan int64
}

var _ domain.FavoritesRecountWorker = (*recountFavoritesWorker)(nil)

func NewRecountFavoritesWorker(ar domain.ArticleDBRepository) *recountFavoritesWorker {
	return &recountFavoritesWorker{
		ArticleRepo: ar,
		ch:          make(chan int64, 1024),
	}
}

// Send queues an article for an out-of-band favorites recount.
func (w recountFavoritesWorker) Send(articleID int64) {
	select {
	case w.ch <- articleID:
	default:
		logrus.Info("RecountFavoritesWorker's channel is full, task dropped")
	}
}

func (w recountFavoritesWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	sweeper := time.NewTicker(sweepInterval)
	defer sweeper.Stop()

	batch := make([]int64, 0, batchSize)
	for {
		select {
		case id := <-w.ch:
			batch = append(batch, id)
			if len(batch) == batchSize {
				w.flush(ctx, batch)
				batch = make([]int64, 0, batchSize)
			}
		case <-ticker.C:
			w.flush(ctx, batch)
			batch = make([]int64, 0, batchSize)
		case <-sweeper.C:
			// full reconciliation so counts converge after lost races
			if err := w.ArticleRepo.RecountAllFavorites(ctx); err != nil {
				logrus.Errorf("favorites sweep failed: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("shutting down RecountFavoritesWorker, flushing remaining tasks...")
			w.flush(context.Background(), batch)
			return
		}
	}
}

func (w recountFavoritesWorker) flush(ctx context.Context, batch []int64) {
	if len(batch) == 0 {
		return
	}
	seen := make(map[int64]bool, len(batch))
	for _, id := range batch {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, err := w.ArticleRepo.RecountFavorites(ctx, id); err != nil {
			logrus.Errorf("failed to recount favorites for article %d: %v", id, err)
		}
	}
}
