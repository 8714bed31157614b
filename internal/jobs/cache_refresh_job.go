package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"socialpulse/internal/repository"
	"socialpulse/internal/service"
)

// CacheRefreshJob re-derives weekly analytics rows whose computed_at has
// gone stale, so dashboard reads stay warm without recomputing on request.
type CacheRefreshJob struct {
	ac repository.AnalyticsCacheRepository
	cs service.CacheService
}

func NewCacheRefreshJob(ac repository.AnalyticsCacheRepository, cs service.CacheService) *CacheRefreshJob {
	return &CacheRefreshJob{
		ac: ac,
		cs: cs,
	}
}

const staleAfter = 30 * time.Minute

func (c *CacheRefreshJob) RefreshStale() {
	ctx := context.Background()

	rows, err := c.ac.ListStale(ctx, time.Now().Add(-staleAfter))
	if err != nil {
		slog.Info(err.Error())
		return
	}

	// One recompute covers every row of a user; dedupe before fanning out.
	userIDs := map[int64]bool{}
	for _, row := range rows {
		userIDs[row.UserID] = true
	}

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for userID := range userIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(userID int64) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := c.cs.Recompute(ctx, userID); err != nil {
				slog.Info("Unable to refresh analytics cache")
			}
		}(userID)
	}

	wg.Wait()
}
