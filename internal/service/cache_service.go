package service

import (
	"context"
	"log/slog"
	"time"

	"socialpulse/internal/models"
	"socialpulse/internal/repository"
)

// CacheService maintains the weekly analytics_cache rows the dashboard's
// accounts endpoint and the cron refresher read from.
type CacheService interface {
	Recompute(ctx context.Context, userID int64) error
}

type cacheService struct {
	pr repository.PostRepository
	ac repository.AnalyticsCacheRepository
}

func NewCacheService(pr repository.PostRepository, ac repository.AnalyticsCacheRepository) CacheService {
	return &cacheService{pr: pr, ac: ac}
}

type weekKey struct {
	accountID int64
	weekStart time.Time
}

func (s *cacheService) Recompute(ctx context.Context, userID int64) error {
	posts, err := s.pr.ListAllByUserID(ctx, userID)
	if err != nil {
		return err
	}

	buckets := map[weekKey][]*models.Post{}
	for _, p := range posts {
		key := weekKey{accountID: p.AccountID, weekStart: WeekStart(p.PostDate)}
		buckets[key] = append(buckets[key], p)
	}

	for key, weekPosts := range buckets {
		row := &models.AnalyticsCache{
			UserID:     userID,
			AccountID:  key.accountID,
			WeekStart:  key.weekStart,
			TotalPosts: len(weekPosts),
		}
		for _, p := range weekPosts {
			row.TotalLikes += p.Likes
			row.TotalComments += p.Comments
			row.TotalShares += p.Shares
			row.TotalImpression += p.Impressions
		}
		row.AvgEngagement = round2(float64(row.TotalLikes+row.TotalComments+row.TotalShares) / float64(len(weekPosts)))

		if err := s.ac.Upsert(ctx, row); err != nil {
			slog.Info(err.Error())
			return err
		}
	}
	return nil
}
