package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"socialpulse/internal/models"
)

type AnalyticsCacheRepository interface {
	Upsert(ctx context.Context, row *models.AnalyticsCache) error
	ListByUserID(ctx context.Context, userID int64) ([]*models.AnalyticsCache, error)
	ListStale(ctx context.Context, olderThan time.Time) ([]*models.AnalyticsCache, error)
	RemoveByAccountID(ctx context.Context, accountID int64) error
}

type analyticsCacheRepository struct {
	db *sql.DB
}

func NewAnalyticsCacheRepository(db *sql.DB) AnalyticsCacheRepository {
	return &analyticsCacheRepository{db: db}
}

func (r *analyticsCacheRepository) Upsert(ctx context.Context, row *models.AnalyticsCache) error {
	query := `
		INSERT INTO analytics_cache (user_id, account_id, week_start, total_posts, total_likes, total_comments, total_shares, total_impressions, avg_engagement, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, account_id, week_start)
		DO UPDATE SET
			total_posts = EXCLUDED.total_posts,
			total_likes = EXCLUDED.total_likes,
			total_comments = EXCLUDED.total_comments,
			total_shares = EXCLUDED.total_shares,
			total_impressions = EXCLUDED.total_impressions,
			avg_engagement = EXCLUDED.avg_engagement,
			computed_at = CURRENT_TIMESTAMP
	`
	_, err := r.db.ExecContext(ctx, query, row.UserID, row.AccountID, row.WeekStart, row.TotalPosts,
		row.TotalLikes, row.TotalComments, row.TotalShares, row.TotalImpression, row.AvgEngagement)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *analyticsCacheRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.AnalyticsCache, error) {
	query := `SELECT id, user_id, account_id, week_start, total_posts, total_likes, total_comments, total_shares, total_impressions, avg_engagement, computed_at
		FROM analytics_cache WHERE user_id = $1 ORDER BY week_start DESC`
	return r.list(ctx, query, userID)
}

func (r *analyticsCacheRepository) ListStale(ctx context.Context, olderThan time.Time) ([]*models.AnalyticsCache, error) {
	query := `SELECT id, user_id, account_id, week_start, total_posts, total_likes, total_comments, total_shares, total_impressions, avg_engagement, computed_at
		FROM analytics_cache WHERE computed_at < $1`
	return r.list(ctx, query, olderThan)
}

func (r *analyticsCacheRepository) RemoveByAccountID(ctx context.Context, accountID int64) error {
	query := `DELETE FROM analytics_cache WHERE account_id = $1`
	_, err := r.db.ExecContext(ctx, query, accountID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *analyticsCacheRepository) list(ctx context.Context, query string, arg any) ([]*models.AnalyticsCache, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var result []*models.AnalyticsCache
	for rows.Next() {
		var c models.AnalyticsCache
		err := rows.Scan(&c.ID, &c.UserID, &c.AccountID, &c.WeekStart, &c.TotalPosts, &c.TotalLikes,
			&c.TotalComments, &c.TotalShares, &c.TotalImpression, &c.AvgEngagement, &c.ComputedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		result = append(result, &c)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return result, nil
}
