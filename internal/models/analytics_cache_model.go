package models

import "time"

// AnalyticsCache is one precomputed weekly metrics row, keyed by
// user + account + week start. Rows are upserted by the recompute worker
// and refreshed by the hourly cron job when stale.
type AnalyticsCache struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	AccountID       int64     `db:"account_id" json:"account_id"`
	WeekStart       time.Time `db:"week_start" json:"week_start"`
	TotalPosts      int       `db:"total_posts" json:"total_posts"`
	TotalLikes      int       `db:"total_likes" json:"total_likes"`
	TotalComments   int       `db:"total_comments" json:"total_comments"`
	TotalShares     int       `db:"total_shares" json:"total_shares"`
	TotalImpression int       `db:"total_impressions" json:"total_impressions"`
	AvgEngagement   float64   `db:"avg_engagement" json:"avg_engagement"`
	ComputedAt      time.Time `db:"computed_at" json:"computed_at"`
}
