package models

import "time"

type Post struct {
	ID             int64     `db:"id" json:"id"`
	UserID         int64     `db:"user_id" json:"user_id"`
	AccountID      int64     `db:"account_id" json:"account_id"`
	Content        string    `db:"content" json:"content"`
	PostDate       time.Time `db:"post_date" json:"post_date"`
	Likes          int       `db:"likes" json:"likes"`
	Comments       int       `db:"comments" json:"comments"`
	Shares         int       `db:"shares" json:"shares"`
	Impressions    int       `db:"impressions" json:"impressions"`
	FollowersGain  int       `db:"followers_gained" json:"followers_gained"`
	FollowersLost  int       `db:"followers_lost" json:"followers_lost"`
	Sentiment      string    `db:"sentiment" json:"sentiment"`
	AIScore        float64   `db:"ai_score" json:"ai_score"`
	Keywords       string    `db:"keywords" json:"keywords"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Engagement is the metric every analytics feature aggregates over.
func (p *Post) Engagement() int {
	return p.Likes + p.Comments + p.Shares
}
