package dashboard

// View models for the data the dashboard renders. These mirror the server's
// response shapes but stay decoupled from its internal types.

type Account struct {
	ID          int64  `json:"id"`
	Platform    string `json:"platform"`
	AccountName string `json:"account_name"`
}

type Post struct {
	ID              int64   `json:"id"`
	AccountID       int64   `json:"account_id"`
	Content         string  `json:"content"`
	PostDate        string  `json:"post_date"`
	Likes           int     `json:"likes"`
	Comments        int     `json:"comments"`
	Shares          int     `json:"shares"`
	Impressions     int     `json:"impressions"`
	FollowersGained int     `json:"followers_gained"`
	FollowersLost   int     `json:"followers_lost"`
	Sentiment       string  `json:"sentiment"`
	AIScore         float64 `json:"ai_score"`
	Keywords        string  `json:"keywords"`
}

// Prediction is the latest engagement prediction; only one is retained.
type Prediction struct {
	PredictedEngagement int                `json:"predicted_engagement"`
	ConfidenceScore     float64            `json:"confidence_score"`
	AIRecommendation    string             `json:"ai_recommendation"`
	Factors             []PredictionFactor `json:"factors"`
}

type PredictionFactor struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"`
	Tip    string `json:"tip"`
}
