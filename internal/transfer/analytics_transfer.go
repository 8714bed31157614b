package transfer

import "time"

type HashtagMetric struct {
	Tag             string  `json:"tag"`
	Uses            int     `json:"uses"`
	TotalEngagement int     `json:"total_engagement"`
	AvgLikes        float64 `json:"avg_likes"`
	Performance     string  `json:"performance"`
}

type HashtagRecommendation struct {
	Tag    string `json:"tag"`
	Reason string `json:"reason"`
}

type HashtagAnalysis struct {
	TopHashtags         []HashtagMetric         `json:"top_hashtags"`
	TotalUniqueHashtags int                     `json:"total_unique_hashtags"`
	TrendingThisMonth   []HashtagMetric         `json:"trending_this_month"`
	Recommendations     []HashtagRecommendation `json:"recommendations"`
	Timestamp           time.Time               `json:"timestamp"`
}

type PredictionFactor struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"`
	Tip    string `json:"tip"`
}

type EngagementPrediction struct {
	PredictedEngagement int                `json:"predicted_engagement"`
	ConfidenceScore     float64            `json:"confidence_score"`
	EngagementRating    string             `json:"engagement_rating"`
	Factors             []PredictionFactor `json:"factors"`
	PlatformBoost       string             `json:"platform_boost"`
	AIRecommendation    string             `json:"ai_recommendation"`
	Timestamp           time.Time          `json:"timestamp"`
}

type Demographics struct {
	PrimaryAge   string         `json:"primary_age"`
	GenderSplit  map[string]int `json:"gender_split"`
	TopLocations []string       `json:"top_locations"`
	Interests    []string       `json:"interests"`
}

type BehaviorPatterns struct {
	MostActiveDay      string `json:"most_active_day"`
	PeakEngagementTime string `json:"peak_engagement_time"`
	AvgSessionDuration string `json:"avg_session_duration"`
	FollowerGrowthRate string `json:"follower_growth_rate"`
}

type AudienceSentiment struct {
	Positive       int    `json:"positive"`
	Neutral        int    `json:"neutral"`
	Negative       int    `json:"negative"`
	SentimentTrend string `json:"sentiment_trend"`
}

type AudienceInsights struct {
	AudienceSize       string            `json:"audience_size"`
	EngagementRate     float64           `json:"engagement_rate"`
	Demographics       Demographics      `json:"demographics"`
	BehaviorPatterns   BehaviorPatterns  `json:"behavior_patterns"`
	AudienceSentiment  AudienceSentiment `json:"audience_sentiment"`
	ContentPreferences []string          `json:"content_preferences"`
	Timestamp          time.Time         `json:"timestamp"`
}

type CompetitorMetrics struct {
	AvgEngagement   float64 `json:"avg_engagement"`
	ContentFreq     string  `json:"content_frequency"`
	AvgPostLength   float64 `json:"avg_post_length"`
	HashtagStrategy string  `json:"hashtag_strategy"`
}

type IndustryBenchmarks struct {
	AvgEngagement    float64 `json:"avg_engagement"`
	AvgPostFrequency int     `json:"avg_post_frequency"`
	AvgPostLength    int     `json:"avg_post_length"`
	HashtagAvg       float64 `json:"hashtag_avg"`
}

type CompetitivePosition struct {
	EngagementRank      string `json:"engagement_rank"`
	PostingFrequency    string `json:"posting_frequency"`
	ContentQuality      string `json:"content_quality"`
	HashtagOptimization string `json:"hashtag_optimization"`
}

type CompetitorAnalysis struct {
	Industry            string              `json:"industry"`
	YourMetrics         CompetitorMetrics   `json:"your_metrics"`
	IndustryBenchmarks  IndustryBenchmarks  `json:"industry_benchmarks"`
	VsCompetition       CompetitivePosition `json:"vs_competition"`
	GrowthOpportunities []string            `json:"growth_opportunities"`
	Timestamp           time.Time           `json:"timestamp"`
}

type ScheduledPost struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	ContentType    string `json:"content_type"`
	Platform       string `json:"platform"`
	PredictedReach int    `json:"predicted_reach"`
	Status         string `json:"status"`
}

type RecommendedPost struct {
	Type    string `json:"type"`
	Topic   string `json:"topic"`
	BestDay string `json:"best_day"`
}

type ContentCalendar struct {
	ScheduledPosts       []ScheduledPost   `json:"scheduled_posts"`
	ContentThemes        []string          `json:"content_themes"`
	OptimizationTips     []string          `json:"optimization_tips"`
	NextRecommendedPosts []RecommendedPost `json:"next_recommended_posts"`
	Timestamp            time.Time         `json:"timestamp"`
}

type Anomaly struct {
	PostIndex  int    `json:"post_index"`
	Engagement int    `json:"engagement"`
	Type       string `json:"type"`
	Reason     string `json:"reason"`
	Analysis   string `json:"analysis"`
}

type AnomalyReport struct {
	TotalPosts        int       `json:"total_posts"`
	AverageEngagement float64   `json:"average_engagement"`
	AnomaliesDetected int       `json:"anomalies_detected"`
	Anomalies         []Anomaly `json:"anomalies"`
	Trend             string    `json:"trend"`
	Insights          []string  `json:"insights"`
	Timestamp         time.Time `json:"timestamp"`
}

type MonthForecast struct {
	Month              int     `json:"month"`
	ProjectedFollowers int     `json:"projected_followers"`
	ProjectedEngRate   float64 `json:"projected_engagement_rate"`
	ProjectedPosts     int     `json:"projected_posts"`
	Confidence         string  `json:"confidence"`
}

type GrowthForecast struct {
	CurrentFollowers     int             `json:"current_followers"`
	ForecastPeriodMonths int             `json:"forecast_period_months"`
	MonthlyForecast      []MonthForecast `json:"monthly_forecast"`
	GrowthRate           string          `json:"growth_rate"`
	GrowthDrivers        []string        `json:"growth_drivers"`
	RecommendationsFor   []string        `json:"recommendations_for_growth"`
	Timestamp            time.Time       `json:"timestamp"`
}

type PostingTime struct {
	Time   string `json:"time"`
	Reason string `json:"reason"`
}

type Recommendations struct {
	PostingTimes    []PostingTime       `json:"posting_times"`
	EngagementTips  []string            `json:"engagement_tips"`
	HashtagStrategy map[string][]string `json:"hashtag_strategy"`
	Timestamp       time.Time           `json:"timestamp"`
}

type AnalyticsSummary struct {
	Period        string    `json:"period"`
	TotalPosts    int       `json:"total_posts"`
	TotalLikes    int       `json:"total_likes"`
	TotalComments int       `json:"total_comments"`
	TotalShares   int       `json:"total_shares"`
	AvgEngagement float64   `json:"average_engagement"`
	Timestamp     time.Time `json:"timestamp"`
}

type UserStats struct {
	TotalAccounts     int       `json:"total_accounts"`
	TotalPosts        int       `json:"total_posts"`
	TotalLikes        int       `json:"total_likes"`
	TotalComments     int       `json:"total_comments"`
	TotalShares       int       `json:"total_shares"`
	TotalEngagement   int       `json:"total_engagement"`
	AvgPostEngagement float64   `json:"average_post_engagement"`
	Timestamp         time.Time `json:"timestamp"`
}

type SentimentResult struct {
	Sentiment  string  `json:"sentiment"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

type InsightsResponse struct {
	Insights   []string  `json:"insights"`
	TotalPosts int       `json:"total_posts"`
	Timestamp  time.Time `json:"timestamp"`
}
