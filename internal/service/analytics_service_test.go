package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialpulse/internal/models"
)

func TestPredictEngagementFactors(t *testing.T) {
	svc := NewAnalyticsService(&fakePostRepo{}, &fakeAccountRepo{})

	// 120 chars, one emoji, a question and four hashtags hits every factor.
	content := "Want to grow your audience fast? 🚀 " +
		strings.Repeat("x", 50) +
		" #growth #social #media #tips"
	require.GreaterOrEqual(t, len(content), 100)
	require.LessOrEqual(t, len(content), 150)

	pred, err := svc.PredictEngagement(content, "instagram")
	require.NoError(t, err)

	factors := make([]string, 0, len(pred.Factors))
	for _, f := range pred.Factors {
		factors = append(factors, f.Factor)
	}
	assert.ElementsMatch(t, []string{"Content Length", "Emojis", "Call-to-Action", "Hashtags"}, factors)

	// score 0.5 + 0.2 + 0.15 + 0.1 + 0.15 = 1.1, clamped to 0.95, times 1000.
	assert.Equal(t, 950, pred.PredictedEngagement)
	assert.Equal(t, 1.0, pred.ConfidenceScore)
	assert.Equal(t, "High", pred.EngagementRating)
	assert.Equal(t, "20%", pred.PlatformBoost)
}

func TestPredictEngagementBaseline(t *testing.T) {
	svc := NewAnalyticsService(&fakePostRepo{}, &fakeAccountRepo{})

	pred, err := svc.PredictEngagement("plain short text", "twitter")
	require.NoError(t, err)

	assert.Empty(t, pred.Factors)
	// 0.5 * 0.9 = 0.45, times 1000.
	assert.Equal(t, 450, pred.PredictedEngagement)
	assert.Equal(t, "Average", pred.EngagementRating)
	assert.Equal(t, "Standard", pred.PlatformBoost)
}

func TestPredictEngagementUnknownPlatform(t *testing.T) {
	svc := NewAnalyticsService(&fakePostRepo{}, &fakeAccountRepo{})

	pred, err := svc.PredictEngagement("plain short text", "myspace")
	require.NoError(t, err)
	assert.Equal(t, 500, pred.PredictedEngagement)
}

func TestPredictEngagementRequiresContent(t *testing.T) {
	svc := NewAnalyticsService(&fakePostRepo{}, &fakeAccountRepo{})

	_, err := svc.PredictEngagement("   ", "instagram")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestHashtagsRanksByEngagement(t *testing.T) {
	posts := &fakePostRepo{posts: []*models.Post{
		testPost(1, 1, 200, 10, 5, "big launch #viral"),
		testPost(2, 1, 10, 2, 0, "quiet day #viral #niche"),
		testPost(3, 1, 5, 0, 0, "small one #niche"),
	}}
	svc := NewAnalyticsService(posts, &fakeAccountRepo{})

	analysis, err := svc.Hashtags(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, analysis.TopHashtags, 2)
	assert.Equal(t, 2, analysis.TotalUniqueHashtags)

	top := analysis.TopHashtags[0]
	assert.Equal(t, "#viral", top.Tag)
	assert.Equal(t, 2, top.Uses)
	assert.Equal(t, 227, top.TotalEngagement)
	assert.Equal(t, 113.5, top.AvgLikes)
	assert.Equal(t, "excellent", top.Performance)

	second := analysis.TopHashtags[1]
	assert.Equal(t, "#niche", second.Tag)
	assert.Equal(t, "poor", second.Performance)
}

func TestAnomaliesDetectsSpikesAndDips(t *testing.T) {
	posts := &fakePostRepo{posts: []*models.Post{
		testPost(1, 1, 100, 0, 0, "normal"),
		testPost(2, 1, 100, 0, 0, "normal"),
		testPost(3, 1, 500, 0, 0, "viral"),
		testPost(4, 1, 10, 0, 0, "flop"),
	}}
	svc := NewAnalyticsService(posts, &fakeAccountRepo{})

	report, err := svc.Anomalies(context.Background(), 1)
	require.NoError(t, err)

	// avg = 710/4 = 177.5; 500 > 2x avg, 10 < 0.3x avg.
	assert.Equal(t, 4, report.TotalPosts)
	assert.Equal(t, 177.5, report.AverageEngagement)
	assert.Equal(t, 2, report.AnomaliesDetected)

	require.Len(t, report.Anomalies, 2)
	assert.Equal(t, 2, report.Anomalies[0].PostIndex)
	assert.Contains(t, report.Anomalies[0].Type, "Spike")
	assert.Equal(t, 3, report.Anomalies[1].PostIndex)
	assert.Contains(t, report.Anomalies[1].Type, "Dip")
}

func TestAnomaliesEmptyPosts(t *testing.T) {
	svc := NewAnalyticsService(&fakePostRepo{}, &fakeAccountRepo{})

	report, err := svc.Anomalies(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalPosts)
	assert.Equal(t, 0.0, report.AverageEngagement)
	assert.Empty(t, report.Anomalies)
}

func TestForecastCompoundGrowth(t *testing.T) {
	accounts := &fakeAccountRepo{accounts: []*models.SocialAccount{
		{ID: 1, UserID: 1, Platform: "instagram"},
		{ID: 2, UserID: 1, Platform: "tiktok"},
	}}
	svc := NewAnalyticsService(&fakePostRepo{}, accounts)

	forecast, err := svc.Forecast(context.Background(), 1, 3)
	require.NoError(t, err)

	assert.Equal(t, 2000, forecast.CurrentFollowers)
	assert.Equal(t, 3, forecast.ForecastPeriodMonths)
	require.Len(t, forecast.MonthlyForecast, 3)

	assert.InDelta(t, 2300, forecast.MonthlyForecast[0].ProjectedFollowers, 1)
	assert.InDelta(t, 2645, forecast.MonthlyForecast[1].ProjectedFollowers, 1)
	assert.Equal(t, "High", forecast.MonthlyForecast[0].Confidence)
	assert.Equal(t, "Medium", forecast.MonthlyForecast[2].Confidence)
	assert.Equal(t, "15%", forecast.GrowthRate)
}

func TestForecastClampsMonths(t *testing.T) {
	svc := NewAnalyticsService(&fakePostRepo{}, &fakeAccountRepo{})

	forecast, err := svc.Forecast(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, forecast.ForecastPeriodMonths)

	forecast, err = svc.Forecast(context.Background(), 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 12, forecast.ForecastPeriodMonths)
}

func TestAudienceInsightsEngagementRate(t *testing.T) {
	posts := &fakePostRepo{posts: []*models.Post{
		testPost(1, 1, 10, 5, 5, "a"),
		testPost(2, 1, 20, 5, 5, "b"),
	}}
	accounts := &fakeAccountRepo{accounts: []*models.SocialAccount{
		{ID: 1, UserID: 1, Platform: "instagram"},
	}}
	svc := NewAnalyticsService(posts, accounts)

	insights, err := svc.AudienceInsights(context.Background(), 1)
	require.NoError(t, err)

	// (20 + 30) / 2 posts * 100 = 2500.
	assert.Equal(t, 2500.0, insights.EngagementRate)
	assert.Equal(t, "Growing - Add more hashtags", insights.AudienceSize)
}

func TestCompetitorAnalysisDefaultsIndustry(t *testing.T) {
	svc := NewAnalyticsService(&fakePostRepo{}, &fakeAccountRepo{})

	analysis, err := svc.CompetitorAnalysis(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Equal(t, "technology", analysis.Industry)
	assert.Equal(t, "Top 50%", analysis.VsCompetition.EngagementRank)
}

func TestCountEmoji(t *testing.T) {
	assert.Equal(t, 0, countEmoji("no emoji here"))
	assert.Equal(t, 2, countEmoji("hi 🚀🎉"))
}
