package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreSentiment(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantSentiment string
		wantScore     float64
	}{
		{"positive", "What a great and amazing day", "positive", 0.9},
		{"negative", "This is terrible and awful", "negative", 0.1},
		{"neutral", "Posting a regular update", "neutral", 0.5},
		{"mixed cancels out", "good but bad", "neutral", 0.5},
		{"score capped at one", "good great excellent love amazing awesome fantastic", "positive", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentiment, score, confidence := ScoreSentiment(tt.content)
			assert.Equal(t, tt.wantSentiment, sentiment)
			assert.InDelta(t, tt.wantScore, score, 0.001)
			assert.Equal(t, 0.85, confidence)
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("The quick brown fox jumps over the lazy dog!", 5)
	assert.Equal(t, []string{"quick", "brown", "jumps", "over", "lazy"}, got)
}

func TestExtractKeywordsSkipsShortAndStopWords(t *testing.T) {
	got := ExtractKeywords("this is my new app for the web", 5)
	assert.NotContains(t, got, "this")
	assert.NotContains(t, got, "is")
	assert.NotContains(t, got, "my")
	assert.NotContains(t, got, "new")
	assert.NotContains(t, got, "app")
}

func TestExtractKeywordsDeduplicates(t *testing.T) {
	got := ExtractKeywords("golang golang golang tips", 5)
	assert.Equal(t, []string{"golang", "tips"}, got)
}

func TestExtractHashtags(t *testing.T) {
	got := ExtractHashtags("Launch day! #GoLang #backend no #")
	assert.Equal(t, []string{"#golang", "#backend"}, got)
}

func TestExtractHashtagsEmpty(t *testing.T) {
	assert.Empty(t, ExtractHashtags("nothing tagged here"))
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"wednesday",
			time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday keeps its date",
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday rolls back to previous monday",
			time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, round2(1.2345))
	assert.Equal(t, 1.24, round2(1.236))
	assert.Equal(t, -1.23, round2(-1.2345))
	assert.Equal(t, 0.0, round2(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.1, clamp(0.05, 0.1, 0.95))
	assert.Equal(t, 0.95, clamp(1.2, 0.1, 0.95))
	assert.Equal(t, 0.5, clamp(0.5, 0.1, 0.95))
}
