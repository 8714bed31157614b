package service

import (
	"math"
	"strings"
	"time"
)

var positiveWords = []string{"good", "great", "excellent", "love", "amazing", "awesome", "fantastic"}
var negativeWords = []string{"bad", "terrible", "awful", "hate", "horrible", "poor", "worst"}

// ScoreSentiment classifies content with the word-list heuristic: positive
// and negative hits shift the score away from a neutral 0.5.
func ScoreSentiment(content string) (sentiment string, score float64, confidence float64) {
	lower := strings.ToLower(content)

	var pos, neg int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	switch {
	case pos > neg:
		sentiment = "positive"
		score = 0.7 + float64(pos)*0.1
	case neg > pos:
		sentiment = "negative"
		score = 0.3 - float64(neg)*0.1
	default:
		sentiment = "neutral"
		score = 0.5
	}

	return sentiment, clamp(score, 0.0, 1.0), 0.85
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"is": true, "are": true, "was": true, "to": true, "of": true, "in": true,
	"on": true, "for": true, "with": true, "at": true, "by": true, "this": true,
	"that": true, "it": true, "my": true, "your": true, "our": true,
}

// ExtractKeywords picks up to limit distinct non-stopword tokens longer than
// three characters, in order of appearance.
func ExtractKeywords(content string, limit int) []string {
	seen := map[string]bool{}
	var keywords []string

	for _, word := range strings.Fields(strings.ToLower(content)) {
		word = strings.Trim(word, ".,!?;:\"'()")
		if len(word) <= 3 || stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == limit {
			break
		}
	}
	return keywords
}

// ExtractHashtags returns the #-prefixed tokens of content, lowercased.
func ExtractHashtags(content string) []string {
	var tags []string
	for _, word := range strings.Fields(strings.ToLower(content)) {
		if strings.HasPrefix(word, "#") && len(word) > 1 {
			tags = append(tags, word)
		}
	}
	return tags
}

// WeekStart truncates t to the Monday of its week, in UTC.
func WeekStart(t time.Time) time.Time {
	t = t.UTC().Truncate(24 * time.Hour)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, 1-weekday)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
