package dashboard

// Tab identifies one dashboard view. The set is closed; anything outside it
// is rejected by ParseTab.
type Tab int

const (
	TabOverview Tab = iota
	TabPosts
	TabHashtags
	TabAudience
	TabCompetitor
	TabAnomalies
	TabForecast
	TabCalendar
	TabPredict
)

var tabNames = map[Tab]string{
	TabOverview:   "overview",
	TabPosts:      "posts",
	TabHashtags:   "hashtags",
	TabAudience:   "audience",
	TabCompetitor: "competitor",
	TabAnomalies:  "anomalies",
	TabForecast:   "forecast",
	TabCalendar:   "calendar",
	TabPredict:    "predict",
}

func (t Tab) String() string {
	if name, ok := tabNames[t]; ok {
		return name
	}
	return "unknown"
}

func ParseTab(name string) (Tab, bool) {
	for t, n := range tabNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{
		TabOverview, TabPosts, TabHashtags, TabAudience, TabCompetitor,
		TabAnomalies, TabForecast, TabCalendar, TabPredict,
	}
}

// panelEndpoint maps a tab to the analytics endpoint that backs its panel.
// Overview, posts and predict have no lazy-loaded panel: the first two are
// filled by the initial load and prediction only runs on explicit request.
func (t Tab) panelEndpoint() (string, bool) {
	switch t {
	case TabHashtags:
		return "/api/analytics/hashtags", true
	case TabAudience:
		return "/api/analytics/audience-insights", true
	case TabCompetitor:
		return "/api/analytics/competitor-analysis", true
	case TabAnomalies:
		return "/api/analytics/anomalies", true
	case TabForecast:
		return "/api/analytics/forecast?months=3", true
	case TabCalendar:
		return "/api/analytics/content-calendar", true
	default:
		return "", false
	}
}
