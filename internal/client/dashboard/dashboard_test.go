package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialpulse/internal/client/api"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

// testBackend serves canned responses per path and counts every request.
type testBackend struct {
	mux    *http.ServeMux
	counts map[string]int
	srv    *httptest.Server
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	b := &testBackend{
		mux:    http.NewServeMux(),
		counts: make(map[string]int),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.counts[r.URL.Path]++
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *testBackend) respond(path string, status int, body string) {
	b.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func (b *testBackend) total() int {
	n := 0
	for _, c := range b.counts {
		n += c
	}
	return n
}

func (b *testBackend) dashboard() *Dashboard {
	return New(api.NewClient(b.srv.URL, staticToken("t1")))
}

func (b *testBackend) respondCore() {
	b.respond("/api/accounts", 200, `{"accounts":[{"id":1,"platform":"instagram","account_name":"main"}],"timestamp":"2026-08-28T10:00:00Z"}`)
	b.respond("/api/posts", 200, `{"posts":[{"id":10,"content":"hello","likes":5}],"total":1,"limit":50,"offset":0}`)
	b.respond("/api/insights", 200, `{"insights":["Best posting time: 6-9 PM"],"total_posts":1,"timestamp":"2026-08-28T10:00:00Z"}`)
}

func TestLoadInitialPopulatesAll(t *testing.T) {
	backend := newTestBackend(t)
	backend.respondCore()

	d := backend.dashboard()
	d.LoadInitial(context.Background())

	require.Len(t, d.Accounts(), 1)
	assert.Equal(t, "instagram", d.Accounts()[0].Platform)
	require.Len(t, d.Posts(), 1)
	assert.Equal(t, 5, d.Posts()[0].Likes)
	require.Len(t, d.Insights(), 1)
}

func TestLoadInitialIsolatesFailures(t *testing.T) {
	backend := newTestBackend(t)
	backend.respond("/api/accounts", 200, `{"accounts":[{"id":1,"platform":"twitter","account_name":"x"}]}`)
	backend.respond("/api/posts", 500, `{"error":"Internal server error"}`)
	backend.respond("/api/insights", 200, `{"insights":["a","b"]}`)

	d := backend.dashboard()
	d.LoadInitial(context.Background())

	assert.NotNil(t, d.Posts())
	assert.Empty(t, d.Posts())
	assert.Len(t, d.Accounts(), 1)
	assert.Len(t, d.Insights(), 2)
}

func TestSelectTabFetchesOnce(t *testing.T) {
	backend := newTestBackend(t)
	backend.respond("/api/analytics/hashtags", 200, `{"trending_hashtags":[]}`)

	d := backend.dashboard()
	d.SelectTab(context.Background(), TabHashtags)
	d.SelectTab(context.Background(), TabHashtags)

	assert.Equal(t, 1, backend.counts["/api/analytics/hashtags"])
	assert.Equal(t, PanelLoaded, d.Panel(TabHashtags).Status)
}

func TestSelectTabFailureIsTerminal(t *testing.T) {
	backend := newTestBackend(t)
	backend.respond("/api/analytics/anomalies", 500, `{"error":"Internal server error"}`)

	d := backend.dashboard()
	d.SelectTab(context.Background(), TabAnomalies)
	d.SelectTab(context.Background(), TabAnomalies)

	assert.Equal(t, 1, backend.counts["/api/analytics/anomalies"])
	assert.Equal(t, PanelFailed, d.Panel(TabAnomalies).Status)
	assert.Equal(t, "Internal server error", d.Panel(TabAnomalies).Err)
}

func TestSelectNonPanelTabFetchesNothing(t *testing.T) {
	backend := newTestBackend(t)

	d := backend.dashboard()
	d.SelectTab(context.Background(), TabOverview)
	d.SelectTab(context.Background(), TabPosts)
	d.SelectTab(context.Background(), TabPredict)

	assert.Equal(t, 0, backend.total())
	assert.Equal(t, TabPredict, d.ActiveTab())
}

func TestConnectAccountRejectsBlankFieldsLocally(t *testing.T) {
	backend := newTestBackend(t)
	d := backend.dashboard()

	err := d.ConnectAccount(context.Background(), "instagram", "   ")
	assert.ErrorIs(t, err, ErrEmptyName)

	err = d.ConnectAccount(context.Background(), "", "main")
	assert.ErrorIs(t, err, ErrEmptyPlatform)

	assert.Equal(t, 0, backend.total())
}

func TestConnectAccountReloadsDashboard(t *testing.T) {
	backend := newTestBackend(t)
	backend.respondCore()
	backend.respond("/api/accounts/connect", 201, `{"message":"Account connected successfully"}`)

	d := backend.dashboard()
	require.NoError(t, d.ConnectAccount(context.Background(), "instagram", "main"))

	assert.Equal(t, 1, backend.counts["/api/accounts/connect"])
	assert.Equal(t, 1, backend.counts["/api/accounts"])
	assert.Equal(t, 1, backend.counts["/api/posts"])
	assert.Equal(t, 1, backend.counts["/api/insights"])
	assert.Len(t, d.Accounts(), 1)
}

func TestConnectAccountSurfacesServerError(t *testing.T) {
	backend := newTestBackend(t)
	backend.respond("/api/accounts/connect", 400, `{"error":"Unsupported platform"}`)

	d := backend.dashboard()
	err := d.ConnectAccount(context.Background(), "myspace", "main")

	require.Error(t, err)
	assert.Equal(t, "Unsupported platform", d.Error())
	assert.Equal(t, 0, backend.counts["/api/accounts"])
}

func TestDisconnectWithoutConfirmationMakesNoCall(t *testing.T) {
	backend := newTestBackend(t)
	d := backend.dashboard()

	err := d.DisconnectAccount(context.Background(), 1, func() bool { return false })
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, 0, backend.total())
}

func TestDisconnectReloadsDashboard(t *testing.T) {
	backend := newTestBackend(t)
	backend.respondCore()
	backend.respond("/api/accounts/3", 200, `{"message":"Account disconnected successfully"}`)

	d := backend.dashboard()
	require.NoError(t, d.DisconnectAccount(context.Background(), 3, func() bool { return true }))

	assert.Equal(t, 1, backend.counts["/api/accounts/3"])
	assert.Equal(t, 1, backend.counts["/api/accounts"])
	assert.Equal(t, 1, backend.counts["/api/posts"])
	assert.Equal(t, 1, backend.counts["/api/insights"])
}

func TestPredictRequiresContent(t *testing.T) {
	backend := newTestBackend(t)
	d := backend.dashboard()

	err := d.PredictEngagement(context.Background(), "  ", "instagram")
	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Equal(t, 0, backend.total())
}

func TestPredictKeepsLatestResultOnly(t *testing.T) {
	backend := newTestBackend(t)
	responses := []string{
		`{"predicted_engagement":100,"confidence_score":0.75,"ai_recommendation":"a","factors":[]}`,
		`{"predicted_engagement":250,"confidence_score":0.8,"ai_recommendation":"b","factors":[]}`,
	}
	i := 0
	backend.mux.HandleFunc("/api/analytics/predict-engagement", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(responses[i]))
		i++
	})

	d := backend.dashboard()
	require.NoError(t, d.PredictEngagement(context.Background(), "first post", "instagram"))
	require.NoError(t, d.PredictEngagement(context.Background(), "second post", "tiktok"))

	require.NotNil(t, d.Prediction())
	assert.Equal(t, 250, d.Prediction().PredictedEngagement)
	assert.Equal(t, "b", d.Prediction().AIRecommendation)
}

func TestParseTab(t *testing.T) {
	tab, ok := ParseTab("forecast")
	require.True(t, ok)
	assert.Equal(t, TabForecast, tab)

	_, ok = ParseTab("bogus")
	assert.False(t, ok)
}
