// Package dashboard owns the authenticated view's state: the three core
// datasets loaded up front, lazily fetched analytics panels keyed by tab,
// and the account connect/disconnect flows.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"

	"socialpulse/internal/client/api"
)

var (
	ErrEmptyPlatform = errors.New("platform is required")
	ErrEmptyName     = errors.New("account name is required")
	ErrEmptyContent  = errors.New("content is required")
	ErrNotConfirmed  = errors.New("not confirmed")
)

type Dashboard struct {
	client *api.Client

	accounts []Account
	posts    []Post
	insights []string

	active     Tab
	panels     map[Tab]PanelState
	prediction *Prediction

	errMsg string
}

func New(client *api.Client) *Dashboard {
	return &Dashboard{
		client: client,
		active: TabOverview,
		panels: make(map[Tab]PanelState),
	}
}

func (d *Dashboard) Accounts() []Account     { return d.accounts }
func (d *Dashboard) Posts() []Post           { return d.posts }
func (d *Dashboard) Insights() []string      { return d.insights }
func (d *Dashboard) ActiveTab() Tab          { return d.active }
func (d *Dashboard) Prediction() *Prediction { return d.prediction }
func (d *Dashboard) Error() string           { return d.errMsg }
func (d *Dashboard) Panel(t Tab) PanelState  { return d.panels[t] }

// LoadInitial fetches accounts, posts and insights concurrently. Each of
// the three falls back to an empty slice on its own failure; one failing
// fetch never blocks the others.
func (d *Dashboard) LoadInitial(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		d.accounts = fetchList[Account](ctx, d.client, "/api/accounts", "accounts")
	}()
	go func() {
		defer wg.Done()
		d.posts = fetchList[Post](ctx, d.client, "/api/posts", "posts")
	}()
	go func() {
		defer wg.Done()
		d.insights = fetchList[string](ctx, d.client, "/api/insights", "insights")
	}()

	wg.Wait()
}

// fetchList extracts the named array field from a GET response, returning
// an empty slice on any failure.
func fetchList[T any](ctx context.Context, client *api.Client, path, field string) []T {
	res := client.Get(ctx, path)
	if !res.OK || res.Status != 200 {
		return []T{}
	}
	var payload map[string]json.RawMessage
	if err := res.Decode(&payload); err != nil {
		return []T{}
	}
	var items []T
	if raw, ok := payload[field]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return []T{}
		}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// SelectTab makes t the active tab and, for panel-backed tabs, fetches the
// panel data the first time the tab is visited. Revisiting a tab whose
// panel already loaded or failed issues no further request.
func (d *Dashboard) SelectTab(ctx context.Context, t Tab) {
	d.active = t

	endpoint, ok := t.panelEndpoint()
	if !ok {
		return
	}
	if d.panels[t].Status != PanelUnfetched {
		return
	}

	d.panels[t] = panelStart(d.panels[t])
	res := d.client.Get(ctx, endpoint)
	if !res.OK {
		d.panels[t] = panelFailed("Unable to reach server")
		return
	}
	if res.Status != 200 {
		d.panels[t] = panelFailed(res.ErrorMessage("Failed to load data"))
		return
	}
	d.panels[t] = panelLoaded(res.Data)
}

// ConnectAccount validates locally before any network call: both platform
// and a non-blank account name are required. On success the whole
// dashboard is reloaded so posts and insights stay consistent with the
// new account.
func (d *Dashboard) ConnectAccount(ctx context.Context, platform, accountName string) error {
	platform = strings.TrimSpace(platform)
	accountName = strings.TrimSpace(accountName)
	if platform == "" {
		return ErrEmptyPlatform
	}
	if accountName == "" {
		return ErrEmptyName
	}

	res := d.client.Post(ctx, "/api/accounts/connect", map[string]string{
		"platform":     platform,
		"account_name": accountName,
	})
	if !res.OK {
		d.errMsg = "Unable to reach server"
		return errors.New(d.errMsg)
	}
	if res.Status != 201 && res.Status != 200 {
		d.errMsg = res.ErrorMessage("Failed to connect account")
		return errors.New(d.errMsg)
	}

	d.errMsg = ""
	d.LoadInitial(ctx)
	return nil
}

// DisconnectAccount asks confirm before issuing the delete; declining
// makes no network call. On success the dashboard reloads in full.
func (d *Dashboard) DisconnectAccount(ctx context.Context, accountID int64, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrNotConfirmed
	}

	res := d.client.Delete(ctx, "/api/accounts/"+strconv.FormatInt(accountID, 10))
	if !res.OK {
		d.errMsg = "Unable to reach server"
		return errors.New(d.errMsg)
	}
	if res.Status != 200 {
		d.errMsg = res.ErrorMessage("Failed to disconnect account")
		return errors.New(d.errMsg)
	}

	d.errMsg = ""
	d.LoadInitial(ctx)
	return nil
}

// PredictEngagement submits content for prediction and keeps only the most
// recent result.
func (d *Dashboard) PredictEngagement(ctx context.Context, content, platform string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	res := d.client.Post(ctx, "/api/analytics/predict-engagement", map[string]string{
		"content":  content,
		"platform": platform,
	})
	if !res.OK {
		return errors.New("unable to reach server")
	}
	if res.Status != 200 {
		return errors.New(res.ErrorMessage("Prediction failed"))
	}

	var p Prediction
	if err := res.Decode(&p); err != nil {
		return err
	}
	d.prediction = &p
	return nil
}
