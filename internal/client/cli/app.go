// Package cli is the interactive shell around the dashboard. It boots from
// the persisted session, branches between the auth flow and the dashboard,
// and maps REPL commands onto dashboard actions.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"socialpulse/internal/client/api"
	"socialpulse/internal/client/auth"
	"socialpulse/internal/client/config"
	"socialpulse/internal/client/dashboard"
	"socialpulse/internal/client/session"
)

type App struct {
	config   *config.Config
	client   *api.Client
	sessions session.Store
	form     *auth.Form

	user *session.User
	dash *dashboard.Dashboard

	reader *bufio.Reader
}

func NewApp(c *config.Config) *App {
	store := session.NewFileStore(c.SessionDir)
	client := api.NewClient(c.BaseURL, store)

	app := &App{
		config:   c,
		client:   client,
		sessions: store,
		reader:   bufio.NewReader(os.Stdin),
	}
	app.form = auth.NewForm(client, store, func(u session.User) {
		app.user = &u
	})
	return app
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// Run restores any persisted session before entering the REPL. A restored
// session goes straight to the dashboard; a corrupt or absent one lands on
// the auth flow.
func (a *App) Run(ctx context.Context) error {
	sess, err := a.sessions.Restore()
	if err != nil {
		return err
	}
	if sess != nil {
		a.user = &sess.User
		a.openDashboard(ctx)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
	return nil
}

func (a *App) status() string {
	if a.user == nil {
		return "logged out"
	}
	return a.user.Username
}

func (a *App) openDashboard(ctx context.Context) {
	a.dash = dashboard.New(a.client)
	a.dash.LoadInitial(ctx)
}

func (a *App) Login(ctx context.Context) error {
	if a.form.Mode() != auth.ModeLogin {
		a.form.ToggleMode()
	}
	return a.submitAuth(ctx)
}

func (a *App) Register(ctx context.Context) error {
	if a.form.Mode() != auth.ModeRegister {
		a.form.ToggleMode()
	}

	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	a.form.Username = username
	return a.submitAuth(ctx)
}

func (a *App) submitAuth(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	a.form.Email = email

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	a.form.Password = string(password)

	if err := a.form.Submit(ctx); err != nil {
		return err
	}
	if msg := a.form.Error(); msg != "" {
		printlnFn(msg)
		return nil
	}

	printlnFn("Welcome,", a.user.Username)
	a.openDashboard(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	a.user = nil
	a.dash = nil
	printlnFn("Logged out")
	return nil
}

func (a *App) Overview(ctx context.Context) error {
	printlnFn(fmt.Sprintf("Accounts: %d  Posts: %d", len(a.dash.Accounts()), len(a.dash.Posts())))
	for _, insight := range a.dash.Insights() {
		printlnFn("  *", insight)
	}
	return nil
}

func (a *App) Accounts(ctx context.Context) error {
	accounts := a.dash.Accounts()
	if len(accounts) == 0 {
		printlnFn("No connected accounts")
		return nil
	}
	for _, acc := range accounts {
		printlnFn(fmt.Sprintf("  [%d] %s @%s", acc.ID, acc.Platform, acc.AccountName))
	}
	return nil
}

func (a *App) Posts(ctx context.Context) error {
	posts := a.dash.Posts()
	if len(posts) == 0 {
		printlnFn("No posts yet")
		return nil
	}
	for _, p := range posts {
		engagement := p.Likes + p.Comments + p.Shares
		printlnFn(fmt.Sprintf("  [%d] %s (engagement %d, %s)", p.ID, truncate(p.Content, 60), engagement, p.Sentiment))
	}
	return nil
}

func (a *App) OpenTab(ctx context.Context, name string) error {
	tab, ok := dashboard.ParseTab(name)
	if !ok {
		printlnFn("Unknown tab:", name)
		return nil
	}

	a.dash.SelectTab(ctx, tab)

	switch tab {
	case dashboard.TabOverview:
		return a.Overview(ctx)
	case dashboard.TabPosts:
		return a.Posts(ctx)
	case dashboard.TabPredict:
		return a.showPrediction()
	}

	panel := a.dash.Panel(tab)
	switch panel.Status {
	case dashboard.PanelLoaded:
		printJSON(panel.Data)
	case dashboard.PanelFailed:
		printlnFn("Error:", panel.Err)
	default:
		printlnFn("Nothing to show for", tab.String())
	}
	return nil
}

func (a *App) Connect(ctx context.Context, platform, accountName string) error {
	if err := a.dash.ConnectAccount(ctx, platform, accountName); err != nil {
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn("Account connected")
	return nil
}

func (a *App) Disconnect(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		printlnFn("Invalid account id:", rawID)
		return nil
	}

	confirm := func() bool {
		return GetConfirmation(a.reader, "Disconnect this account?", os.Stdout)
	}
	if err := a.dash.DisconnectAccount(ctx, id, confirm); err != nil {
		if err == dashboard.ErrNotConfirmed {
			printlnFn("Cancelled")
			return nil
		}
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn("Account disconnected")
	return nil
}

func (a *App) Predict(ctx context.Context, platform, content string) error {
	if err := a.dash.PredictEngagement(ctx, content, platform); err != nil {
		printlnFn("Error:", err.Error())
		return nil
	}
	return a.showPrediction()
}

func (a *App) showPrediction() error {
	p := a.dash.Prediction()
	if p == nil {
		printlnFn("No prediction yet, use: predict <platform> <content>")
		return nil
	}
	printlnFn(fmt.Sprintf("Predicted engagement: %d (confidence %.2f)", p.PredictedEngagement, p.ConfidenceScore))
	printlnFn("Recommendation:", p.AIRecommendation)
	return nil
}

func (a *App) Reload(ctx context.Context) error {
	a.dash.LoadInitial(ctx)
	printlnFn("Reloaded")
	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		printlnFn("Error:", err.Error())
		return
	}
	printlnFn(string(data))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "..."
}
