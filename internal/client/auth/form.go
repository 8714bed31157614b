// Package auth models the login/register form the dashboard shows before a
// session exists. The form is a small state machine driven by a single
// goroutine; it holds the field values, the current mode, and the last
// submission error.
package auth

import (
	"context"
	"errors"

	"socialpulse/internal/client/api"
	"socialpulse/internal/client/session"
)

type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// ErrBusy is returned when Submit is called while a previous submission is
// still in flight.
var ErrBusy = errors.New("submission already in flight")

type Form struct {
	client   *api.Client
	sessions session.Store

	mode     Mode
	Username string
	Email    string
	Password string

	errMsg  string
	loading bool

	onSuccess func(session.User)
}

// NewForm starts in login mode. onSuccess fires exactly once per successful
// submission, after the session has been persisted.
func NewForm(client *api.Client, sessions session.Store, onSuccess func(session.User)) *Form {
	return &Form{
		client:    client,
		sessions:  sessions,
		mode:      ModeLogin,
		onSuccess: onSuccess,
	}
}

func (f *Form) Mode() Mode    { return f.mode }
func (f *Form) Error() string { return f.errMsg }
func (f *Form) Loading() bool { return f.loading }

// ToggleMode switches between login and register, discarding anything the
// user typed along with any stale error.
func (f *Form) ToggleMode() {
	if f.mode == ModeLogin {
		f.mode = ModeRegister
	} else {
		f.mode = ModeLogin
	}
	f.Username = ""
	f.Email = ""
	f.Password = ""
	f.errMsg = ""
}

// Submit sends the form to the endpoint matching the current mode. While a
// submission is in flight further calls return ErrBusy without touching the
// form state.
func (f *Form) Submit(ctx context.Context) error {
	if f.loading {
		return ErrBusy
	}
	f.loading = true
	defer func() { f.loading = false }()

	path := "/api/auth/login"
	if f.mode == ModeRegister {
		path = "/api/auth/register"
	}
	body := map[string]string{}
	if f.Username != "" {
		body["username"] = f.Username
	}
	if f.Email != "" {
		body["email"] = f.Email
	}
	if f.Password != "" {
		body["password"] = f.Password
	}

	res := f.client.Post(ctx, path, body)
	if !res.OK {
		f.errMsg = "Unable to reach server"
		return nil
	}

	token, hasToken := res.Data["token"].(string)
	if !hasToken || token == "" {
		f.errMsg = res.ErrorMessage("Authentication failed")
		return nil
	}

	var payload struct {
		User session.User `json:"user"`
	}
	if err := res.Decode(&payload); err != nil {
		f.errMsg = "Authentication failed"
		return nil
	}

	if err := f.sessions.Save(payload.User, token); err != nil {
		return err
	}
	f.errMsg = ""
	if f.onSuccess != nil {
		f.onSuccess(payload.User)
	}
	return nil
}
