// Package api is the dashboard's HTTP client for the socialpulse backend.
// Every call goes through Call, which normalizes the outcome into a Result
// so callers never touch *http.Response directly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// TokenSource supplies the bearer token for a request. It is consulted on
// every call, so a login or logout between calls takes effect immediately.
type TokenSource interface {
	Token() string
}

// Result is the uniform outcome of an API call. OK is true whenever the
// server produced a parseable JSON response, regardless of HTTP status;
// it is false only for transport failures or malformed bodies.
type Result struct {
	OK     bool
	Status int
	Data   map[string]any
	raw    json.RawMessage
	Err    error
}

// Decode unmarshals the response body into v.
func (r Result) Decode(v any) error {
	return json.Unmarshal(r.raw, v)
}

// ErrorMessage extracts the server's error field, falling back when the
// response carries none.
func (r Result) ErrorMessage(fallback string) string {
	if msg, ok := r.Data["error"].(string); ok && msg != "" {
		return msg
	}
	return fallback
}

type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Call issues method against path (relative to the base URL), JSON-encoding
// body when it is non-nil. The Authorization header is derived from the
// token source at call time.
func (c *Client) Call(ctx context.Context, method, path string, body any) Result {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Result{Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Result{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Status: resp.StatusCode, Err: err}
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return Result{Status: resp.StatusCode, Err: err}
	}

	return Result{OK: true, Status: resp.StatusCode, Data: data, raw: raw}
}

func (c *Client) Get(ctx context.Context, path string) Result {
	return c.Call(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) Result {
	return c.Call(ctx, http.MethodPost, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) Result {
	return c.Call(ctx, http.MethodDelete, path, nil)
}
