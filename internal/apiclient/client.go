// Package apiclient is the client's single HTTP layer: it attaches the
// stored bearer token, shapes JSON bodies and normalizes failures into a
// uniform error taxonomy.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/23F3001886/CleanEarth/internal/session"
)

// ErrNetworkUnavailable marks transport failures (server unreachable).
var ErrNetworkUnavailable = errors.New("cannot reach server")

// RequestFailed is a non-2xx response carrying the backend's message.
type RequestFailed struct {
	Status  int
	Message string
}

func (e *RequestFailed) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

// SessionExpired reports whether the failure means the stored credential is
// no longer valid. The client has already cleared the store by the time a
// caller sees this; views uniformly redirect to login.
func (e *RequestFailed) SessionExpired() bool {
	return e.Status == http.StatusUnauthorized
}

// Client calls the CleanEarth API.
type Client struct {
	baseURL string
	store   *session.Store
	http    *http.Client
}

func New(baseURL string, store *session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		store:   store,
		http:    http.DefaultClient,
	}
}

// Call issues one request. body (when non-nil) is marshaled to JSON; out
// (when non-nil) receives the decoded 2xx response. One attempt, no retries.
func (c *Client) Call(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failure(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// failure reads the error body and applies the invalid-session policy:
// a 401 on any call clears the credential store before the error returns.
func (c *Client) failure(resp *http.Response) error {
	msg := "API request failed"
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
		msg = errBody.Error
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = c.store.Clear()
	}

	return &RequestFailed{Status: resp.StatusCode, Message: msg}
}

// Get is shorthand for a body-less GET.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Call(ctx, http.MethodGet, path, nil, out)
}

// Post is shorthand for a JSON POST.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Call(ctx, http.MethodPost, path, body, out)
}
