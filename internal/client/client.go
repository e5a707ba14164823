// Package client is the Go API client for the wayfarer backend: a thin HTTP
// wrapper plus the auth-state manager and route guard that drive protected
// views.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"wayfarer/internal/model"
)

// DefaultTimeout bounds every call so a dead backend surfaces as an error
// instead of a hang.
const DefaultTimeout = 10 * time.Second

// ErrNetwork marks transport-level failures (timeout, refused connection) so
// callers can distinguish them from API rejections.
var ErrNetwork = errors.New("network error")

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client calls the backend API. The session cookie set at login/signup lives
// in the client's cookie jar and rides along on every subsequent request.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL (e.g. "http://localhost:5000/api").
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: DefaultTimeout},
	}, nil
}

type userEnvelope struct {
	Success bool           `json:"success"`
	Data    model.Identity `json:"data"`
}

type verifyEnvelope struct {
	Authenticated bool           `json:"authenticated"`
	User          model.Identity `json:"user"`
}

type errorEnvelope struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Signup registers a new user; the session cookie from the response is
// retained by the jar.
func (c *Client) Signup(ctx context.Context, username, email, password string) (*model.Identity, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/signup", body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Login authenticates and retains the session cookie.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Identity, error) {
	body := map[string]string{"email": email, "password": password}
	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Logout asks the server to clear the session cookie.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Verify resolves the current session to an identity, or an APIError with
// status 401 when there is no valid session.
func (c *Client) Verify(ctx context.Context) (*model.Identity, error) {
	var env verifyEnvelope
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, &env); err != nil {
		return nil, err
	}
	if !env.Authenticated {
		return nil, &APIError{StatusCode: http.StatusUnauthorized, Message: "unauthenticated"}
	}
	return &env.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		if envelope.Message == "" {
			envelope.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message, Code: envelope.Code}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
