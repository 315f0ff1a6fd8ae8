// Package api is the HTTP client for the auth server. It keeps the refresh
// cookie in an in-memory jar and the current access token on the client, so
// callers work with emails and passwords only.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/bushbass/fcc-jwt/internal/common"
)

// ErrUnavailable indicates the server could not be reached at all,
// as opposed to the server rejecting the request.
var ErrUnavailable = errors.New("server unavailable")

// Client talks to the auth server over HTTP. The cookie jar holds the
// refresh cookie between calls; the access token is kept in memory and
// attached as a bearer header where required.
type Client struct {
	baseURL     string
	http        *http.Client
	accessToken string
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// IsLoggedIn reports whether the client currently holds an access token.
func (c *Client) IsLoggedIn() bool {
	return c.accessToken != ""
}

type errorResponse struct {
	Error string `json:"error"`
}

// toSentinel maps HTTP rejection statuses onto the shared flow sentinels so
// callers can branch with errors.Is instead of inspecting status codes.
func toSentinel(status int, message string) error {
	switch status {
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", message, common.ErrorAlreadyExists)
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", message, common.ErrorUnauthorized)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", message, common.ErrTooManyLoginAttempts)
	default:
		return fmt.Errorf("server returned %d: %s", status, message)
	}
}

// do sends a JSON request and decodes a JSON response into out (when out is
// non-nil). Transport-level failures map to ErrUnavailable; non-2xx statuses
// map to sentinels via toSentinel.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Error == "" {
			er.Error = resp.Status
		}
		return toSentinel(resp.StatusCode, er.Error)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and returns the new user's id.
func (c *Client) Register(ctx context.Context, email string, password []byte) (string, error) {
	var out struct {
		UserID string `json:"user_id"`
	}
	err := c.do(ctx, http.MethodPost, "/register", credentials{Email: email, Password: string(password)}, &out, false)
	if err != nil {
		return "", err
	}
	return out.UserID, nil
}

// Login authenticates and stores the returned access token on the client.
// The refresh cookie lands in the jar as a side effect of the response.
func (c *Client) Login(ctx context.Context, email string, password []byte) error {
	var out struct {
		AccessToken string `json:"accesstoken"`
	}
	err := c.do(ctx, http.MethodPost, "/login", credentials{Email: email, Password: string(password)}, &out, false)
	if err != nil {
		return err
	}
	c.accessToken = out.AccessToken
	return nil
}

// Refresh exchanges the refresh cookie for a fresh token pair. The new access
// token replaces the stored one; the rotated cookie replaces the old one in
// the jar.
func (c *Client) Refresh(ctx context.Context) error {
	var out struct {
		AccessToken string `json:"accesstoken"`
	}
	err := c.do(ctx, http.MethodPost, "/refresh_token", nil, &out, false)
	if err != nil {
		return err
	}
	c.accessToken = out.AccessToken
	return nil
}

// Logout revokes the session server-side and drops the local access token.
// The endpoint sits under the refresh cookie's path scope so the jar attaches
// the cookie and the server can identify which session to revoke.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/refresh_token/logout", nil, nil, false)
	c.accessToken = ""
	return err
}

// Protected calls the sample gated endpoint and returns its payload.
func (c *Client) Protected(ctx context.Context) (string, error) {
	var out struct {
		Data   string `json:"data"`
		UserID string `json:"user_id"`
	}
	err := c.do(ctx, http.MethodPost, "/protected", nil, &out, true)
	if err != nil {
		return "", err
	}
	return out.Data, nil
}

// Ping checks server reachability.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ping", nil, nil, false)
}
