// Package todoist implements service.Remote on top of the Todoist Sync API.
package todoist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/pbozzay/kanbanist/internal/service"
)

const (
	// DefaultBaseURL is the Sync API endpoint.
	DefaultBaseURL = "https://api.todoist.com/sync/v9/"

	// APITimeout is the default timeout for API calls.
	APITimeout = 10 * time.Second
)

// Options configures a Client.
type Options struct {
	// BaseURL overrides DefaultBaseURL. Must end with a slash.
	BaseURL string

	// Timeout overrides APITimeout.
	Timeout time.Duration

	// HTTPClient is the transport the bearer token is layered on.
	HTTPClient *http.Client
}

// Client implements service.Remote using the Todoist Sync API.
type Client struct {
	http    *http.Client
	baseURL string
	timeout time.Duration
}

var _ service.Remote = (*Client)(nil)

// New creates a client authenticated with the given API token.
func New(token string, opts Options) *Client {
	ctx := context.Background()
	if opts.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, opts.HTTPClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})

	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = APITimeout
	}

	return &Client{
		http:    oauth2.NewClient(ctx, ts),
		baseURL: base,
		timeout: timeout,
	}
}

// Factory returns a service.ClientFactory building clients with opts.
func Factory(opts Options) service.ClientFactory {
	return func(token string) service.Remote {
		return New(token, opts)
	}
}

// post sends a form to endpoint and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, endpoint string, form url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return wrapError(err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return wrapError(err)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid %s response: %w", endpoint, err)
	}
	return nil
}

// ErrUnauthorized is returned when the token is rejected.
var ErrUnauthorized = errors.New("token expired or revoked (check token.json or KANBANIST_TOKEN)")

// ErrNotFound is returned for unknown resources.
var ErrNotFound = errors.New("not found")

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrUnauthorized
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusTooManyRequests:
			return fmt.Errorf("rate limited: %w", err)
		}
	}

	return err
}
