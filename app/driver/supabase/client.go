// Package supabase is the driver for the hosted backend-as-a-service:
// managed auth (GoTrue protocol) and managed relational storage reached
// through its HTTP query API (PostgREST protocol).
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sixtyseconds/ai-development-hub/app/config"
	"github.com/sixtyseconds/ai-development-hub/app/domain"
	"github.com/sixtyseconds/ai-development-hub/app/port"
)

const maxResponseBody = 4 << 20

// Client wraps the remote service's auth and storage endpoints. Missing
// configuration does not fail construction: the first I/O attempt returns
// domain.ErrNotConfigured instead.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *slog.Logger

	mu          sync.Mutex
	session     *domain.Session
	sessionFile string
	subs        map[int]func(port.AuthEvent, *domain.Session)
	nextSubID   int
}

// NewClient creates a new remote service client
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	if !cfg.Configured() {
		logger.Warn("remote service settings absent, client will error on first use")
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.SupabaseURL, "/"),
		apiKey:  cfg.SupabaseAnonKey,
		httpc: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DisableKeepAlives: false,
			},
		},
		logger:      logger.With("component", "supabase"),
		sessionFile: cfg.SessionFile,
		subs:        make(map[int]func(port.AuthEvent, *domain.Session)),
	}
}

// HealthCheck checks if the remote auth service is reachable
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.do(ctx, request{method: http.MethodGet, path: "/auth/v1/health"}, nil)
	if err != nil {
		return fmt.Errorf("auth service unreachable: %w", err)
	}
	return nil
}

func (c *Client) ready() error {
	if c.baseURL == "" || c.apiKey == "" {
		return domain.ErrNotConfigured
	}
	return nil
}

func (c *Client) currentSession() *domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// request describes one call to the remote service.
type request struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   any
	// authed requests carry the session access token as bearer when one
	// is held, falling back to the public API key.
	authed bool
	// token overrides the bearer outright.
	token string
}

// do executes a request and decodes a JSON response into out. Non-2xx
// responses come back as *apiError.
func (c *Client) do(ctx context.Context, r request, out any) (http.Header, error) {
	u, err := url.Parse(c.baseURL + r.path)
	if err != nil {
		return nil, fmt.Errorf("invalid request URL: %w", err)
	}
	if r.query != nil {
		u.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.apiKey)
	bearer := c.apiKey
	switch {
	case r.token != "":
		bearer = r.token
	case r.authed:
		if s := c.currentSession(); s != nil && s.AccessToken != "" {
			bearer = s.AccessToken
		}
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range r.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return resp.Header, newAPIError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.Header, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.Header, nil
}
