package alto

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"altosync/internal/domain"
)

// The feed hands out the token in a response header on an authenticated
// /branch call and never advertises a TTL, so one hour is assumed.
const tokenTTL = time.Hour

const userAgent = "AltoSync/1.0"

// Config holds Alto feed client configuration.
type Config struct {
	BaseURL   string
	Username  string
	Password  string
	TokenFile string
	Timeout   time.Duration
}

// Client is the authenticated HTTP client for the Alto property feed.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
	tokens     *tokenCache
	logger     *slog.Logger
	now        func() time.Time
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		tokens:     newTokenCache(cfg.TokenFile, logger),
		logger:     logger.With("component", "feed"),
		now:        time.Now,
	}
}

// token returns a currently valid credential, acquiring a new one when the
// cache is empty or expired. Acquisition failure is definitive.
func (c *Client) token(ctx context.Context) (string, error) {
	if tok, ok := c.tokens.get(c.now()); ok {
		return tok, nil
	}
	return c.acquireToken(ctx)
}

func (c *Client) acquireToken(ctx context.Context) (string, error) {
	url := c.baseURL + "/branch"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", domain.ErrAuth, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return "", fmt.Errorf("%w: credentials rejected (401)", domain.ErrAuth)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token request returned %d", domain.ErrAuth, resp.StatusCode)
	}

	tok := strings.TrimSpace(resp.Header.Get("Token"))
	if tok == "" {
		return "", fmt.Errorf("%w: no Token header in response", domain.ErrAuth)
	}

	expiry := c.now().Add(tokenTTL)
	c.tokens.store(tok, expiry)
	c.logger.Info("acquired feed token", "expires", expiry.Format(time.RFC3339))
	return tok, nil
}

// Call performs an authenticated GET. On a 401 it discards the cached
// credential, re-authenticates exactly once and retries once; it never loops.
func (c *Client) Call(ctx context.Context, url string) ([]byte, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	body, status, err := c.do(ctx, url, tok)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		c.logger.Warn("token rejected, re-authenticating once", "url", url)
		c.tokens.invalidate()

		tok, err = c.acquireToken(ctx)
		if err != nil {
			return nil, err
		}
		body, status, err = c.do(ctx, url, tok)
		if err != nil {
			return nil, err
		}
		if status == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: still unauthorized after refresh: %s", domain.ErrAuth, url)
		}
	}

	switch {
	case status == http.StatusOK:
		return body, nil
	case status == http.StatusForbidden:
		return nil, fmt.Errorf("feed returned 403 for %s: account lacks permission", url)
	default:
		return nil, fmt.Errorf("feed returned %d for %s", status, url)
	}
}

func (c *Client) do(ctx context.Context, url, token string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	// Subsequent calls re-encode the bare token as a Basic credential.
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(token)))
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// FetchBranches retrieves the branch list; the raw bytes feed the change
// detector, the decoded list drives the per-branch property fetches.
func (c *Client) FetchBranches(ctx context.Context) ([]byte, []Branch, error) {
	raw, err := c.Call(ctx, c.baseURL+"/branch")
	if err != nil {
		return nil, nil, fmt.Errorf("fetch branch list: %w", err)
	}
	list, err := ParseBranchList(raw)
	if err != nil {
		return nil, nil, err
	}
	return raw, list.Branches, nil
}

// FetchPropertyList retrieves the property summaries for one branch. The
// branch URL already carries the feed's internal branch identifier.
func (c *Client) FetchPropertyList(ctx context.Context, branchURL string) ([]PropertySummary, error) {
	url := strings.TrimRight(branchURL, "/") + "/property"
	raw, err := c.Call(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch property list: %w", err)
	}
	list, err := ParsePropertyList(raw)
	if err != nil {
		return nil, err
	}
	return list.Properties, nil
}

// FetchPropertyDetail retrieves a full property document via the detail URL
// carried by its summary.
func (c *Client) FetchPropertyDetail(ctx context.Context, url string) ([]byte, error) {
	raw, err := c.Call(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch property detail: %w", err)
	}
	return raw, nil
}

// Head issues a HEAD request and reports the Content-Type, used by the image
// pipeline to sniff extension-less URLs.
func (c *Client) Head(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("HEAD %s returned %d", url, resp.StatusCode)
	}
	return resp.Header.Get("Content-Type"), nil
}
