package alto

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"altosync/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return New(Config{
		BaseURL:   baseURL,
		Username:  "agent",
		Password:  "secret",
		TokenFile: filepath.Join(t.TempDir(), "token.json"),
		Timeout:   5 * time.Second,
	}, testLogger())
}

func basicToken(tok string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(tok))
}

func TestClient_AcquiresTokenFromHeader(t *testing.T) {
	var sawBasicAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Basic " + base64.StdEncoding.EncodeToString([]byte("agent:secret")):
			sawBasicAuth = true
			w.Header().Set("Token", "tok-1")
			_, _ = w.Write([]byte("<branches/>"))
		case basicToken("tok-1"):
			_, _ = w.Write([]byte("<branches><branch><branchid>b1</branchid></branch></branches>"))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	raw, branches, err := c.FetchBranches(context.Background())
	require.NoError(t, err)
	assert.True(t, sawBasicAuth, "first call authenticates with username:password")
	assert.NotEmpty(t, raw)
	assert.Len(t, branches, 1)
}

func TestClient_TokenPersistedAcrossClients(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token.json")
	acquisitions := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == basicToken("tok-1") {
			_, _ = w.Write([]byte("<branches/>"))
			return
		}
		acquisitions++
		w.Header().Set("Token", "tok-1")
		_, _ = w.Write([]byte("<branches/>"))
	}))
	defer srv.Close()

	cfg := Config{
		BaseURL: srv.URL, Username: "agent", Password: "secret",
		TokenFile: tokenFile, Timeout: 5 * time.Second,
	}

	c1 := New(cfg, testLogger())
	_, _, err := c1.FetchBranches(context.Background())
	require.NoError(t, err)

	// A fresh process reuses the file-cached token instead of re-acquiring.
	c2 := New(cfg, testLogger())
	_, _, err = c2.FetchBranches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, acquisitions)
}

func TestClient_RetriesOnceAfter401(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		auth := r.Header.Get("Authorization")
		switch {
		case auth == "Basic "+base64.StdEncoding.EncodeToString([]byte("agent:secret")):
			w.Header().Set("Token", "tok-fresh")
			_, _ = w.Write([]byte("<branches/>"))
		case auth == basicToken("tok-stale"):
			w.WriteHeader(http.StatusUnauthorized)
		case auth == basicToken("tok-fresh"):
			_, _ = w.Write([]byte("<properties/>"))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.tokens.store("tok-stale", time.Now().Add(time.Hour))

	body, err := c.Call(context.Background(), srv.URL+"/branch/b1/property")
	require.NoError(t, err)
	assert.Equal(t, "<properties/>", string(body))
	// stale attempt + re-auth + retry
	assert.Equal(t, 3, calls)
}

func TestClient_PersistentlyUnauthorizedFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/branch" && r.Header.Get("Authorization") ==
			"Basic "+base64.StdEncoding.EncodeToString([]byte("agent:secret")) {
			w.Header().Set("Token", "tok-1")
			_, _ = w.Write([]byte("<branches/>"))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.tokens.store("tok-dead", time.Now().Add(time.Hour))

	_, err := c.Call(context.Background(), srv.URL+"/branch/b1/property")
	assert.ErrorIs(t, err, domain.ErrAuth)
}

func TestClient_ForbiddenIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.tokens.store("tok-1", time.Now().Add(time.Hour))

	_, err := c.Call(context.Background(), srv.URL+"/branch/b1/property")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAuth)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, 1, calls)
}

func TestClient_BadCredentialsAbort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, _, err := c.FetchBranches(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuth)
}
