package alto

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// expiryBuffer makes a token unusable slightly before its real deadline to
// mask clock skew between us and the feed.
const expiryBuffer = 60 * time.Second

type credential struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // unix seconds
}

func (c *credential) valid(now time.Time) bool {
	return c != nil && c.Token != "" && time.Unix(c.Expiry, 0).After(now.Add(expiryBuffer))
}

// tokenCache persists the feed credential to a side-channel file so separate
// invocations reuse it until it expires. No refresh-race protection; runs are
// single-threaded and overlapping invocations are an accepted gap.
type tokenCache struct {
	path   string
	cred   *credential
	logger *slog.Logger
}

func newTokenCache(path string, logger *slog.Logger) *tokenCache {
	return &tokenCache{path: path, logger: logger}
}

// get returns the cached token if it is still valid, loading from the file
// when memory is empty.
func (t *tokenCache) get(now time.Time) (string, bool) {
	if t.cred.valid(now) {
		return t.cred.Token, true
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		return "", false
	}

	var c credential
	if err := json.Unmarshal(data, &c); err != nil {
		t.logger.Warn("invalid token file, discarding", "path", t.path, "error", err)
		t.invalidate()
		return "", false
	}

	if !c.valid(now) {
		t.logger.Debug("cached token expired, discarding", "path", t.path)
		t.invalidate()
		return "", false
	}

	t.cred = &c
	return c.Token, true
}

func (t *tokenCache) store(token string, expiry time.Time) {
	t.cred = &credential{Token: token, Expiry: expiry.Unix()}

	data, err := json.Marshal(t.cred)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		t.logger.Warn("cannot create token dir", "path", t.path, "error", err)
		return
	}
	if err := os.WriteFile(t.path, data, 0o600); err != nil {
		t.logger.Warn("cannot persist token", "path", t.path, "error", err)
	}
}

// invalidate drops the credential from memory and disk, regardless of the
// recorded expiry.
func (t *tokenCache) invalidate() {
	t.cred = nil
	if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
		t.logger.Warn("cannot remove token file", "path", t.path, "error", err)
	}
}
