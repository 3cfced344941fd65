// Package testutils provides the shared scaffolding for tests that need a
// fake banking backend: an httptest server speaking the backend's JSON
// dialect and a config.Provider pointing at it.
package testutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/horizonbank/horizon/internal/config"
)

// StubConfig implements config.Provider with fixed values.
type StubConfig struct {
	APIBaseURL     string
	ListenAddr     string
	SessionSecret  string
	PlaidEnv       string
	RequestTimeout time.Duration
}

func (c *StubConfig) GetAPIBaseURL() string    { return c.APIBaseURL }
func (c *StubConfig) GetListenAddr() string    { return c.ListenAddr }
func (c *StubConfig) GetSessionSecret() string { return c.SessionSecret }
func (c *StubConfig) GetPlaidEnv() string      { return c.PlaidEnv }
func (c *StubConfig) GetRequestTimeout() time.Duration {
	if c.RequestTimeout == 0 {
		return 5 * time.Second
	}
	return c.RequestTimeout
}

// ConfigForBackend returns a config.Provider pointing at the given backend
// URL, with test defaults for everything else.
func ConfigForBackend(backendURL string) config.Provider {
	return &StubConfig{
		APIBaseURL:    backendURL,
		ListenAddr:    ":0",
		SessionSecret: "test-secret",
		PlaidEnv:      "sandbox",
	}
}

// Backend starts a fake banking API for the duration of the test. The
// handler decides per-route behavior; JSON helps keep them short.
func Backend(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// JSON writes a canned JSON response.
func JSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
