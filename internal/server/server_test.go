package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/horizonbank/horizon/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	backend := testutils.Backend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		testutils.JSON(w, http.StatusUnauthorized, `{"detail": "not authenticated"}`)
	}))

	t.Setenv("API_BASE_URL", backend.URL)
	t.Setenv("SESSION_SECRET", "test-secret")

	s := New()
	s.RegisterRoutes()
	t.Cleanup(func() { s.Bus.Close() })
	return s
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestProtectedRoutesRedirectToSignIn(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/", "/my-banks", "/transaction-history", "/payment-transfer"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code, "path %s", path)
		assert.Equal(t, "/sign-in", rec.Header().Get("Location"), "path %s", path)
	}
}

func TestSignInPageIsPublic(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/sign-in", nil)
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign In")
}
