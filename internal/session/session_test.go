package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/horizonbank/horizon/internal/actions"
	"github.com/horizonbank/horizon/internal/api"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend resolves auth/authenticate by token and fails everything else
// it was not primed for.
type fakeBackend struct {
	validToken string
	err        error
}

func (f *fakeBackend) Do(ctx context.Context, method, path string, data any, out any) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if path == "auth/authenticate" {
		if api.TokenFromContext(ctx) != f.validToken {
			return "", &api.Error{Status: http.StatusUnauthorized, Message: "not authenticated"}
		}
		if out != nil {
			return "", json.Unmarshal([]byte(`{"id": 7, "first_name": "Ada"}`), out)
		}
	}
	return "", nil
}

func TestVerifyEmptyTokenIsUnauthenticated(t *testing.T) {
	manager := NewManager(actions.New(&fakeBackend{validToken: "good"}))

	sess, err := manager.Verify(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, StatusUnauthenticated, sess.Status)
	assert.False(t, sess.Authenticated())
}

func TestVerifyValidTokenIsAuthenticated(t *testing.T) {
	manager := NewManager(actions.New(&fakeBackend{validToken: "good"}))

	sess, err := manager.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, StatusAuthenticated, sess.Status)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "Ada", sess.User.FirstName)
	assert.Equal(t, "good", sess.Token)
}

func TestVerifyRejectedTokenIsClearedNotErrored(t *testing.T) {
	manager := NewManager(actions.New(&fakeBackend{validToken: "good"}))

	sess, err := manager.Verify(context.Background(), "stale")
	require.NoError(t, err)
	assert.Equal(t, StatusUnauthenticated, sess.Status)
	assert.Empty(t, sess.Token)
}

func TestVerifyBackendFailureSurfacesError(t *testing.T) {
	manager := NewManager(actions.New(&fakeBackend{err: errors.New("connection refused")}))

	sess, err := manager.Verify(context.Background(), "good")
	require.Error(t, err)
	assert.Equal(t, StatusUnknown, sess.Status)
	assert.False(t, sess.Authenticated())
}

func TestSessionStatusString(t *testing.T) {
	assert.Equal(t, "unknown", StatusUnknown.String())
	assert.Equal(t, "authenticated", StatusAuthenticated.String())
	assert.Equal(t, "unauthenticated", StatusUnauthenticated.String())
}

func TestCookieRoundTrip(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	SetCookie(c, "token-1")

	res := rec.Result()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "token-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	// The token comes back out of an inbound request carrying the cookie.
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(&http.Cookie{Name: CookieName, Value: "token-1"})
	c2 := e.NewContext(req2, httptest.NewRecorder())
	assert.Equal(t, "token-1", TokenFromRequest(c2))
}

func TestClearCookieExpiresImmediately(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	ClearCookie(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
