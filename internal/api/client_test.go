package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/horizonbank/horizon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

type stubConfig struct {
	baseURL string
}

func (c *stubConfig) GetAPIBaseURL() string            { return c.baseURL }
func (c *stubConfig) GetListenAddr() string            { return ":0" }
func (c *stubConfig) GetSessionSecret() string         { return "test-secret" }
func (c *stubConfig) GetPlaidEnv() string              { return "sandbox" }
func (c *stubConfig) GetRequestTimeout() time.Duration { return 5 * time.Second }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&stubConfig{baseURL: srv.URL})
}

func TestDoPlacesGetDataInQueryString(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("shareableId")
		w.Write([]byte(`{}`))
	})

	_, err := client.Do(context.Background(), http.MethodGet, "bank/getAccount", map[string]string{"shareableId": "abc123"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "abc123", gotQuery)
}

func TestDoSendsPostDataAsJSONBody(t *testing.T) {
	var got struct {
		PublicToken string `json:"public_token"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, decodeJSON(r, &got))
		w.Write([]byte(`{}`))
	})

	payload := map[string]string{"public_token": "public-sandbox-token"}
	_, err := client.Do(context.Background(), http.MethodPost, "bank/plaid/exchange_public_token", payload, nil)
	require.NoError(t, err)
	assert.Equal(t, "public-sandbox-token", got.PublicToken)
}

func TestDoForwardsContextTokenAsCookie(t *testing.T) {
	var gotCookie string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("jwt"); err == nil {
			gotCookie = cookie.Value
		}
		w.Write([]byte(`{}`))
	})

	ctx := WithToken(context.Background(), "session-token-1")
	_, err := client.Do(ctx, http.MethodGet, "auth/authenticate", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "session-token-1", gotCookie)
}

func TestDoReturnsSessionCookieFromResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "jwt", Value: "fresh-token"})
		w.Write([]byte(`{"id": 1}`))
	})

	token, err := client.Do(context.Background(), http.MethodPost, "auth/signin", map[string]string{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}

func TestDoNormalizesBackendErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "insufficient funds"}`))
	})

	_, err := client.Do(context.Background(), http.MethodPost, "transaction/createTransfer", map[string]string{}, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "insufficient funds", apiErr.Message)
}

func TestDoMapsAuthFailuresToErrUnauthenticated(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"detail": "not authenticated"}`))
		})

		_, err := client.Do(context.Background(), http.MethodGet, "auth/authenticate", nil, nil)
		assert.True(t, errors.Is(err, domain.ErrUnauthenticated), "status %d should unwrap to ErrUnauthenticated", status)
	}
}

func TestDoDecodesResponseBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accounts": [{"name": "Plaid Checking"}], "total_banks": 1, "total_current_balance": 110.5}`))
	})

	var resp domain.AccountsResponse
	_, err := client.Do(context.Background(), http.MethodGet, "bank/getAccounts", nil, &resp)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalBanks)
	assert.InDelta(t, 110.5, resp.TotalCurrentBalance, 0.001)
	require.Len(t, resp.Accounts, 1)
	assert.Equal(t, "Plaid Checking", resp.Accounts[0].Name)
}

func TestDoReportsTransportFailure(t *testing.T) {
	client := NewClient(&stubConfig{baseURL: "http://127.0.0.1:1"})

	_, err := client.Do(context.Background(), http.MethodGet, "bank/getAccounts", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.False(t, errors.Is(err, domain.ErrUnauthenticated), "transport failures are not auth failures")
}
