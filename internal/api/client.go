package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/horizonbank/horizon/internal/config"
)

// sessionCookieName is the name of the credential cookie the backend issues
// on sign-in and expects back on every authenticated call.
const sessionCookieName = "jwt"

type tokenKey struct{}

// WithToken returns a context carrying the session token for outbound calls.
// The middleware attaches the current user's token once per request; every
// action performed during that request reuses it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the session token, if any, from the context.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client wraps outbound calls to the backend REST API. It normalizes
// parameter placement (query string for GET, JSON body otherwise) and
// failure shapes (every error is an *Error). It performs no retries and
// no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend API client from the application configuration.
func NewClient(cfg config.Provider) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.GetAPIBaseURL(), "/") + "/",
		httpClient: &http.Client{
			Timeout: cfg.GetRequestTimeout(),
		},
	}
}

// Do performs a call against the backend. For GET, data is encoded as query
// parameters; for body-carrying methods it is sent as JSON. A 2xx response
// body is decoded into out when out is non-nil. The returned token is the
// value of any session cookie the backend set on this response (sign-in and
// sign-up responses carry one; it is empty otherwise).
func (c *Client) Do(ctx context.Context, method, path string, data any, out any) (string, error) {
	req, err := c.newRequest(ctx, method, path, data)
	if err != nil {
		return "", &Error{Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{Status: resp.StatusCode, Message: backendMessage(body, resp.Status)}
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return "", &Error{Message: fmt.Sprintf("decoding %s response: %v", path, err)}
		}
	}

	return sessionToken(resp), nil
}

// newRequest builds the outbound request, placing data according to the
// method and attaching the session credential from the context.
func (c *Client) newRequest(ctx context.Context, method, path string, data any) (*http.Request, error) {
	target := c.baseURL + strings.TrimLeft(path, "/")

	var body io.Reader
	if method == http.MethodGet {
		if params, ok := data.(map[string]string); ok && len(params) > 0 {
			values := url.Values{}
			for k, v := range params {
				values.Set(k, v)
			}
			target += "?" + values.Encode()
		}
	} else if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := TokenFromContext(ctx); token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
	return req, nil
}

// backendMessage extracts the human-readable message from an error body.
// The backend reports failures as {"detail": "..."}; some code paths use
// {"error": "..."} instead. Fall back to the HTTP status line.
func backendMessage(body []byte, statusLine string) string {
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return statusLine
}

// sessionToken returns the value of the backend's session cookie on this
// response, if it set one.
func sessionToken(resp *http.Response) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie.Value
		}
	}
	return ""
}
