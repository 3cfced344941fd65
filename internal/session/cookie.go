package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the HttpOnly cookie holding the backend session token.
const CookieName = "auth_token"

// SetCookie stores the session token in the auth cookie. An empty token
// expires the cookie immediately, which is how logout clears it.
func SetCookie(c echo.Context, token string) {
	cookie := new(http.Cookie)
	cookie.Name = CookieName
	cookie.Value = token
	cookie.Path = "/"
	if token == "" {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().UTC().Add(24 * time.Hour)
	}
	// HttpOnly keeps the token out of reach of page scripts; Secure is
	// derived from the connection so local development without TLS works.
	cookie.HttpOnly = true
	cookie.Secure = c.Request().TLS != nil
	cookie.SameSite = http.SameSiteLaxMode
	c.SetCookie(cookie)
}

// ClearCookie expires the auth cookie immediately.
func ClearCookie(c echo.Context) {
	SetCookie(c, "")
}

// TokenFromRequest reads the session token from the request cookie, or
// returns the empty string when none is present.
func TokenFromRequest(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}
