package middleware

import (
	"log/slog"
	"net/http"

	"github.com/horizonbank/horizon/internal/api"
	"github.com/horizonbank/horizon/internal/session"
	"github.com/labstack/echo/v4"
)

// SessionContextKey is where the resolved session lives in the echo context.
const SessionContextKey = "session"

// RequireSession protects routes that need an authenticated user. It reads
// the auth cookie, verifies the token against the backend, and places the
// resolved session in the context. Protected content is never rendered
// while the session outcome is unknown or negative: any failure performs a
// best-effort logout, clears the cookie, and redirects to the sign-in page.
func RequireSession(manager *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			token := session.TokenFromRequest(c)

			sess, err := manager.Verify(ctx, token)
			if err != nil {
				// Backend unreachable: we cannot distinguish a dead session
				// from a dead backend, so treat it as unauthenticated but
				// log the real cause.
				slog.Error("Session verify failed", "error", err)
			}
			if err != nil || !sess.Authenticated() {
				manager.Logout(ctx, token)
				session.ClearCookie(c)
				return c.Redirect(http.StatusSeeOther, "/sign-in")
			}

			// Downstream fetches reuse the verified token.
			c.SetRequest(c.Request().WithContext(api.WithToken(ctx, sess.Token)))
			c.Set(SessionContextKey, sess)
			return next(c)
		}
	}
}

// CurrentSession retrieves the session placed in the context by
// RequireSession. It returns nil on unprotected routes.
func CurrentSession(c echo.Context) *session.Session {
	sess, _ := c.Get(SessionContextKey).(*session.Session)
	return sess
}
