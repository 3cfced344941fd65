package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/horizonbank/horizon/internal/actions"
	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/internal/session"
	"github.com/horizonbank/horizon/internal/view"
	"github.com/horizonbank/horizon/web/src/templates/layouts"
	"github.com/horizonbank/horizon/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles the sign-in, sign-up, and logout routes.
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// SignInGet renders the sign-in page (GET /sign-in).
func (h *AuthHandler) SignInGet(c echo.Context) error {
	flashes := view.GetFlashData(c)
	content := pages.SignIn(pages.SignInData{Email: c.QueryParam("email")})
	return c.Render(http.StatusOK, "", layouts.Shell("Sign In", flashes, nil, "", content))
}

// SignInPost handles the sign-in form submission.
func (h *AuthHandler) SignInPost(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/sign-in")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Please enter a valid email and password.")
		return c.Redirect(http.StatusSeeOther, "/sign-in")
	}

	sess, err := h.sessions.SignIn(c.Request().Context(), actions.SignInParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		slog.Warn("Failed sign-in attempt", "email", req.Email, "error", err)
		if errors.Is(err, domain.ErrUnauthenticated) {
			view.SetFlashError(c, "Invalid email or password.")
		} else {
			view.SetFlashError(c, "Could not sign you in. Please try again.")
		}
		return c.Redirect(http.StatusSeeOther, "/sign-in")
	}

	session.SetCookie(c, sess.Token)
	view.SetFlashSuccess(c, "Logged in successfully!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// SignUpGet renders the registration page (GET /sign-up).
func (h *AuthHandler) SignUpGet(c echo.Context) error {
	flashes := view.GetFlashData(c)
	content := pages.SignUp(pages.SignUpData{})
	return c.Render(http.StatusOK, "", layouts.Shell("Sign Up", flashes, nil, "", content))
}

// SignUpPost handles the registration form submission.
func (h *AuthHandler) SignUpPost(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/sign-up")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Please check the highlighted fields and try again.")
		return c.Redirect(http.StatusSeeOther, "/sign-up")
	}

	sess, err := h.sessions.SignUp(c.Request().Context(), actions.SignUpParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		Address1:    req.Address1,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		slog.Error("Error creating user", "error", err)
		view.SetFlashError(c, "Could not create your account: "+backendErrorMessage(err))
		return c.Redirect(http.StatusSeeOther, "/sign-up")
	}

	session.SetCookie(c, sess.Token)
	view.SetFlashSuccess(c, "Account created successfully!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout invalidates the backend session and clears the local cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context(), session.TokenFromRequest(c))
	session.ClearCookie(c)
	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/sign-in")
}
