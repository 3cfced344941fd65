package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/horizonbank/horizon/internal/actions"
	"github.com/horizonbank/horizon/internal/api"
	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/internal/middleware"
	"github.com/horizonbank/horizon/internal/session"
	"github.com/horizonbank/horizon/internal/view"
	"github.com/horizonbank/horizon/web/src/templates/layouts"
	"github.com/horizonbank/horizon/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// accountData is the result of the fetch sequence every data-bearing page
// shares: the accounts list first, then the selected account's detail.
type accountData struct {
	Accounts   *domain.AccountsResponse
	Detail     *domain.AccountDetail
	SelectedID string
}

// loadAccountData runs the common fetch protocol. The detail fetch depends
// on the accounts list: the selection comes from the `id` query parameter
// when present, else the first account, and is skipped entirely when no
// account is linked yet.
func loadAccountData(c echo.Context, svc *actions.Service, withDetail bool) (*accountData, error) {
	ctx := c.Request().Context()

	accounts, err := svc.GetAccounts(ctx)
	if err != nil {
		return nil, err
	}

	data := &accountData{Accounts: accounts}
	if !withDetail || len(accounts.Accounts) == 0 {
		return data, nil
	}

	data.SelectedID = c.QueryParam("id")
	if data.SelectedID == "" || accounts.FindByShareableID(data.SelectedID) == nil {
		data.SelectedID = accounts.Accounts[0].ShareableID
	}

	detail, err := svc.GetAccount(ctx, data.SelectedID)
	if err != nil {
		return nil, err
	}
	data.Detail = detail
	return data, nil
}

// currentPage reads the 1-based `page` query parameter, defaulting to 1.
func currentPage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// renderFetchError is the shared failure path for page fetch sequences.
// An auth failure means the token died between verify and fetch: clear the
// session and restart at sign-in. Anything else surfaces as a visible
// error state rather than leaving the loading placeholder up forever.
func renderFetchError(c echo.Context, sessions *session.Manager, err error) error {
	if errors.Is(err, domain.ErrUnauthenticated) {
		sessions.Logout(c.Request().Context(), session.TokenFromRequest(c))
		session.ClearCookie(c)
		return c.Redirect(http.StatusSeeOther, "/sign-in")
	}

	sess := currentSessionUser(c)
	content := pages.ErrorState(backendErrorMessage(err))
	return c.Render(http.StatusOK, "", layouts.Shell("Error", view.FlashData{}, sess, c.Path(), content))
}

// currentSessionUser returns the verified user for this request, or nil on
// unprotected routes.
func currentSessionUser(c echo.Context) *domain.User {
	if sess := middleware.CurrentSession(c); sess != nil {
		return sess.User
	}
	return nil
}

// backendErrorMessage returns the human-readable message for a failed call,
// preferring the backend-supplied text over the wrapped status line.
func backendErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
