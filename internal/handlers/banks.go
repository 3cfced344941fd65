package handlers

import (
	"net/http"

	"github.com/horizonbank/horizon/internal/actions"
	"github.com/horizonbank/horizon/internal/session"
	"github.com/horizonbank/horizon/internal/view"
	"github.com/horizonbank/horizon/web/src/templates/layouts"
	"github.com/horizonbank/horizon/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// BanksHandler renders the bank card overview.
type BanksHandler struct {
	actions  *actions.Service
	sessions *session.Manager
}

// NewBanksHandler creates a new BanksHandler.
func NewBanksHandler(svc *actions.Service, sessions *session.Manager) *BanksHandler {
	return &BanksHandler{actions: svc, sessions: sessions}
}

// MyBanksGet renders the card grid (GET /my-banks). This page only needs
// the accounts list, no detail fetch.
func (h *BanksHandler) MyBanksGet(c echo.Context) error {
	sess := currentSessionUser(c)

	accounts, err := h.actions.GetAccounts(c.Request().Context())
	if err != nil {
		return renderFetchError(c, h.sessions, err)
	}

	content := pages.MyBanks(sess, accounts)
	return c.Render(http.StatusOK, "", layouts.Shell("My Banks", view.GetFlashData(c), sess, "/my-banks", content))
}
