package handlers

import (
	"log/slog"
	"net/http"

	"github.com/horizonbank/horizon/internal/actions"
	"github.com/horizonbank/horizon/internal/config"
	"github.com/horizonbank/horizon/internal/hub"
	"github.com/horizonbank/horizon/internal/session"
	"github.com/horizonbank/horizon/internal/view"
	"github.com/horizonbank/horizon/web/src/templates/layouts"
	"github.com/horizonbank/horizon/web/src/templates/pages"
	"github.com/horizonbank/horizon/web/src/templates/partials"
	"github.com/labstack/echo/v4"
)

// HomeHandler renders the dashboard and its live-refresh endpoints.
type HomeHandler struct {
	actions  *actions.Service
	sessions *session.Manager
	cfg      config.Provider
	hub      *hub.Hub
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(svc *actions.Service, sessions *session.Manager, cfg config.Provider, h *hub.Hub) *HomeHandler {
	return &HomeHandler{actions: svc, sessions: sessions, cfg: cfg, hub: h}
}

// HomeGet renders the dashboard (GET /). The fetch order is fixed:
// accounts first, then the selected account's detail.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	sess := currentSessionUser(c)

	data, err := loadAccountData(c, h.actions, true)
	if err != nil {
		return renderFetchError(c, h.sessions, err)
	}

	// A failed token creation only disables the connect button; the rest
	// of the dashboard still renders.
	linkToken, err := h.actions.CreateLinkToken(c.Request().Context())
	if err != nil {
		slog.Error("Failed to create link token", "error", err)
		linkToken = ""
	}

	page := currentPage(c)
	if data.Detail != nil {
		page = view.ClampPage(page, view.TotalPages(len(data.Detail.Transactions)))
	}

	content := pages.Home(pages.HomeData{
		User:       sess,
		Accounts:   data.Accounts,
		Detail:     data.Detail,
		SelectedID: data.SelectedID,
		Page:       page,
		LinkToken:  linkToken,
		PlaidEnv:   h.cfg.GetPlaidEnv(),
	})
	return c.Render(http.StatusOK, "", layouts.Shell("Home", view.GetFlashData(c), sess, "/", content))
}

// TotalBalancePartial re-renders the balance box (GET /partials/total-balance).
// The open dashboard fetches it after a WebSocket refresh push.
func (h *HomeHandler) TotalBalancePartial(c echo.Context) error {
	accounts, err := h.actions.GetAccounts(c.Request().Context())
	if err != nil {
		return renderFetchError(c, h.sessions, err)
	}

	linkToken, err := h.actions.CreateLinkToken(c.Request().Context())
	if err != nil {
		slog.Error("Failed to create link token", "error", err)
		linkToken = ""
	}

	return c.Render(http.StatusOK, "", partials.TotalBalanceBox(accounts, linkToken, h.cfg.GetPlaidEnv()))
}

// HomeWS attaches the dashboard to the refresh hub (GET /ws/home).
func (h *HomeHandler) HomeWS(c echo.Context) error {
	return hub.ServeWS(h.hub, c)
}
