package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/horizonbank/horizon/internal/actions"
	"github.com/horizonbank/horizon/internal/events"
	"github.com/horizonbank/horizon/internal/pubsub"
	"github.com/horizonbank/horizon/internal/view"
	"github.com/labstack/echo/v4"
)

// PlaidHandler completes the bank linking flow started by the Link widget.
type PlaidHandler struct {
	actions   *actions.Service
	publisher pubsub.Publisher
}

// NewPlaidHandler creates a new PlaidHandler.
func NewPlaidHandler(svc *actions.Service, pub pubsub.Publisher) *PlaidHandler {
	return &PlaidHandler{actions: svc, publisher: pub}
}

// Exchange trades the widget's public token for a permanent backend
// credential (POST /plaid/exchange). Public tokens are single-use and
// short-lived, so failures just send the user back to try again.
func (h *PlaidHandler) Exchange(c echo.Context) error {
	var req ExchangeRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Bank linking was interrupted. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	ctx := c.Request().Context()
	if err := h.actions.ExchangePublicToken(ctx, req.PublicToken); err != nil {
		slog.Error("Public token exchange failed", "error", err)
		view.SetFlashError(c, "Could not link your bank: "+backendErrorMessage(err))
		return c.Redirect(http.StatusSeeOther, "/")
	}

	sess := currentSessionUser(c)
	if err := events.PublishBankLinked(ctx, h.publisher, strconv.Itoa(sess.ID)); err != nil {
		slog.Warn("Failed to publish bank linked event", "error", err)
	}

	view.SetFlashSuccess(c, "Bank linked successfully!")
	return c.Redirect(http.StatusSeeOther, "/")
}
