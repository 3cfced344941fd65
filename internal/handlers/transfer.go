package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/horizonbank/horizon/internal/actions"
	"github.com/horizonbank/horizon/internal/events"
	"github.com/horizonbank/horizon/internal/pubsub"
	"github.com/horizonbank/horizon/internal/session"
	"github.com/horizonbank/horizon/internal/view"
	"github.com/horizonbank/horizon/web/src/templates/layouts"
	"github.com/horizonbank/horizon/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// TransferHandler renders the transfer form and drives the two-step
// transfer flow against the backend.
type TransferHandler struct {
	actions   *actions.Service
	sessions  *session.Manager
	publisher pubsub.Publisher
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(svc *actions.Service, sessions *session.Manager, pub pubsub.Publisher) *TransferHandler {
	return &TransferHandler{actions: svc, sessions: sessions, publisher: pub}
}

// TransferGet renders the transfer form (GET /payment-transfer).
func (h *TransferHandler) TransferGet(c echo.Context) error {
	data, err := loadAccountData(c, h.actions, false)
	if err != nil {
		return renderFetchError(c, h.sessions, err)
	}
	return h.renderForm(c, pages.PaymentTransferData{Accounts: data.Accounts})
}

// TransferPost handles the transfer form submission. The funds move first;
// the ledger entry is only recorded once the processor accepts the
// transfer. A bad destination id fails the flow before any money moves.
func (h *TransferHandler) TransferPost(c echo.Context) error {
	var req TransferRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/payment-transfer")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Please check the highlighted fields and try again.")
		return h.renderFormWith(c, req)
	}

	ctx := c.Request().Context()

	accounts, err := h.actions.GetAccounts(ctx)
	if err != nil {
		return renderFetchError(c, h.sessions, err)
	}

	// The source must be one of the user's own accounts. The dropdown
	// enforces that in the browser; this enforces it for everyone else.
	source := accounts.FindByShareableID(req.SourceID)
	if source == nil || source.FundingSourceURL == "" {
		view.SetFlashError(c, "The selected source account cannot send transfers.")
		return h.renderFormWith(c, req)
	}

	destination, err := h.actions.GetAccount(ctx, req.DestinationID)
	if err != nil {
		slog.Warn("Transfer destination lookup failed", "destination_id", req.DestinationID, "error", err)
		view.SetFlashError(c, "We couldn't find an account with that shareable id.")
		return h.renderFormWith(c, req)
	}
	if destination.Data.FundingSourceURL == "" {
		view.SetFlashError(c, "The destination account cannot receive transfers.")
		return h.renderFormWith(c, req)
	}

	if _, err := h.actions.CreateTransfer(ctx, actions.TransferParams{
		SourceFundingSourceURL:      source.FundingSourceURL,
		DestinationFundingSourceURL: destination.Data.FundingSourceURL,
		Amount:                      req.Amount,
	}); err != nil {
		slog.Error("Transfer failed", "source", req.SourceID, "error", err)
		view.SetFlashError(c, "Transfer failed: "+backendErrorMessage(err))
		return h.renderFormWith(c, req)
	}

	sess := currentSessionUser(c)
	amount, _ := strconv.ParseFloat(req.Amount, 64)
	// The backend has no shareable-id-to-user lookup, so the receiving
	// user's id cannot be filled in here and the entry carries bank ids
	// only. Incoming transfers therefore do not show in the receiver's
	// own history.
	if _, err := h.actions.CreateTransaction(ctx, actions.TransactionParams{
		Name:           transferName(req.Note),
		Amount:         amount,
		SenderID:       sess.ID,
		Email:          req.Email,
		SenderBankID:   source.BankID,
		ReceiverBankID: destination.Data.BankID,
	}); err != nil {
		// The money already moved. Surface the bookkeeping failure but
		// do not pretend the transfer did not happen.
		slog.Error("Transfer succeeded but ledger entry failed", "source", req.SourceID, "error", err)
		view.SetFlashError(c, "Transfer sent, but it may take a moment to appear in your history.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := events.PublishTransferCreated(ctx, h.publisher, events.TransferCreated{
		UserID:        strconv.Itoa(sess.ID),
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Amount:        req.Amount,
	}); err != nil {
		slog.Warn("Failed to publish transfer event", "error", err)
	}

	view.SetFlashSuccess(c, "Transfer sent successfully!")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *TransferHandler) renderForm(c echo.Context, data pages.PaymentTransferData) error {
	sess := currentSessionUser(c)
	content := pages.PaymentTransfer(data)
	return c.Render(http.StatusOK, "", layouts.Shell("Payment Transfer", view.GetFlashData(c), sess, "/payment-transfer", content))
}

// renderFormWith re-renders the form with the submitted values preserved.
func (h *TransferHandler) renderFormWith(c echo.Context, req TransferRequest) error {
	accounts, err := h.actions.GetAccounts(c.Request().Context())
	if err != nil {
		return renderFetchError(c, h.sessions, err)
	}
	return h.renderForm(c, pages.PaymentTransferData{
		Accounts:      accounts,
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Amount:        req.Amount,
		Email:         req.Email,
		Note:          req.Note,
	})
}

func transferName(note string) string {
	if note == "" {
		return "Transfer"
	}
	return note
}
