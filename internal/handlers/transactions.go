package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/horizonbank/horizon/internal/actions"
	"github.com/horizonbank/horizon/internal/export"
	"github.com/horizonbank/horizon/internal/session"
	"github.com/horizonbank/horizon/internal/view"
	"github.com/horizonbank/horizon/web/src/templates/layouts"
	"github.com/horizonbank/horizon/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// TransactionsHandler renders the transaction history page and serves
// statement downloads.
type TransactionsHandler struct {
	actions  *actions.Service
	sessions *session.Manager
	exporter *export.Exporter
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(svc *actions.Service, sessions *session.Manager, exporter *export.Exporter) *TransactionsHandler {
	return &TransactionsHandler{actions: svc, sessions: sessions, exporter: exporter}
}

// HistoryGet renders the ledger for the selected account
// (GET /transaction-history).
func (h *TransactionsHandler) HistoryGet(c echo.Context) error {
	sess := currentSessionUser(c)

	data, err := loadAccountData(c, h.actions, true)
	if err != nil {
		return renderFetchError(c, h.sessions, err)
	}
	if data.Detail == nil {
		content := pages.ErrorState("No bank account linked yet. Connect a bank from the dashboard first.")
		return c.Render(http.StatusOK, "", layouts.Shell("Transaction History", view.GetFlashData(c), sess, "/transaction-history", content))
	}

	content := pages.TransactionHistory(pages.TransactionHistoryData{
		Detail: data.Detail,
		Page:   view.ClampPage(currentPage(c), view.TotalPages(len(data.Detail.Transactions))),
	})
	return c.Render(http.StatusOK, "", layouts.Shell("Transaction History", view.GetFlashData(c), sess, "/transaction-history", content))
}

// ExportCSV streams the selected account's full ledger as a CSV download
// (GET /transaction-history/export). The file is spooled, served, and
// removed; nothing lingers between requests.
func (h *TransactionsHandler) ExportCSV(c echo.Context) error {
	data, err := loadAccountData(c, h.actions, true)
	if err != nil {
		return renderFetchError(c, h.sessions, err)
	}
	if data.Detail == nil {
		return c.Redirect(http.StatusSeeOther, "/transaction-history")
	}

	path, filename, err := h.exporter.TransactionsCSV(data.Detail.Data, data.Detail.Transactions)
	if err != nil {
		slog.Error("Failed to write statement export", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not generate export")
	}
	defer func() {
		if err := h.exporter.Remove(path); err != nil {
			slog.Warn("Failed to remove statement spool file", "path", path, "error", err)
		}
	}()

	f, err := h.exporter.Open(path)
	if err != nil {
		slog.Error("Failed to open statement export", "path", path, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not generate export")
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().WriteHeader(http.StatusOK)
	_, err = io.Copy(c.Response(), f)
	return err
}
