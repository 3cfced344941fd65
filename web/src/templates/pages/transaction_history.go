package pages

import (
	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/internal/view"
	"github.com/horizonbank/horizon/web/src/templates/partials"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TransactionHistoryData is the view model for the history page.
type TransactionHistoryData struct {
	Detail *domain.AccountDetail
	Page   int
}

// TransactionHistory renders the selected account's summary and its full
// ledger, ten rows per page.
func TransactionHistory(data TransactionHistoryData) gomponents.Node {
	account := data.Detail.Data
	totalPages := view.TotalPages(len(data.Detail.Transactions))
	visible := view.Paginate(data.Detail.Transactions, data.Page)

	return Div(
		Class("transactions flex-1 space-y-6 p-8"),
		Header(
			H1(Class("text-3xl font-semibold text-gray-900"), gomponents.Text("Transaction History")),
			P(Class("mt-1 text-sm text-gray-500"), gomponents.Text("See your bank details and transactions.")),
		),
		Div(
			Class("transactions-account flex items-center justify-between rounded-xl bg-blue-600 p-6 text-white"),
			Div(
				Class("flex flex-col gap-2"),
				H2(Class("text-lg font-bold"), gomponents.Text(account.Name)),
				P(Class("text-sm text-blue-100"), gomponents.Text(account.OfficialName)),
				P(
					Class("text-sm font-semibold tracking-widest"),
					gomponents.Text("●●●● ●●●● ●●●● "+account.Mask),
				),
			),
			Div(
				Class("rounded-lg bg-blue-700/60 p-4 text-center"),
				P(Class("text-sm"), gomponents.Text("Current balance")),
				P(Class("text-2xl font-bold"), gomponents.Text(view.FormatAmount(account.CurrentBalance))),
			),
		),
		Div(
			Class("flex justify-end"),
			A(
				Href("/transaction-history/export?id="+account.ShareableID),
				Class("rounded-lg border px-3 py-1.5 text-sm text-gray-700 hover:bg-gray-100"),
				gomponents.Text("Export CSV"),
			),
		),
		Section(
			Class("flex w-full flex-col gap-6"),
			partials.TransactionsTable(visible),
			gomponents.If(totalPages > 1,
				Div(Class("my-4 w-full"), partials.Pagination("/transaction-history", account.ShareableID, data.Page, totalPages)),
			),
		),
	)
}
