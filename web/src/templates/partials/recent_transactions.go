package partials

import (
	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/internal/view"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// RecentTransactions renders the home page's transaction panel: one tab per
// account (selection travels through the `id` query parameter), the
// selected account's summary, a page of its transactions, and a pager when
// the list spans more than one page.
func RecentTransactions(accounts []domain.Account, transactions []domain.Transaction, selectedID string, page int) gomponents.Node {
	totalPages := view.TotalPages(len(transactions))
	visible := view.Paginate(transactions, page)

	tabs := make([]gomponents.Node, 0, len(accounts))
	var selected *domain.Account
	for i := range accounts {
		account := &accounts[i]
		class := "account-tab rounded-t-lg px-4 py-2 text-sm text-gray-600 hover:text-blue-700"
		if account.ShareableID == selectedID {
			class += " border-b-2 border-blue-600 font-semibold text-blue-700"
			selected = account
		}
		tabs = append(tabs, A(Href("/?id="+account.ShareableID), Class(class), gomponents.Text(account.Name)))
	}

	return Section(
		Class("recent-transactions rounded-xl border bg-white p-6 shadow-sm"),
		Header(
			Class("flex items-center justify-between"),
			H2(Class("text-lg font-semibold text-gray-900"), gomponents.Text("Recent transactions")),
			A(
				Href("/transaction-history?id="+selectedID),
				Class("view-all rounded-lg border px-3 py-1.5 text-sm text-gray-700 hover:bg-gray-100"),
				gomponents.Text("View all"),
			),
		),
		Div(Class("mt-4 flex gap-2 border-b"), gomponents.Group(tabs)),
		gomponents.Iff(selected != nil, func() gomponents.Node { return accountSummary(selected) }),
		Div(Class("mt-4"), TransactionsTable(visible)),
		gomponents.If(totalPages > 1,
			Div(Class("my-4 w-full"), Pagination("/", selectedID, page, totalPages)),
		),
	)
}

func accountSummary(account *domain.Account) gomponents.Node {
	return Div(
		Class("account-summary mt-4 flex items-center justify-between rounded-lg bg-blue-50 p-4"),
		Div(
			H3(Class("font-semibold text-blue-900"), gomponents.Text(account.Name)),
			P(Class("text-sm text-blue-700"), gomponents.Text(account.OfficialName)),
		),
		P(Class("text-lg font-bold text-blue-900"), gomponents.Text(view.FormatAmount(account.CurrentBalance))),
	)
}
