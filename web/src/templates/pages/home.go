package pages

import (
	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/web/src/templates/partials"
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// HomeData is the view model for the dashboard page.
type HomeData struct {
	User     *domain.User
	Accounts *domain.AccountsResponse
	// Detail is the selected account's transaction history; nil when no
	// account is linked yet.
	Detail     *domain.AccountDetail
	SelectedID string
	Page       int
	LinkToken  string
	PlaidEnv   string
}

// Home renders the dashboard: greeting, balance totals, recent
// transactions for the selected account, and the bank-card sidebar. The
// page holds a WebSocket open so a bank linked in another tab refreshes
// the totals without a reload.
func Home(data HomeData) gomponents.Node {
	var transactions []domain.Transaction
	if data.Detail != nil {
		transactions = data.Detail.Transactions
	}

	banks := data.Accounts.Accounts
	if len(banks) > 2 {
		banks = banks[:2]
	}
	cards := make([]gomponents.Node, 0, len(banks))
	for _, account := range banks {
		cards = append(cards, partials.BankCard(account, data.User.DisplayName(), false))
	}

	return Section(
		Class("home flex w-full"),
		hx.Ext("ws"),
		gomponents.Attr("ws-connect", "/ws/home"),
		Div(
			Class("home-content flex-1 space-y-6 p-8"),
			Header(
				Class("home-header"),
				H1(
					Class("text-3xl font-semibold text-gray-900"),
					gomponents.Text("Welcome, "),
					Span(Class("text-blue-700"), gomponents.Text(data.User.DisplayName())),
				),
				P(
					Class("mt-1 text-sm text-gray-500"),
					gomponents.Text("Access and manage your account and transactions efficiently."),
				),
			),
			partials.TotalBalanceBox(data.Accounts, data.LinkToken, data.PlaidEnv),
			partials.RecentTransactions(data.Accounts.Accounts, transactions, data.SelectedID, data.Page),
		),
		Aside(
			Class("right-sidebar w-96 space-y-6 border-l bg-white p-6"),
			H2(Class("text-lg font-semibold text-gray-900"), gomponents.Text("My Banks")),
			gomponents.Group(cards),
		),
	)
}
