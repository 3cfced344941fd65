package partials

import (
	"strconv"

	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/internal/view"
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// TotalBalanceBox shows the backend-computed aggregates: how many banks are
// linked and the combined current balance. The values are rendered as-is,
// never recomputed here.
func TotalBalanceBox(accounts *domain.AccountsResponse, linkToken, plaidEnv string) gomponents.Node {
	return Div(
		ID("total-balance-box"),
		Class("total-balance flex items-center justify-between rounded-xl border bg-white p-6 shadow-sm"),
		Div(
			H2(
				Class("text-lg font-semibold text-gray-900"),
				gomponents.Text("Bank Accounts: "+strconv.Itoa(accounts.TotalBanks)),
			),
			P(Class("mt-1 text-sm text-gray-500"), gomponents.Text("Total Current Balance")),
			P(
				Class("total-balance-amount mt-2 text-3xl font-bold text-gray-900"),
				gomponents.Text(view.FormatAmount(accounts.TotalCurrentBalance)),
			),
		),
		ConnectBank(linkToken, plaidEnv),
	)
}

// TotalBalanceRefresh is the fragment pushed over the WebSocket after a
// bank is linked: an out-of-band element that makes the open page re-fetch
// its balance box instead of showing stale totals.
func TotalBalanceRefresh() gomponents.Node {
	return Div(
		ID("total-balance-box"),
		hx.SwapOOB("true"),
		hx.Get("/partials/total-balance"),
		hx.Trigger("load"),
		hx.Swap("outerHTML"),
		Class("total-balance rounded-xl border bg-white p-6 shadow-sm"),
		P(Class("text-sm text-gray-500"), gomponents.Text("Refreshing accounts…")),
	)
}
