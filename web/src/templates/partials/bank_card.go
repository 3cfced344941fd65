package partials

import (
	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/internal/view"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// BankCard renders one account as a card. The card links to that account's
// transaction history via its shareable id.
func BankCard(account domain.Account, userName string, showBalance bool) gomponents.Node {
	displayName := account.Name
	if displayName == "" {
		displayName = userName
	}

	return Div(
		Class("flex flex-col"),
		A(
			Href("/transaction-history?id="+account.ShareableID),
			Class("bank-card relative block w-80 rounded-2xl bg-gradient-to-r from-blue-700 to-blue-500 p-5 text-white shadow"),
			Div(
				H2(Class("text-base font-semibold"), gomponents.Text(displayName)),
				P(Class("mt-1 text-xl font-black"), gomponents.Text(view.FormatAmount(account.CurrentBalance))),
			),
			Div(
				Class("mt-6 flex items-center justify-between text-sm font-semibold"),
				Span(gomponents.Text(userName)),
				Span(gomponents.Text("●● / ●●")),
			),
			P(
				Class("mt-2 text-sm font-semibold tracking-widest"),
				gomponents.Text("●●●● ●●●● ●●●● "+account.Mask),
			),
		),
		gomponents.If(showBalance,
			P(Class("mt-2 text-xs text-gray-500"), gomponents.Text(account.ShareableID)),
		),
	)
}
