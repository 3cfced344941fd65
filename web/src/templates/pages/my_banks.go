package pages

import (
	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/web/src/templates/partials"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// MyBanks renders the bank card grid, one card per linked account.
func MyBanks(user *domain.User, accounts *domain.AccountsResponse) gomponents.Node {
	cards := make([]gomponents.Node, 0, len(accounts.Accounts))
	for _, account := range accounts.Accounts {
		cards = append(cards, partials.BankCard(account, user.DisplayName(), true))
	}

	return Section(
		Class("my-banks flex-1 space-y-6 p-8"),
		Header(
			H1(Class("text-3xl font-semibold text-gray-900"), gomponents.Text("My Bank Accounts")),
			P(Class("mt-1 text-sm text-gray-500"), gomponents.Text("Effortlessly manage your banking activities.")),
		),
		Div(
			Class("space-y-4"),
			H2(Class("text-lg font-semibold text-gray-900"), gomponents.Text("Your cards")),
			Div(Class("flex flex-wrap gap-6"), gomponents.Group(cards)),
		),
	)
}
