package partials

import (
	"github.com/horizonbank/horizon/internal/domain"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	Route string
	Label string
}

var sidebarLinks = []navLink{
	{Route: "/", Label: "Home"},
	{Route: "/my-banks", Label: "My Banks"},
	{Route: "/transaction-history", Label: "Transaction History"},
	{Route: "/payment-transfer", Label: "Transfer Funds"},
}

// Sidebar renders the left navigation for signed-in users.
func Sidebar(user *domain.User, activePath string) gomponents.Node {
	links := make([]gomponents.Node, 0, len(sidebarLinks)+1)
	for _, link := range sidebarLinks {
		class := "sidebar-link block rounded-lg px-4 py-2 text-gray-700 hover:bg-gray-100"
		if link.Route == activePath {
			class += " bg-blue-50 font-semibold text-blue-700"
		}
		links = append(links, A(Href(link.Route), Class(class), gomponents.Text(link.Label)))
	}
	links = append(links,
		A(Href("/logout"), Class("sidebar-link block rounded-lg px-4 py-2 text-gray-500 hover:bg-gray-100"), gomponents.Text("Logout")),
	)

	return Nav(
		Class("sidebar w-64 border-r bg-white p-6"),
		Div(
			Class("mb-8"),
			H1(Class("text-2xl font-bold text-blue-700"), gomponents.Text("Horizon")),
			P(Class("mt-1 text-sm text-gray-500"), gomponents.Text(user.FirstName+" "+user.LastName)),
		),
		Div(Class("space-y-1"), gomponents.Group(links)),
	)
}
