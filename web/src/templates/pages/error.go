package pages

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorState replaces a page's content when a data fetch fails for a
// non-auth reason. The placeholder must never linger: the user either sees
// their data or sees this.
func ErrorState(message string) gomponents.Node {
	return Section(
		Class("error-state mx-auto mt-16 w-full max-w-lg rounded-xl border bg-white p-8 text-center shadow-sm"),
		H1(Class("text-xl font-semibold text-gray-900"), gomponents.Text("Something went wrong")),
		P(Class("mt-2 text-sm text-gray-500"), gomponents.Text(message)),
		A(
			Href("/"),
			Class("mt-6 inline-block rounded-lg bg-blue-600 px-4 py-2 text-sm font-semibold text-white hover:bg-blue-700"),
			gomponents.Text("Back to dashboard"),
		),
	)
}
