package pages

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SignInData pre-fills the form after a failed submission.
type SignInData struct {
	Email string
}

// SignIn renders the sign-in form.
func SignIn(data SignInData) gomponents.Node {
	return Section(
		Class("auth-page mx-auto mt-16 w-full max-w-md rounded-xl border bg-white p-8 shadow-sm"),
		H1(Class("text-2xl font-bold text-gray-900"), gomponents.Text("Sign In")),
		P(Class("mt-1 text-sm text-gray-500"), gomponents.Text("Welcome back. Please enter your details.")),
		Form(
			Method("post"),
			Action("/sign-in"),
			Class("mt-6 space-y-4"),
			field("Email", Input(Type("email"), Name("email"), Value(data.Email), Required(), inputClass())),
			field("Password", Input(Type("password"), Name("password"), Required(), inputClass())),
			Button(
				Type("submit"),
				Class("w-full rounded-lg bg-blue-600 px-4 py-2 font-semibold text-white hover:bg-blue-700"),
				gomponents.Text("Sign In"),
			),
		),
		P(
			Class("mt-4 text-center text-sm text-gray-500"),
			gomponents.Text("Don't have an account? "),
			A(Href("/sign-up"), Class("font-semibold text-blue-600"), gomponents.Text("Sign up")),
		),
	)
}

func field(label string, input gomponents.Node) gomponents.Node {
	return Label(
		Class("block"),
		Span(Class("text-sm font-medium text-gray-700"), gomponents.Text(label)),
		input,
	)
}

func inputClass() gomponents.Node {
	return Class("mt-1 w-full rounded-lg border px-3 py-2 text-sm focus:border-blue-500 focus:outline-none")
}
