package pages

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SignUpData pre-fills the form after a failed submission. The password is
// never round-tripped.
type SignUpData struct {
	FirstName   string
	LastName    string
	Email       string
	Address1    string
	City        string
	State       string
	PostalCode  string
	DateOfBirth string
}

// SignUp renders the registration form.
func SignUp(data SignUpData) gomponents.Node {
	return Section(
		Class("auth-page mx-auto mt-10 w-full max-w-lg rounded-xl border bg-white p-8 shadow-sm"),
		H1(Class("text-2xl font-bold text-gray-900"), gomponents.Text("Sign Up")),
		P(Class("mt-1 text-sm text-gray-500"), gomponents.Text("Create your account to start linking banks.")),
		Form(
			Method("post"),
			Action("/sign-up"),
			Class("mt-6 space-y-4"),
			Div(
				Class("grid grid-cols-2 gap-4"),
				field("First Name", Input(Type("text"), Name("first_name"), Value(data.FirstName), Required(), inputClass())),
				field("Last Name", Input(Type("text"), Name("last_name"), Value(data.LastName), Required(), inputClass())),
			),
			field("Email", Input(Type("email"), Name("email"), Value(data.Email), Required(), inputClass())),
			field("Password", Input(Type("password"), Name("password"), Required(), inputClass())),
			field("Address", Input(Type("text"), Name("address1"), Value(data.Address1), inputClass())),
			Div(
				Class("grid grid-cols-3 gap-4"),
				field("City", Input(Type("text"), Name("city"), Value(data.City), inputClass())),
				field("State", Input(Type("text"), Name("state"), Value(data.State), inputClass())),
				field("Postal Code", Input(Type("text"), Name("postal_code"), Value(data.PostalCode), inputClass())),
			),
			field("Date of Birth", Input(Type("date"), Name("date_of_birth"), Value(data.DateOfBirth), inputClass())),
			Button(
				Type("submit"),
				Class("w-full rounded-lg bg-blue-600 px-4 py-2 font-semibold text-white hover:bg-blue-700"),
				gomponents.Text("Sign Up"),
			),
		),
		P(
			Class("mt-4 text-center text-sm text-gray-500"),
			gomponents.Text("Already have an account? "),
			A(Href("/sign-in"), Class("font-semibold text-blue-600"), gomponents.Text("Sign in")),
		),
	)
}
