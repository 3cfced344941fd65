package partials

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ConnectBank renders the Plaid Link button. When no link token could be
// obtained the button renders disabled: the widget must never open without
// a valid token.
func ConnectBank(linkToken, plaidEnv string) gomponents.Node {
	if linkToken == "" {
		return Button(
			ID("connect-bank"),
			Disabled(),
			Class("connect-bank rounded-lg bg-gray-300 px-4 py-2 text-sm font-semibold text-gray-500"),
			gomponents.Text("Connect Bank"),
		)
	}

	return Div(
		Button(
			ID("connect-bank"),
			Class("connect-bank rounded-lg bg-blue-600 px-4 py-2 text-sm font-semibold text-white hover:bg-blue-700"),
			gomponents.Text("Connect Bank"),
		),
		Script(Src("https://cdn.plaid.com/link/v2/stable/link-initialize.js")),
		Script(gomponents.Rawf(`
(function () {
  var handler = Plaid.create({
    token: %q,
    env: %q,
    onSuccess: function (publicToken) {
      var form = document.createElement("form");
      form.method = "POST";
      form.action = "/plaid/exchange";
      var input = document.createElement("input");
      input.type = "hidden";
      input.name = "public_token";
      input.value = publicToken;
      form.appendChild(input);
      document.body.appendChild(form);
      form.submit();
    },
  });
  document.getElementById("connect-bank").addEventListener("click", function () {
    handler.open();
  });
})();`, linkToken, plaidEnv)),
	)
}
