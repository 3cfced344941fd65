package pages

import (
	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/internal/view"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PaymentTransferData is the view model for the transfer form.
type PaymentTransferData struct {
	Accounts *domain.AccountsResponse
	// Pre-filled values after a failed submission.
	SourceID      string
	DestinationID string
	Amount        string
	Email         string
	Note          string
}

// PaymentTransfer renders the fund transfer form. The source dropdown
// lists the user's own accounts; the destination is another account's
// shareable id.
func PaymentTransfer(data PaymentTransferData) gomponents.Node {
	options := make([]gomponents.Node, 0, len(data.Accounts.Accounts))
	for _, account := range data.Accounts.Accounts {
		options = append(options, Option(
			Value(account.ShareableID),
			gomponents.If(account.ShareableID == data.SourceID, Selected()),
			gomponents.Text(account.Name+" — "+view.FormatAmount(account.CurrentBalance)),
		))
	}

	return Section(
		Class("payment-transfer flex-1 space-y-6 p-8"),
		Header(
			H1(Class("text-3xl font-semibold text-gray-900"), gomponents.Text("Payment Transfer")),
			P(
				Class("mt-1 text-sm text-gray-500"),
				gomponents.Text("Please provide any specific details or notes related to the payment transfer"),
			),
		),
		Form(
			Method("post"),
			Action("/payment-transfer"),
			Class("max-w-xl space-y-4 pt-5"),
			field("Source Bank",
				Select(Name("source_id"), Required(), inputClass(), gomponents.Group(options)),
			),
			field("Recipient's Email", Input(Type("email"), Name("email"), Value(data.Email), inputClass())),
			field("Recipient's Shareable Id",
				Input(Type("text"), Name("destination_id"), Value(data.DestinationID), Required(), inputClass()),
			),
			field("Amount",
				Input(Type("text"), Name("amount"), Value(data.Amount), Placeholder("5.00"), Required(), inputClass()),
			),
			field("Transfer Note",
				Textarea(Name("note"), Rows("3"), inputClass(), gomponents.Text(data.Note)),
			),
			Button(
				Type("submit"),
				Class("w-full rounded-lg bg-blue-600 px-4 py-2 font-semibold text-white hover:bg-blue-700"),
				gomponents.Text("Transfer Funds"),
			),
		),
	)
}
