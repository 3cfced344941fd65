package partials

import (
	"time"

	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/internal/view"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TransactionsTable renders one page of ledger entries: name, signed
// amount, status badge, date, channel, and category.
func TransactionsTable(transactions []domain.Transaction) gomponents.Node {
	now := time.Now()

	rows := make([]gomponents.Node, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, transactionRow(t, now))
	}

	return Table(
		Class("transactions-table w-full border-collapse text-left text-sm"),
		THead(
			Class("bg-gray-50 text-gray-600"),
			Tr(
				Th(Class("px-2 py-3"), gomponents.Text("Transaction")),
				Th(Class("px-2 py-3"), gomponents.Text("Amount")),
				Th(Class("px-2 py-3"), gomponents.Text("Status")),
				Th(Class("px-2 py-3"), gomponents.Text("Date")),
				Th(Class("px-2 py-3"), gomponents.Text("Channel")),
				Th(Class("px-2 py-3"), gomponents.Text("Category")),
			),
		),
		TBody(gomponents.Group(rows)),
	)
}

func transactionRow(t domain.Transaction, now time.Time) gomponents.Node {
	amount := view.FormatAmount(t.Amount)
	rowClass := "border-b bg-green-50/30"
	amountClass := "px-2 py-3 font-semibold text-green-700"
	if t.IsDebit() {
		amount = "-" + amount
		rowClass = "border-b bg-red-50/30"
		amountClass = "px-2 py-3 font-semibold text-red-600"
	}

	return Tr(
		Class(rowClass),
		Td(
			Class("max-w-[250px] truncate px-2 py-3 font-semibold text-gray-800"),
			gomponents.Text(view.RemoveSpecialCharacters(t.Name)),
		),
		Td(Class(amountClass), gomponents.Text(amount)),
		Td(Class("px-2 py-3"), statusBadge(view.TransactionStatus(t.Date, now))),
		Td(Class("px-2 py-3 text-gray-500"), gomponents.Text(view.FormatDateTime(t.Date))),
		Td(Class("px-2 py-3 capitalize text-gray-500"), gomponents.Text(t.PaymentChannel)),
		Td(Class("px-2 py-3"), categoryBadge(t.Category)),
	)
}

func statusBadge(status string) gomponents.Node {
	class := "status-badge inline-block rounded-full px-2 py-0.5 text-xs font-medium"
	if status == view.StatusSuccess {
		class += " bg-green-100 text-green-700"
	} else {
		class += " bg-gray-100 text-gray-600"
	}
	return Span(Class(class), gomponents.Text(status))
}

func categoryBadge(category string) gomponents.Node {
	return Span(
		Class("category-badge inline-block rounded-full border px-2 py-0.5 text-xs font-medium text-gray-600"),
		gomponents.Text(category),
	)
}
