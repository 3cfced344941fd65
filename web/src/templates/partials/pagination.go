package partials

import (
	"fmt"
	"net/url"
	"strconv"

	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Pagination renders the pager for a transaction list. Callers only mount
// it when there is more than one page. The selected account id is
// round-tripped so paging never loses the selection.
func Pagination(basePath, shareableID string, page, totalPages int) gomponents.Node {
	prev := pageLink(basePath, shareableID, page-1, "Prev", page > 1)
	next := pageLink(basePath, shareableID, page+1, "Next", page < totalPages)

	return Div(
		Class("pagination flex items-center justify-between"),
		prev,
		P(
			Class("text-sm text-gray-600"),
			gomponents.Text(fmt.Sprintf("Page %d of %d", page, totalPages)),
		),
		next,
	)
}

func pageLink(basePath, shareableID string, page int, label string, enabled bool) gomponents.Node {
	if !enabled {
		return Span(Class("rounded-lg px-3 py-1.5 text-sm text-gray-300"), gomponents.Text(label))
	}

	values := url.Values{}
	if shareableID != "" {
		values.Set("id", shareableID)
	}
	values.Set("page", strconv.Itoa(page))

	return A(
		Href(basePath+"?"+values.Encode()),
		Class("rounded-lg border px-3 py-1.5 text-sm text-gray-700 hover:bg-gray-100"),
		gomponents.Text(label),
	)
}
