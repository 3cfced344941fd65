package partials

import (
	"github.com/horizonbank/horizon/internal/view"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Flash renders the one-shot success and error banners, or nothing when
// there are no messages to show.
func Flash(data view.FlashData) gomponents.Node {
	if len(data.Success) == 0 && len(data.Error) == 0 {
		return nil
	}
	return Div(
		Class("flash-messages px-8 pt-4 space-y-2"),
		gomponents.Group(flashList(data.Success, "flash-success rounded-lg bg-green-50 p-3 text-sm text-green-700")),
		gomponents.Group(flashList(data.Error, "flash-error rounded-lg bg-red-50 p-3 text-sm text-red-700")),
	)
}

func flashList(messages []string, class string) []gomponents.Node {
	nodes := make([]gomponents.Node, 0, len(messages))
	for _, msg := range messages {
		nodes = append(nodes, Div(Class(class), gomponents.Text(msg)))
	}
	return nodes
}
