package layouts

import (
	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/internal/view"
	"github.com/horizonbank/horizon/web/src/templates/partials"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Shell wraps page content in the full HTML document: head, flash banner,
// and, for signed-in users, the sidebar navigation. The active path
// highlights the matching sidebar entry. Named Shell rather than Base
// because the dot-imported html package already exports Base (the <base>
// element).
func Shell(title string, flash view.FlashData, user *domain.User, activePath string, content gomponents.Node) gomponents.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(gomponents.Text(CalculateTitle(title))),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src("https://unpkg.com/htmx.org@1.9.12")),
				Script(Src("https://unpkg.com/htmx.org@1.9.12/dist/ext/ws.js")),
			),
			Body(
				Class("flex min-h-screen bg-gray-50 font-sans"),
				gomponents.Iff(user != nil, func() gomponents.Node { return partials.Sidebar(user, activePath) }),
				Main(
					Class("flex-1"),
					partials.Flash(flash),
					content,
				),
			),
		),
	)
}

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Horizon"
	}
	return "Horizon"
}
