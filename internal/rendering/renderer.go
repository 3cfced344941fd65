package rendering

import (
	"bytes"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// Renderer renders gomponents trees either as full pages or as standalone
// fragments for the WebSocket push channel.
type Renderer interface {
	// RenderComponent renders a component to bytes, for fragments pushed
	// over the hub.
	RenderComponent(component g.Node) ([]byte, error)

	// RenderPage writes a full-page response through Echo's context.
	RenderPage(c echo.Context, status int, component g.Node) error
}

// GomponentsRenderer is the concrete Renderer. It also satisfies
// echo.Renderer so handlers can use c.Render directly.
type GomponentsRenderer struct{}

// New creates a new GomponentsRenderer.
func New() *GomponentsRenderer {
	return &GomponentsRenderer{}
}

// RenderComponent implements the Renderer interface.
func (r *GomponentsRenderer) RenderComponent(component g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := component.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface for full HTTP responses.
func (r *GomponentsRenderer) RenderPage(c echo.Context, status int, component g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(status)
	return component.Render(c.Response().Writer)
}

// Render implements the echo.Renderer interface; the component is passed as
// the data parameter and the template name is ignored.
func (r *GomponentsRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	component, ok := data.(g.Node)
	if !ok {
		return fmt.Errorf("unsupported component type: %T, expected gomponents.Node", data)
	}
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTML)
	}
	return component.Render(w)
}
