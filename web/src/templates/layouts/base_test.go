package layouts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"

	"github.com/horizonbank/horizon/internal/domain"
	"github.com/horizonbank/horizon/internal/view"
)

func renderShell(t *testing.T, title string, user *domain.User) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Shell(title, view.FlashData{}, user, "/", gomponents.Text("page body")).Render(&b))
	return b.String()
}

func TestShellWrapsContentInFullDocument(t *testing.T) {
	out := renderShell(t, "Home", &domain.User{FirstName: "Ada", LastName: "Lovelace"})

	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "<title>Home - Horizon</title>")
	assert.Contains(t, out, "page body")
	assert.Contains(t, out, "sidebar", "signed-in pages carry the navigation")
}

func TestShellOmitsSidebarWhenSignedOut(t *testing.T) {
	out := renderShell(t, "Sign In", nil)

	assert.Contains(t, out, "page body")
	assert.NotContains(t, out, "sidebar", "auth pages render without navigation")
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Home - Horizon", CalculateTitle("Home"))
	assert.Equal(t, "Horizon", CalculateTitle(""))
}
