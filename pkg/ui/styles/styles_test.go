package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/reactspring/pkg/ui/styles"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{
		"Header", "Section", "Label", "Value",
		"Success", "Error", "Warning", "Info", "Muted",
		"FilePath", "Command", "DryRunBanner",
	} {
		assert.True(t, styles.Has(name), "style %s should be defined", name)
	}
	assert.False(t, styles.Has("Nope"))
}

func TestRenderKeepsText(t *testing.T) {
	assert.Contains(t, styles.Render("Success", "done"), "done")
	assert.Contains(t, styles.Render("Nope", "plain"), "plain")
}

func TestParse(t *testing.T) {
	reg, err := styles.Parse([]byte(`
colors:
  red: {light: "#f00", dark: "#f66"}
styles:
  Alert: {bold: true, foreground: red}
`))
	require.NoError(t, err)
	require.Contains(t, reg, "Alert")
	assert.True(t, reg["Alert"].GetBold())

	_, err = styles.Parse([]byte("styles:\n  Alert: {foreground: blue}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown color "blue"`)

	_, err = styles.Parse([]byte("styles: ["))
	require.Error(t, err)
}
