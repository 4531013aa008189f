package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cowsay/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range []string{"Bubble", "Figure", "Header", "Name", "Muted", "Error"} {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}

	assert.True(t, styles.GetStyle("Error").GetBold())
}

func TestGetStyle_Unknown(t *testing.T) {
	assert.Equal(t, lipgloss.NewStyle().Render("x"), styles.GetStyle("Nope").Render("x"))
}

func TestLoadStyles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  pink:
    light: "#f0a"
    dark: "#f0a"
styles:
  Bubble:
    italic: true
    foreground: pink
`), 0644))
	t.Cleanup(func() {
		// restore the embedded styles for other tests
		require.NoError(t, styles.LoadStyles(filepath.Join(".", "styles.yaml")))
	})

	require.NoError(t, styles.LoadStyles(path))
	assert.True(t, styles.GetStyle("Bubble").GetItalic())

	assert.Error(t, styles.LoadStyles(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, styles.LoadStylesFromData([]byte("colors: [")))
}
