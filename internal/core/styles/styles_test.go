package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()

	assert.IsIncreasing(t, names)
	assert.Contains(t, names, DefaultTheme)
	assert.Contains(t, names, LightTheme)
}

func TestPaletteFor(t *testing.T) {
	gruvbox, ok := GetPalette("gruvbox")
	require.True(t, ok)
	light, ok := GetPalette(LightTheme)
	require.True(t, ok)
	def, ok := GetPalette(DefaultTheme)
	require.True(t, ok)

	assert.Equal(t, gruvbox, PaletteFor("gruvbox", true))
	assert.Equal(t, light, PaletteFor("gruvbox", false))
	assert.Equal(t, def, PaletteFor("no-such-theme", true))
}

func TestSetTheme_IsDark(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	SetTheme(PaletteFor(DefaultTheme, true))
	assert.True(t, IsDark())

	SetTheme(PaletteFor(DefaultTheme, false))
	assert.False(t, IsDark())
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	SetTheme(themes["gruvbox"])
	cfg := GlamourStyle()

	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, "#ebdbb2", *cfg.Document.Color)
	require.NotNil(t, cfg.H2.Color)
	assert.Equal(t, "#83a598", *cfg.H2.Color)
}

func TestLanguageIcon(t *testing.T) {
	assert.NotEqual(t, IconFileDefault, LanguageIcon("go"))
	assert.Equal(t, IconFileDefault, LanguageIcon("cobol"))
}
