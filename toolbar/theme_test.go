package toolbar

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultThemeColors(t *testing.T) {
	th := DefaultTheme()
	require.Equal(t, color.RGBA{70, 70, 70, 255}, th.GradientTop)
	require.Equal(t, color.RGBA{116, 116, 116, 255}, th.GradientBottom)
	require.Equal(t, color.RGBA{97, 97, 97, 255}, th.Border)
	require.Equal(t, Black, th.Text)
	require.Equal(t, White, th.TextSelected)
}

func TestLoadThemePartial(t *testing.T) {
	b := []byte("gradient_top: \"#102030\"\ncorner_radius: 8\n")
	th, radius, err := loadTheme(b)
	require.NoError(t, err)
	require.Equal(t, 8, radius)
	require.Equal(t, color.RGBA{0x10, 0x20, 0x30, 255}, th.GradientTop)
	// unset keys keep the defaults
	require.Equal(t, DefaultTheme().GradientBottom, th.GradientBottom)
	require.Equal(t, DefaultTheme().Text, th.Text)
}

func TestLoadThemeDefaultsOnEmpty(t *testing.T) {
	th, radius, err := loadTheme([]byte(""))
	require.NoError(t, err)
	require.Equal(t, DefaultCornerRadius, radius)
	require.Equal(t, DefaultTheme(), th)
}

func TestLoadThemeBadColor(t *testing.T) {
	_, _, err := loadTheme([]byte("border: \"red\"\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "theme color")
}

func TestLoadThemeBadYaml(t *testing.T) {
	_, _, err := loadTheme([]byte("corner_radius: [\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse theme file")
}

func TestLoadThemeFileMissing(t *testing.T) {
	_, _, err := LoadThemeFile("/nonexistent/theme.yml")
	require.Error(t, err)
}

//----------

func TestErrorCodeStrings(t *testing.T) {
	require.Equal(t, "widget is disposed", ErrDisposed.String())
	require.Equal(t, "argument cannot be nil", ErrNilArgument.String())
	require.Equal(t, "invalid thread access", ErrThreadAccess.String())
	require.Equal(t, "toolbar: invalid thread access", (&Error{Code: ErrThreadAccess}).Error())
}
