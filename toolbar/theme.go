package toolbar

import (
	"image/color"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/uilab/roundbar/util/imageutil"
)

var (
	White color.Color = color.RGBA{255, 255, 255, 255}
	Black color.Color = color.RGBA{0, 0, 0, 255}
)

const DefaultCornerRadius = 5

// Colors shared by every item of a toolbar. Replaces the original static
// gradient color singletons: the theme is owned by the toolbar, so its
// lifetime follows the application's resource management, and changing it is
// an immediate visual change to all items on the next repaint.
type Theme struct {
	GradientTop    color.Color
	GradientBottom color.Color
	Border         color.Color
	Text           color.Color
	TextSelected   color.Color
}

func DefaultTheme() Theme {
	return Theme{
		GradientTop:    color.RGBA{70, 70, 70, 255},
		GradientBottom: color.RGBA{116, 116, 116, 255},
		Border:         color.RGBA{97, 97, 97, 255},
		Text:           Black,
		TextSelected:   White,
	}
}

//----------

type themeFile struct {
	CornerRadius   int    `yaml:"corner_radius"`
	GradientTop    string `yaml:"gradient_top"`
	GradientBottom string `yaml:"gradient_bottom"`
	Border         string `yaml:"border"`
	Text           string `yaml:"text"`
	TextSelected   string `yaml:"text_selected"`
}

// Reads a YAML theme file. Missing keys keep their defaults; colors are
// "#rrggbb". Returns the theme and the corner radius.
func LoadThemeFile(path string) (Theme, int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, 0, errors.Wrap(err, "read theme file")
	}
	return loadTheme(b)
}

func loadTheme(b []byte) (Theme, int, error) {
	tf := themeFile{}
	if err := yaml.Unmarshal(b, &tf); err != nil {
		return Theme{}, 0, errors.Wrap(err, "parse theme file")
	}

	th := DefaultTheme()
	radius := DefaultCornerRadius
	if tf.CornerRadius > 0 {
		radius = tf.CornerRadius
	}

	set := func(dst *color.Color, s string) error {
		if s == "" {
			return nil
		}
		c, err := imageutil.RgbaFromString(s)
		if err != nil {
			return err
		}
		*dst = c
		return nil
	}
	for _, u := range []struct {
		dst *color.Color
		s   string
	}{
		{&th.GradientTop, tf.GradientTop},
		{&th.GradientBottom, tf.GradientBottom},
		{&th.Border, tf.Border},
		{&th.Text, tf.Text},
		{&th.TextSelected, tf.TextSelected},
	} {
		if err := set(u.dst, u.s); err != nil {
			return Theme{}, 0, errors.Wrap(err, "theme color")
		}
	}
	return th, radius, nil
}
